package repository

import (
	"context"

	"taskhive/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID loads the project with members and tasks preloaded so the
// service layer can run its membership checks without extra queries.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Tasks").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) ListByMember(ctx context.Context, uid string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_users pu ON pu.project_id = projects.id").
		Where("pu.user_uid = ?", uid).
		Preload("Users").
		Preload("Tasks").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProjectRepository) AddMember(ctx context.Context, p *domain.Project, u *domain.User) error {
	return r.db.WithContext(ctx).Model(p).Association("Users").Append(u)
}
