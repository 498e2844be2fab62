package repository

import (
	"context"

	"taskhive/internal/domain"

	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByProjectPaginated returns one page of tasks plus the total
// count. Page is zero-based to match the inbound query contract.
func (r *TaskRepository) ListByProjectPaginated(ctx context.Context, projectID int64, page, size int) ([]domain.Task, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("project_id = ?", projectID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, id).Error
}
