package project

import (
	"context"

	"taskhive/internal/domain"
)

type ProjectRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListByMember(ctx context.Context, uid string) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	AddMember(ctx context.Context, p *domain.Project, u *domain.User) error
}

type UserReader interface {
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
