package task

import (
	"context"

	"taskhive/internal/domain"
)

type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListByProjectPaginated(ctx context.Context, projectID int64, page, size int) ([]domain.Task, int64, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

type ProjectReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}
