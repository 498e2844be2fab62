package task

import (
	"context"
	"errors"
	"strings"

	"taskhive/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	tasks    TaskRepositoryInterface
	projects ProjectReader
}

func NewService(tasks TaskRepositoryInterface, projects ProjectReader) *Service {
	return &Service{tasks: tasks, projects: projects}
}

func (s *Service) Create(ctx context.Context, principalUID string, projectID int64, req CreateRequest) (*domain.Task, error) {
	p, err := s.memberProject(ctx, principalUID, projectID)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, ErrProjectArchived
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrBlankTitle
	}

	status := req.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	t := &domain.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, principalUID string, projectID, taskID int64) (*domain.Task, error) {
	if _, err := s.memberProject(ctx, principalUID, projectID); err != nil {
		return nil, err
	}
	return s.projectTask(ctx, projectID, taskID)
}

func (s *Service) List(ctx context.Context, principalUID string, projectID int64) ([]domain.Task, error) {
	if _, err := s.memberProject(ctx, principalUID, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *Service) ListPaginated(ctx context.Context, principalUID string, projectID int64, page, size int) (*Page, error) {
	if _, err := s.memberProject(ctx, principalUID, projectID); err != nil {
		return nil, err
	}

	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	items, total, err := s.tasks.ListByProjectPaginated(ctx, projectID, page, size)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Page: page, Size: size, TotalItems: total}, nil
}

func (s *Service) Update(ctx context.Context, principalUID string, projectID, taskID int64, req UpdateRequest) (*domain.Task, error) {
	p, err := s.memberProject(ctx, principalUID, projectID)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, ErrProjectArchived
	}

	t, err := s.projectTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrBlankTitle
	}

	t.Title = req.Title
	t.Description = req.Description
	t.DueDate = req.DueDate
	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		t.Status = req.Status
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateStatus(ctx context.Context, principalUID string, projectID, taskID int64, status domain.TaskStatus) (*domain.Task, error) {
	p, err := s.memberProject(ctx, principalUID, projectID)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, ErrProjectArchived
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	t, err := s.projectTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	t.Status = status
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, principalUID string, projectID, taskID int64) error {
	p, err := s.memberProject(ctx, principalUID, projectID)
	if err != nil {
		return err
	}
	if p.IsArchived {
		return ErrProjectArchived
	}
	if _, err := s.projectTask(ctx, projectID, taskID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}

func (s *Service) memberProject(ctx context.Context, principalUID string, projectID int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if !p.HasMember(principalUID) {
		return nil, ErrForbidden
	}
	return p, nil
}

// projectTask guards against the task id belonging to a different
// project than the one in the URL.
func (s *Service) projectTask(ctx context.Context, projectID, taskID int64) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.ProjectID != projectID {
		return nil, ErrNotFound
	}
	return t, nil
}
