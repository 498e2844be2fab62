package project

import (
	"context"
	"errors"
	"strings"

	"taskhive/internal/domain"

	"gorm.io/gorm"
)

// Service holds the project business rules. Every operation takes the
// authenticated principal's uid and enforces membership before
// touching anything.
type Service struct {
	projects ProjectRepositoryInterface
	users    UserReader
}

func NewService(projects ProjectRepositoryInterface, users UserReader) *Service {
	return &Service{projects: projects, users: users}
}

func (s *Service) Create(ctx context.Context, principalUID string, req CreateRequest) (*domain.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrBlankTitle
	}

	owner, err := s.users.GetByUID(ctx, principalUID)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		OwnerUID:    owner.UID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Users:       []domain.User{*owner},
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, principalUID string, id int64) (*domain.Project, error) {
	return s.memberProject(ctx, principalUID, id)
}

func (s *Service) ListMine(ctx context.Context, principalUID string) ([]domain.Project, error) {
	return s.projects.ListByMember(ctx, principalUID)
}

func (s *Service) Update(ctx context.Context, principalUID string, id int64, req UpdateRequest) (*domain.Project, error) {
	p, err := s.memberProject(ctx, principalUID, id)
	if err != nil {
		return nil, err
	}

	if p.IsArchived {
		return nil, ErrArchived
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrBlankTitle
	}

	p.Title = req.Title
	p.Description = req.Description
	p.DueDate = req.DueDate

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Archive(ctx context.Context, principalUID string, id int64) (*domain.Project, error) {
	p, err := s.memberProject(ctx, principalUID, id)
	if err != nil {
		return nil, err
	}

	if p.IsArchived {
		return nil, ErrAlreadyArchived
	}

	p.IsArchived = true
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) AddMember(ctx context.Context, principalUID string, id int64, req AddMemberRequest) error {
	p, err := s.memberProject(ctx, principalUID, id)
	if err != nil {
		return err
	}

	u, err := s.users.GetByEmail(ctx, req.UserEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if p.HasMember(u.UID) {
		return nil
	}
	return s.projects.AddMember(ctx, p, u)
}

func (s *Service) memberProject(ctx context.Context, principalUID string, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.HasMember(principalUID) {
		return nil, ErrForbidden
	}
	return p, nil
}
