package user

import (
	"context"
	"strings"

	"taskhive/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service contains the registration logic for the identity store.
type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		UID:          uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}
