package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/domain"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// Register crea el usuario si el email está libre. Chequeo e insert son dos
// llamadas separadas: dos registros concurrentes pueden pasar ambos.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return User{}, fmt.Errorf("%w: email required", ErrInvalidInput)
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrEmailExists
	case !errors.Is(err, domain.ErrNotFound):
		return User{}, err
	}

	return s.repo.Create(ctx, User{
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		Role:      RoleNone,
		CreatedAt: s.now().UTC(),
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]User, error) {
	f.Email = normalizeEmail(f.Email)
	return s.repo.List(ctx, f)
}

type UpdateResult struct {
	domain.WriteResult
	User User `json:"user"`
}

// UpdateRole reemplaza solo el rol.
func (s *Service) UpdateRole(ctx context.Context, id string, p RolePatch) (UpdateResult, error) {
	if p.Role == nil {
		return UpdateResult{}, fmt.Errorf("%w: role required", ErrInvalidInput)
	}
	if !p.Role.Valid() {
		return UpdateResult{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *p.Role)
	}

	res, err := s.repo.UpdateRole(ctx, id, *p.Role)
	if err != nil {
		return UpdateResult{}, err
	}
	if !res.Matched {
		return UpdateResult{}, ErrNotFound
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{WriteResult: res, User: u}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
