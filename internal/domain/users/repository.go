package users

import (
	"context"

	"pet-adoption-api/internal/domain"
)

// Repository guarda usuarios. La unicidad del email la controla Service.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, f Filter) ([]User, error)
	UpdateRole(ctx context.Context, id string, role Role) (domain.WriteResult, error)
	Delete(ctx context.Context, id string) error
}
