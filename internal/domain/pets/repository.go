package pets

import (
	"context"

	"pet-adoption-api/internal/domain"
)

// Repository guarda mascotas. Create asigna el ID. List ordena por AddedDate,
// más nuevas primero. Ids desconocidos o mal formados => ErrNotFound.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, f Filter) ([]Pet, error)
	Replace(ctx context.Context, id string, p Pet) (domain.WriteResult, error)
	Delete(ctx context.Context, id string) error
}
