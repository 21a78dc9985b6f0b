package adoptions

import "context"

// Repository guarda solicitudes. List las devuelve de la más vieja a la más nueva.
type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, f Filter) ([]Request, error)
	Delete(ctx context.Context, id string) error
}
