package donations

import (
	"context"

	"pet-adoption-api/internal/domain"
)

// Repository guarda campañas. List ordena por CreatedAt, más nuevas primero.
// Replace escribe solo los campos que copia Editable.
type Repository interface {
	Create(ctx context.Context, c Campaign) (Campaign, error)
	GetByID(ctx context.Context, id string) (Campaign, error)
	List(ctx context.Context, f Filter) ([]Campaign, error)
	Replace(ctx context.Context, id string, c Campaign) (domain.WriteResult, error)
	Delete(ctx context.Context, id string) error

	// AppendDonation agrega d y suma su monto a Donated en una sola escritura;
	// devuelve la campaña actualizada.
	AppendDonation(ctx context.Context, id string, d Donation) (Campaign, error)

	// RemoveDonation saca las entradas que coinciden con (donorEmail, date) y
	// resta sus montos de Donated. Devuelve la campaña actualizada y el monto
	// quitado. ErrDonationNotFound si no hay coincidencias.
	RemoveDonation(ctx context.Context, id, donorEmail, date string) (Campaign, float64, error)
}
