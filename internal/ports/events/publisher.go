// Package events es el puerto de salida para eventos de dominio.
package events

import "context"

// Routing keys.
const (
	PetCreated        = "pet.created"
	PetAdopted        = "pet.adopted"
	AdoptionRequested = "adoption.requested"
	DonationRecorded  = "donation.recorded"
	DonationRefunded  = "donation.refunded"
)

type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// Nop descarta todos los eventos.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
