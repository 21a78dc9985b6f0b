package adoptions

import (
	"fmt"
	"time"

	"pet-adoption-api/internal/domain"
)

var (
	ErrNotFound     = fmt.Errorf("%w: adoption request", domain.ErrNotFound)
	ErrInvalidInput = domain.ErrInvalidInput
)

// Request es una solicitud de adopción. Los datos de la mascota se copian al
// crearla, así la solicitud se entiende aunque cambie la publicación.
type Request struct {
	ID string `json:"id" bson:"-"`

	PetID    string `json:"petId" bson:"petId"`
	PetName  string `json:"petName" bson:"petName"`
	PetImage string `json:"petImage" bson:"petImage"`

	RequesterName  string `json:"requesterName" bson:"requesterName"`
	RequesterEmail string `json:"requesterEmail" bson:"requesterEmail"`
	Phone          string `json:"phone" bson:"phone"`
	Address        string `json:"address" bson:"address"`

	OwnerEmail string `json:"ownerEmail" bson:"ownerEmail"`

	Extra map[string]any `json:"extra,omitempty" bson:"extra,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Filter struct {
	RequesterEmail string
	OwnerEmail     string
}
