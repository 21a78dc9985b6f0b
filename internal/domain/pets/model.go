package pets

import (
	"fmt"
	"time"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/patch"
)

var (
	ErrNotFound     = fmt.Errorf("%w: pet", domain.ErrNotFound)
	ErrInvalidInput = domain.ErrInvalidInput
)

// Pet es una mascota publicada para adopción.
type Pet struct {
	ID string `json:"id" bson:"-"`

	Name             string `json:"name" bson:"name"`
	Category         string `json:"category" bson:"category"`
	Age              int    `json:"age" bson:"age"`
	Location         string `json:"location" bson:"location"`
	ShortDescription string `json:"shortDescription" bson:"shortDescription"`
	LongDescription  string `json:"longDescription" bson:"longDescription"`
	Image            string `json:"image" bson:"image"`

	Adopted bool `json:"adopted" bson:"adopted"`

	AddedDate  time.Time `json:"addedDate" bson:"added_date"`
	OwnerEmail string    `json:"ownerEmail" bson:"ownerEmail"`
}

// Filter acota List. El valor cero lista todo.
type Filter struct {
	OwnerEmail string
}

// Patch es un update parcial. Campos nil = no tocar.
type Patch struct {
	Name             *string `json:"name"`
	Category         *string `json:"category"`
	Age              *int    `json:"age" validate:"omitempty,gte=0"`
	Location         *string `json:"location"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
	Image            *string `json:"image"`
	Adopted          *bool   `json:"adopted"`
}

// Merge aplica p sobre existing. ID, AddedDate y OwnerEmail no cambian nunca.
func Merge(existing Pet, p Patch) Pet {
	out := existing
	patch.Apply(&out.Name, p.Name)
	patch.Apply(&out.Category, p.Category)
	patch.Apply(&out.Age, p.Age)
	patch.Apply(&out.Location, p.Location)
	patch.Apply(&out.ShortDescription, p.ShortDescription)
	patch.Apply(&out.LongDescription, p.LongDescription)
	patch.Apply(&out.Image, p.Image)
	out.Adopted = patch.Value(existing.Adopted, p.Adopted)
	return out
}
