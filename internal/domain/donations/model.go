package donations

import (
	"fmt"
	"time"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/patch"
)

var (
	ErrNotFound         = fmt.Errorf("%w: donation campaign", domain.ErrNotFound)
	ErrDonationNotFound = fmt.Errorf("%w: donation", domain.ErrNotFound)
	ErrCampaignPaused   = fmt.Errorf("%w: donations are paused for this campaign", domain.ErrConflict)
	ErrInvalidInput     = domain.ErrInvalidInput
)

// Donation es un aporte embebido en su campaña. No tiene id propio;
// (DonorEmail, Date) lo identifica para borrarlo.
type Donation struct {
	DonorEmail string  `json:"donorEmail" bson:"donorEmail" validate:"required,email"`
	Date       string  `json:"date" bson:"date" validate:"required"`
	Amount     float64 `json:"amount" bson:"amount" validate:"gt=0"`
}

type Campaign struct {
	ID string `json:"id" bson:"-"`

	Category         string  `json:"category" bson:"category"`
	Name             string  `json:"name" bson:"name"`
	ShortDescription string  `json:"shortDescription" bson:"shortDescription"`
	LongDescription  string  `json:"longDescription" bson:"longDescription"`
	Image            string  `json:"image" bson:"image"`
	MaxAmount        float64 `json:"maxAmount" bson:"maxAmount"`
	LastDate         string  `json:"lastDate" bson:"lastDate"`
	DonationPaused   bool    `json:"donationPaused" bson:"donationPaused"`

	Donated       float64    `json:"donated" bson:"donated"`
	UserDonations []Donation `json:"userDonations" bson:"userDonations"`

	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	OwnerEmail string    `json:"ownerEmail" bson:"ownerEmail"`
}

type Filter struct {
	OwnerEmail string
}

// Patch cambia datos de la campaña. Donated y UserDonations solo cambian vía
// AppendDonation y RemoveDonation.
type Patch struct {
	Category         *string  `json:"category"`
	Name             *string  `json:"name"`
	ShortDescription *string  `json:"shortDescription"`
	LongDescription  *string  `json:"longDescription"`
	Image            *string  `json:"image"`
	MaxAmount        *float64 `json:"maxAmount" validate:"omitempty,gte=0"`
	LastDate         *string  `json:"lastDate"`
	DonationPaused   *bool    `json:"donationPaused"`
}

func Merge(existing Campaign, p Patch) Campaign {
	out := existing
	patch.Apply(&out.Category, p.Category)
	patch.Apply(&out.Name, p.Name)
	patch.Apply(&out.ShortDescription, p.ShortDescription)
	patch.Apply(&out.LongDescription, p.LongDescription)
	patch.Apply(&out.Image, p.Image)
	patch.Apply(&out.MaxAmount, p.MaxAmount)
	patch.Apply(&out.LastDate, p.LastDate)
	out.DonationPaused = patch.Value(existing.DonationPaused, p.DonationPaused)
	return out
}

// Editable copia de src a dst los campos que escribe Replace.
func Editable(dst *Campaign, src Campaign) {
	dst.Category = src.Category
	dst.Name = src.Name
	dst.ShortDescription = src.ShortDescription
	dst.LongDescription = src.LongDescription
	dst.Image = src.Image
	dst.MaxAmount = src.MaxAmount
	dst.LastDate = src.LastDate
	dst.DonationPaused = src.DonationPaused
}

// Without devuelve ds sin las entradas que coinciden con (donorEmail, date),
// y el monto total quitado.
func Without(ds []Donation, donorEmail, date string) (kept []Donation, removed float64, n int) {
	kept = make([]Donation, 0, len(ds))
	for _, d := range ds {
		if d.DonorEmail == donorEmail && d.Date == date {
			removed += d.Amount
			n++
			continue
		}
		kept = append(kept, d)
	}
	return kept, removed, n
}
