package donations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/ports/events"
)

type Service struct {
	repo   Repository
	events events.Publisher
	now    func() time.Time
}

func NewService(repo Repository, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{
		repo:   repo,
		events: pub,
		now:    time.Now,
	}
}

type CreateInput struct {
	Category         string
	Name             string
	ShortDescription string
	LongDescription  string
	Image            string
	MaxAmount        float64
	LastDate         string
}

func (s *Service) Create(ctx context.Context, ownerEmail string, in CreateInput) (Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Campaign{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if in.MaxAmount < 0 {
		return Campaign{}, fmt.Errorf("%w: maxAmount must not be negative", ErrInvalidInput)
	}

	return s.repo.Create(ctx, Campaign{
		Category:         strings.TrimSpace(in.Category),
		Name:             strings.TrimSpace(in.Name),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongDescription:  strings.TrimSpace(in.LongDescription),
		Image:            strings.TrimSpace(in.Image),
		MaxAmount:        in.MaxAmount,
		LastDate:         strings.TrimSpace(in.LastDate),
		UserDonations:    []Donation{},
		CreatedAt:        s.now().UTC(),
		OwnerEmail:       strings.ToLower(strings.TrimSpace(ownerEmail)),
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Campaign, error) {
	f.OwnerEmail = strings.ToLower(strings.TrimSpace(f.OwnerEmail))
	return s.repo.List(ctx, f)
}

type UpdateResult struct {
	domain.WriteResult
	Campaign Campaign `json:"campaign"`
}

// Update mezcla p sobre la campaña guardada. Lectura y escritura no son atómicas.
func (s *Service) Update(ctx context.Context, id string, p Patch) (UpdateResult, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UpdateResult{}, err
	}

	merged := Merge(existing, p)
	res, err := s.repo.Replace(ctx, id, merged)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{WriteResult: res, Campaign: merged}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DonationEvent es el payload de donation.recorded y donation.refunded.
type DonationEvent struct {
	CampaignID string  `json:"campaignId"`
	DonorEmail string  `json:"donorEmail"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
}

// AppendDonation registra d en la campaña. Las campañas pausadas no aceptan
// donaciones.
func (s *Service) AppendDonation(ctx context.Context, id string, d Donation) (Campaign, error) {
	d.DonorEmail = strings.TrimSpace(d.DonorEmail)
	d.Date = strings.TrimSpace(d.Date)
	if d.DonorEmail == "" || d.Date == "" {
		return Campaign{}, fmt.Errorf("%w: donorEmail and date required", ErrInvalidInput)
	}
	if d.Amount <= 0 {
		return Campaign{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Campaign{}, err
	}
	if c.DonationPaused {
		return Campaign{}, ErrCampaignPaused
	}

	updated, err := s.repo.AppendDonation(ctx, id, d)
	if err != nil {
		return Campaign{}, err
	}
	s.publish(ctx, events.DonationRecorded, DonationEvent{
		CampaignID: id, DonorEmail: d.DonorEmail, Date: d.Date, Amount: d.Amount,
	})
	return updated, nil
}

// RemoveDonation quita las donaciones que coinciden con (donorEmail, date).
func (s *Service) RemoveDonation(ctx context.Context, id, donorEmail, date string) (Campaign, error) {
	donorEmail = strings.TrimSpace(donorEmail)
	date = strings.TrimSpace(date)
	if donorEmail == "" || date == "" {
		return Campaign{}, fmt.Errorf("%w: donorEmail and date required", ErrInvalidInput)
	}

	updated, removed, err := s.repo.RemoveDonation(ctx, id, donorEmail, date)
	if err != nil {
		return Campaign{}, err
	}
	s.publish(ctx, events.DonationRefunded, DonationEvent{
		CampaignID: id, DonorEmail: donorEmail, Date: date, Amount: removed,
	})
	return updated, nil
}

func (s *Service) publish(ctx context.Context, key string, payload DonationEvent) {
	if err := s.events.Publish(ctx, key, payload); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "key", key, "campaign_id", payload.CampaignID, "error", err)
	}
}
