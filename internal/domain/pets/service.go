package pets

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
	Name             string
	Category         string
	Age              int
	Location         string
	ShortDescription string
	LongDescription  string
	Image            string
}

func (s *Service) Create(ctx context.Context, ownerEmail string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if in.Age < 0 {
		return Pet{}, fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
	}

	p := Pet{
		Name:             strings.TrimSpace(in.Name),
		Category:         strings.TrimSpace(in.Category),
		Age:              in.Age,
		Location:         strings.TrimSpace(in.Location),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongDescription:  strings.TrimSpace(in.LongDescription),
		Image:            strings.TrimSpace(in.Image),
		Adopted:          false,
		AddedDate:        s.now().UTC(),
		OwnerEmail:       strings.ToLower(strings.TrimSpace(ownerEmail)),
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	s.publish(ctx, events.PetCreated, created)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	f.OwnerEmail = strings.ToLower(strings.TrimSpace(f.OwnerEmail))
	return s.repo.List(ctx, f)
}

// UpdateResult lleva el resultado de la escritura y la mascota mezclada.
type UpdateResult struct {
	domain.WriteResult
	Pet Pet `json:"pet"`
}

// Update mezcla p sobre la mascota guardada y la escribe. Lectura y escritura
// no son atómicas: un update concurrente se puede perder.
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

	if !existing.Adopted && merged.Adopted {
		s.publish(ctx, events.PetAdopted, merged)
	}
	return UpdateResult{WriteResult: res, Pet: merged}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) publish(ctx context.Context, key string, p Pet) {
	if err := s.events.Publish(ctx, key, p); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "key", key, "pet_id", p.ID, "error", err)
	}
}
