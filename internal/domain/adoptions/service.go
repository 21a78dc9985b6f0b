package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/ports/events"
)

// PetLookup completa los datos de mascota que copia una solicitud.
type PetLookup interface {
	Summarize(ctx context.Context, petID string) (pets.Summary, error)
}

type Service struct {
	repo   Repository
	pets   PetLookup
	events events.Publisher
	now    func() time.Time
}

// NewService crea el servicio. petsLookup puede ser nil: las solicitudes se
// guardan tal como llegan.
func NewService(repo Repository, petsLookup PetLookup, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{
		repo:   repo,
		pets:   petsLookup,
		events: pub,
		now:    time.Now,
	}
}

type CreateInput struct {
	PetID          string
	PetName        string
	PetImage       string
	RequesterName  string
	RequesterEmail string
	Phone          string
	Address        string
	OwnerEmail     string
	Extra          map[string]any
}

// Create guarda la solicitud. Nombre, imagen y dueño vacíos se completan desde
// la mascota si existe; una mascota desconocida no es error.
func (s *Service) Create(ctx context.Context, in CreateInput) (Request, error) {
	if strings.TrimSpace(in.RequesterEmail) == "" {
		return Request{}, fmt.Errorf("%w: requesterEmail required", ErrInvalidInput)
	}

	req := Request{
		PetID:          strings.TrimSpace(in.PetID),
		PetName:        strings.TrimSpace(in.PetName),
		PetImage:       strings.TrimSpace(in.PetImage),
		RequesterName:  strings.TrimSpace(in.RequesterName),
		RequesterEmail: strings.ToLower(strings.TrimSpace(in.RequesterEmail)),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		OwnerEmail:     strings.ToLower(strings.TrimSpace(in.OwnerEmail)),
		Extra:          in.Extra,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.fillFromPet(ctx, &req); err != nil {
		return Request{}, err
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return Request{}, err
	}
	if err := s.events.Publish(ctx, events.AdoptionRequested, created); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "key", events.AdoptionRequested, "request_id", created.ID, "error", err)
	}
	return created, nil
}

func (s *Service) fillFromPet(ctx context.Context, req *Request) error {
	if s.pets == nil || req.PetID == "" {
		return nil
	}
	if req.PetName != "" && req.PetImage != "" && req.OwnerEmail != "" {
		return nil
	}

	sum, err := s.pets.Summarize(ctx, req.PetID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if req.PetName == "" {
		req.PetName = sum.Name
	}
	if req.PetImage == "" {
		req.PetImage = sum.Image
	}
	if req.OwnerEmail == "" {
		req.OwnerEmail = sum.OwnerEmail
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Request, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Request, error) {
	f.RequesterEmail = strings.ToLower(strings.TrimSpace(f.RequesterEmail))
	f.OwnerEmail = strings.ToLower(strings.TrimSpace(f.OwnerEmail))
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
