package memory

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(_ context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	r.byID[p.ID] = p
	return p, nil
}

func (r *petRepo) GetByID(_ context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(_ context.Context, f pets.Filter) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		if f.OwnerEmail != "" && p.OwnerEmail != f.OwnerEmail {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedDate.After(out[j].AddedDate)
	})
	return out, nil
}

func (r *petRepo) Replace(_ context.Context, id string, p pets.Pet) (domain.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return domain.WriteResult{}, nil
	}
	p.ID = id
	r.byID[id] = p
	return domain.WriteResult{Matched: true, Modified: !reflect.DeepEqual(cur, p)}, nil
}

func (r *petRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
