package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"pet-adoption-api/internal/domain/adoptions"
)

// adoptionRepo mantiene el orden de inserción, que es el orden del listado.
type adoptionRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]adoptions.Request
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		byID: make(map[string]adoptions.Request),
	}
}

func (r *adoptionRepo) Create(_ context.Context, req adoptions.Request) (adoptions.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = uuid.NewString()
	r.byID[req.ID] = req
	r.order = append(r.order, req.ID)
	return req, nil
}

func (r *adoptionRepo) GetByID(_ context.Context, id string) (adoptions.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	return req, nil
}

func (r *adoptionRepo) List(_ context.Context, f adoptions.Filter) ([]adoptions.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Request, 0, len(r.order))
	for _, id := range r.order {
		req := r.byID[id]
		if f.RequesterEmail != "" && req.RequesterEmail != f.RequesterEmail {
			continue
		}
		if f.OwnerEmail != "" && req.OwnerEmail != f.OwnerEmail {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *adoptionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return adoptions.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
