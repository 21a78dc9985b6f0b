package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/users"
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[string]users.User),
	}
}

func (r *userRepo) Create(_ context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = uuid.NewString()
	r.byID[u.ID] = u
	return u, nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) List(_ context.Context, f users.Filter) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		if f.Email != "" && u.Email != f.Email {
			continue
		}
		out = append(out, u)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *userRepo) UpdateRole(_ context.Context, id string, role users.Role) (domain.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.WriteResult{}, nil
	}
	modified := u.Role != role
	u.Role = role
	r.byID[id] = u
	return domain.WriteResult{Matched: true, Modified: modified}, nil
}

func (r *userRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return users.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
