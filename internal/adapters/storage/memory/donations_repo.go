package memory

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/donations"
)

type donationRepo struct {
	mu   sync.RWMutex
	byID map[string]donations.Campaign
}

func NewDonationRepo() donations.Repository {
	return &donationRepo{
		byID: make(map[string]donations.Campaign),
	}
}

func (r *donationRepo) Create(_ context.Context, c donations.Campaign) (donations.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	c.UserDonations = cloneDonations(c.UserDonations)
	r.byID[c.ID] = c
	return copyCampaign(c), nil
}

func (r *donationRepo) GetByID(_ context.Context, id string) (donations.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return donations.Campaign{}, donations.ErrNotFound
	}
	return copyCampaign(c), nil
}

func (r *donationRepo) List(_ context.Context, f donations.Filter) ([]donations.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]donations.Campaign, 0, len(r.byID))
	for _, c := range r.byID {
		if f.OwnerEmail != "" && c.OwnerEmail != f.OwnerEmail {
			continue
		}
		out = append(out, copyCampaign(c))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *donationRepo) Replace(_ context.Context, id string, c donations.Campaign) (domain.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return domain.WriteResult{}, nil
	}
	next := cur
	donations.Editable(&next, c)
	r.byID[id] = next
	return domain.WriteResult{Matched: true, Modified: !reflect.DeepEqual(cur, next)}, nil
}

func (r *donationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return donations.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *donationRepo) AppendDonation(_ context.Context, id string, d donations.Donation) (donations.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return donations.Campaign{}, donations.ErrNotFound
	}
	c.UserDonations = append(cloneDonations(c.UserDonations), d)
	c.Donated += d.Amount
	r.byID[id] = c
	return copyCampaign(c), nil
}

func (r *donationRepo) RemoveDonation(_ context.Context, id, donorEmail, date string) (donations.Campaign, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return donations.Campaign{}, 0, donations.ErrNotFound
	}
	kept, removed, n := donations.Without(c.UserDonations, donorEmail, date)
	if n == 0 {
		return donations.Campaign{}, 0, donations.ErrDonationNotFound
	}
	c.UserDonations = kept
	c.Donated -= removed
	r.byID[id] = c
	return copyCampaign(c), removed, nil
}

func copyCampaign(c donations.Campaign) donations.Campaign {
	c.UserDonations = cloneDonations(c.UserDonations)
	return c
}

func cloneDonations(ds []donations.Donation) []donations.Donation {
	out := make([]donations.Donation, len(ds))
	copy(out, ds)
	return out
}
