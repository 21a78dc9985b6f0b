package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/donations"
)

type DonationsRepo struct {
	t table
}

func NewDonationsRepo(db *sql.DB) *DonationsRepo {
	return &DonationsRepo{t: table{db: db, name: "donations", orderBy: "(doc->>'createdAt')::timestamptz DESC, created_at DESC"}}
}

func (r *DonationsRepo) Create(ctx context.Context, c donations.Campaign) (donations.Campaign, error) {
	c.ID = ""
	if c.UserDonations == nil {
		c.UserDonations = []donations.Donation{}
	}
	id, err := insert(ctx, r.t, c)
	if err != nil {
		return donations.Campaign{}, err
	}
	c.ID = id
	return c, nil
}

func (r *DonationsRepo) GetByID(ctx context.Context, id string) (donations.Campaign, error) {
	c, err := get[donations.Campaign](ctx, r.t, id, donations.ErrNotFound)
	if err != nil {
		return donations.Campaign{}, err
	}
	return withID(id, c), nil
}

func (r *DonationsRepo) List(ctx context.Context, f donations.Filter) ([]donations.Campaign, error) {
	rows, err := list[donations.Campaign](ctx, r.t, "ownerEmail", f.OwnerEmail)
	if err != nil {
		return nil, err
	}
	out := make([]donations.Campaign, 0, len(rows))
	for _, row := range rows {
		out = append(out, withID(row.ID, row.Doc))
	}
	return out, nil
}

func (r *DonationsRepo) Replace(ctx context.Context, id string, c donations.Campaign) (domain.WriteResult, error) {
	_, res, err := update(ctx, r.t, id, donations.ErrNotFound, func(cur donations.Campaign) (donations.Campaign, error) {
		next := cur
		donations.Editable(&next, c)
		return next, nil
	})
	return res, err
}

func (r *DonationsRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.t, id, donations.ErrNotFound)
}

func (r *DonationsRepo) AppendDonation(ctx context.Context, id string, d donations.Donation) (donations.Campaign, error) {
	next, res, err := update(ctx, r.t, id, donations.ErrNotFound, func(cur donations.Campaign) (donations.Campaign, error) {
		cur.UserDonations = append(cur.UserDonations, d)
		cur.Donated += d.Amount
		return cur, nil
	})
	if err != nil {
		return donations.Campaign{}, err
	}
	if !res.Matched {
		return donations.Campaign{}, donations.ErrNotFound
	}
	return withID(id, next), nil
}

func (r *DonationsRepo) RemoveDonation(ctx context.Context, id, donorEmail, date string) (donations.Campaign, float64, error) {
	var removed float64
	next, res, err := update(ctx, r.t, id, donations.ErrNotFound, func(cur donations.Campaign) (donations.Campaign, error) {
		kept, amount, n := donations.Without(cur.UserDonations, donorEmail, date)
		if n == 0 {
			return cur, donations.ErrDonationNotFound
		}
		removed = amount
		cur.UserDonations = kept
		cur.Donated -= amount
		return cur, nil
	})
	if err != nil {
		return donations.Campaign{}, 0, err
	}
	if !res.Matched {
		return donations.Campaign{}, 0, donations.ErrNotFound
	}
	return withID(id, next), removed, nil
}

func withID(id string, c donations.Campaign) donations.Campaign {
	c.ID = id
	if c.UserDonations == nil {
		c.UserDonations = []donations.Donation{}
	}
	return c
}
