package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	t table
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{t: table{db: db, name: "adoption_requests", orderBy: "created_at ASC, id ASC"}}
}

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.Request) (adoptions.Request, error) {
	req.ID = ""
	id, err := insert(ctx, r.t, req)
	if err != nil {
		return adoptions.Request{}, err
	}
	req.ID = id
	return req, nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	req, err := get[adoptions.Request](ctx, r.t, id, adoptions.ErrNotFound)
	if err != nil {
		return adoptions.Request{}, err
	}
	req.ID = id
	return req, nil
}

func (r *AdoptionsRepo) List(ctx context.Context, f adoptions.Filter) ([]adoptions.Request, error) {
	rows, err := list[adoptions.Request](ctx, r.t, "requesterEmail", f.RequesterEmail, "ownerEmail", f.OwnerEmail)
	if err != nil {
		return nil, err
	}
	out := make([]adoptions.Request, 0, len(rows))
	for _, row := range rows {
		row.Doc.ID = row.ID
		out = append(out, row.Doc)
	}
	return out, nil
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.t, id, adoptions.ErrNotFound)
}
