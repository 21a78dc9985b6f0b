package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/pets"
)

type PetsRepo struct {
	t table
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{t: table{db: db, name: "pets", orderBy: "(doc->>'addedDate')::timestamptz DESC, created_at DESC"}}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	p.ID = ""
	id, err := insert(ctx, r.t, p)
	if err != nil {
		return pets.Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, err := get[pets.Pet](ctx, r.t, id, pets.ErrNotFound)
	if err != nil {
		return pets.Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	rows, err := list[pets.Pet](ctx, r.t, "ownerEmail", f.OwnerEmail)
	if err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		row.Doc.ID = row.ID
		out = append(out, row.Doc)
	}
	return out, nil
}

func (r *PetsRepo) Replace(ctx context.Context, id string, p pets.Pet) (domain.WriteResult, error) {
	_, res, err := update(ctx, r.t, id, pets.ErrNotFound, func(pets.Pet) (pets.Pet, error) {
		p.ID = ""
		return p, nil
	})
	return res, err
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.t, id, pets.ErrNotFound)
}
