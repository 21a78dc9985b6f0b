package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/pets"
)

type PetsRepo struct {
	coll *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{coll: db.Collection(PetsCollection)}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	id, err := insert(ctx, r.coll, p)
	if err != nil {
		return pets.Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, err := objectID(id, pets.ErrNotFound)
	if err != nil {
		return pets.Pet{}, err
	}
	hex, p, err := findOne[pets.Pet](ctx, r.coll, bson.M{"_id": oid}, pets.ErrNotFound)
	if err != nil {
		return pets.Pet{}, err
	}
	p.ID = hex
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	docs, err := findMany[pets.Pet](ctx, r.coll, filterOf("ownerEmail", f.OwnerEmail), bson.D{{Key: "added_date", Value: -1}})
	if err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		d.Body.ID = d.ID.Hex()
		out = append(out, d.Body)
	}
	return out, nil
}

func (r *PetsRepo) Replace(ctx context.Context, id string, p pets.Pet) (domain.WriteResult, error) {
	oid, err := objectID(id, pets.ErrNotFound)
	if err != nil {
		return domain.WriteResult{}, err
	}
	return updateOne(ctx, r.coll, oid, bson.M{"$set": p})
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, pets.ErrNotFound)
}
