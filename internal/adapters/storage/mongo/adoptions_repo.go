package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pet-adoption-api/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	coll *mongo.Collection
}

func NewAdoptionsRepo(db *mongo.Database) *AdoptionsRepo {
	return &AdoptionsRepo{coll: db.Collection(AdoptionsCollection)}
}

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.Request) (adoptions.Request, error) {
	id, err := insert(ctx, r.coll, req)
	if err != nil {
		return adoptions.Request{}, err
	}
	req.ID = id
	return req, nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	oid, err := objectID(id, adoptions.ErrNotFound)
	if err != nil {
		return adoptions.Request{}, err
	}
	hex, req, err := findOne[adoptions.Request](ctx, r.coll, bson.M{"_id": oid}, adoptions.ErrNotFound)
	if err != nil {
		return adoptions.Request{}, err
	}
	req.ID = hex
	return req, nil
}

// List ordena por _id, que con ids del driver es el orden de inserción.
func (r *AdoptionsRepo) List(ctx context.Context, f adoptions.Filter) ([]adoptions.Request, error) {
	filter := filterOf("requesterEmail", f.RequesterEmail, "ownerEmail", f.OwnerEmail)
	docs, err := findMany[adoptions.Request](ctx, r.coll, filter, bson.D{{Key: "_id", Value: 1}})
	if err != nil {
		return nil, err
	}
	out := make([]adoptions.Request, 0, len(docs))
	for _, d := range docs {
		d.Body.ID = d.ID.Hex()
		out = append(out, d.Body)
	}
	return out, nil
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, adoptions.ErrNotFound)
}
