// Package mongo implementa los repos sobre MongoDB. Los documentos usan el
// layout bson del recurso con el ObjectID en _id.
package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pet-adoption-api/internal/domain"
)

// Nombres de colecciones compartidos con despliegues existentes.
const (
	PetsCollection      = "all-pets"
	UsersCollection     = "users"
	DonationsCollection = "donations"
	AdoptionsCollection = "adoption-requests"
)

// doc junta un recurso con su _id.
type doc[T any] struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Body T                  `bson:",inline"`
}

// objectID parsea id; un id mal formado no puede matchear nada, así que
// devuelve notFound.
func objectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

func insert[T any](ctx context.Context, coll *mongo.Collection, v T) (string, error) {
	oid := primitive.NewObjectID()
	if _, err := coll.InsertOne(ctx, doc[T]{ID: oid, Body: v}); err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, notFound error) (string, T, error) {
	var d doc[T]
	err := coll.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", d.Body, notFound
	}
	if err != nil {
		return "", d.Body, err
	}
	return d.ID.Hex(), d.Body, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter any, sort bson.D) ([]doc[T], error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []doc[T]
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func updateOne(ctx context.Context, coll *mongo.Collection, oid primitive.ObjectID, update any) (domain.WriteResult, error) {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return domain.WriteResult{}, err
	}
	return domain.WriteResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string, notFound error) error {
	oid, err := objectID(id, notFound)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}

// filterOf arma un filtro de igualdad con los valores no vacíos.
func filterOf(kv ...string) bson.M {
	f := bson.M{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			f[kv[i]] = kv[i+1]
		}
	}
	return f
}
