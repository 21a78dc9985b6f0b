package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/users"
)

type UsersRepo struct {
	coll *mongo.Collection
}

func NewUsersRepo(db *mongo.Database) *UsersRepo {
	return &UsersRepo{coll: db.Collection(UsersCollection)}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	id, err := insert(ctx, r.coll, u)
	if err != nil {
		return users.User{}, err
	}
	u.ID = id
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	oid, err := objectID(id, users.ErrNotFound)
	if err != nil {
		return users.User{}, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (users.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.M) (users.User, error) {
	hex, u, err := findOne[users.User](ctx, r.coll, filter, users.ErrNotFound)
	if err != nil {
		return users.User{}, err
	}
	u.ID = hex
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context, f users.Filter) ([]users.User, error) {
	docs, err := findMany[users.User](ctx, r.coll, filterOf("email", f.Email), nil)
	if err != nil {
		return nil, err
	}
	out := make([]users.User, 0, len(docs))
	for _, d := range docs {
		d.Body.ID = d.ID.Hex()
		out = append(out, d.Body)
	}
	return out, nil
}

func (r *UsersRepo) UpdateRole(ctx context.Context, id string, role users.Role) (domain.WriteResult, error) {
	oid, err := objectID(id, users.ErrNotFound)
	if err != nil {
		return domain.WriteResult{}, err
	}
	return updateOne(ctx, r.coll, oid, bson.M{"$set": bson.M{"role": role}})
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, users.ErrNotFound)
}
