package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/donations"
)

type DonationsRepo struct {
	coll *mongo.Collection
}

func NewDonationsRepo(db *mongo.Database) *DonationsRepo {
	return &DonationsRepo{coll: db.Collection(DonationsCollection)}
}

func (r *DonationsRepo) Create(ctx context.Context, c donations.Campaign) (donations.Campaign, error) {
	if c.UserDonations == nil {
		c.UserDonations = []donations.Donation{}
	}
	id, err := insert(ctx, r.coll, c)
	if err != nil {
		return donations.Campaign{}, err
	}
	c.ID = id
	return c, nil
}

func (r *DonationsRepo) GetByID(ctx context.Context, id string) (donations.Campaign, error) {
	oid, err := objectID(id, donations.ErrNotFound)
	if err != nil {
		return donations.Campaign{}, err
	}
	hex, c, err := findOne[donations.Campaign](ctx, r.coll, bson.M{"_id": oid}, donations.ErrNotFound)
	if err != nil {
		return donations.Campaign{}, err
	}
	return normalize(hex, c), nil
}

func (r *DonationsRepo) List(ctx context.Context, f donations.Filter) ([]donations.Campaign, error) {
	docs, err := findMany[donations.Campaign](ctx, r.coll, filterOf("ownerEmail", f.OwnerEmail), bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, err
	}
	out := make([]donations.Campaign, 0, len(docs))
	for _, d := range docs {
		out = append(out, normalize(d.ID.Hex(), d.Body))
	}
	return out, nil
}

// Replace setea solo los campos editables; así un merge viejo no pisa una
// donación concurrente.
func (r *DonationsRepo) Replace(ctx context.Context, id string, c donations.Campaign) (domain.WriteResult, error) {
	oid, err := objectID(id, donations.ErrNotFound)
	if err != nil {
		return domain.WriteResult{}, err
	}
	return updateOne(ctx, r.coll, oid, bson.M{"$set": bson.M{
		"category":         c.Category,
		"name":             c.Name,
		"shortDescription": c.ShortDescription,
		"longDescription":  c.LongDescription,
		"image":            c.Image,
		"maxAmount":        c.MaxAmount,
		"lastDate":         c.LastDate,
		"donationPaused":   c.DonationPaused,
	}})
}

func (r *DonationsRepo) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, donations.ErrNotFound)
}

func (r *DonationsRepo) AppendDonation(ctx context.Context, id string, d donations.Donation) (donations.Campaign, error) {
	oid, err := objectID(id, donations.ErrNotFound)
	if err != nil {
		return donations.Campaign{}, err
	}
	return r.findAndModify(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"userDonations": d},
		"$inc":  bson.M{"donated": d.Amount},
	}, donations.ErrNotFound)
}

func (r *DonationsRepo) RemoveDonation(ctx context.Context, id, donorEmail, date string) (donations.Campaign, float64, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return donations.Campaign{}, 0, err
	}
	_, removed, n := donations.Without(current.UserDonations, donorEmail, date)
	if n == 0 {
		return donations.Campaign{}, 0, donations.ErrDonationNotFound
	}

	oid, _ := objectID(id, donations.ErrNotFound)
	match := bson.M{"donorEmail": donorEmail, "date": date}
	updated, err := r.findAndModify(ctx,
		bson.M{"_id": oid, "userDonations": bson.M{"$elemMatch": match}},
		bson.M{
			"$pull": bson.M{"userDonations": match},
			"$inc":  bson.M{"donated": -removed},
		},
		donations.ErrDonationNotFound,
	)
	if err != nil {
		return donations.Campaign{}, 0, err
	}
	return updated, removed, nil
}

func (r *DonationsRepo) findAndModify(ctx context.Context, filter, update bson.M, notFound error) (donations.Campaign, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d doc[donations.Campaign]
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return donations.Campaign{}, notFound
	}
	if err != nil {
		return donations.Campaign{}, err
	}
	return normalize(d.ID.Hex(), d.Body), nil
}

func normalize(id string, c donations.Campaign) donations.Campaign {
	c.ID = id
	if c.UserDonations == nil {
		c.UserDonations = []donations.Donation{}
	}
	return c
}
