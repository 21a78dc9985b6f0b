package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/donations"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
)

func TestPetsRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns object id", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p, err := repo.Create(ctx, pets.Pet{Name: "Milo"})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(p.ID)
		assert.NoError(mt, err)
	})

	mt.Run("get decodes document", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		oid := primitive.NewObjectID()
		added := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.all-pets", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Milo"},
			{Key: "adopted", Value: true},
			{Key: "added_date", Value: added},
		}))

		p, err := repo.GetByID(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), p.ID)
		assert.Equal(mt, "Milo", p.Name)
		assert.True(mt, p.Adopted)
		assert.True(mt, added.Equal(p.AddedDate))
	})

	mt.Run("missing is not found", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.all-pets", mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("malformed id is not found without a round trip", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)

		_, err := repo.GetByID(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, pets.ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.all-pets", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "b"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "a"}},
		))

		got, err := repo.List(ctx, pets.Filter{})
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "b", got[0].Name)
		assert.NotEmpty(mt, got[1].ID)
	})

	mt.Run("replace reports counts", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.Replace(ctx, primitive.NewObjectID().Hex(), pets.Pet{Name: "Milo"})
		require.NoError(mt, err)
		assert.Equal(mt, domain.WriteResult{Matched: true, Modified: false}, res)
	})

	mt.Run("delete nothing is not found", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, pets.ErrNotFound)
	})
}

func TestUsersRepo_FindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
			{Key: "role", Value: "admin"},
		}))

		u, err := repo.FindByEmail(ctx, "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, users.RoleAdmin, u.Role)
	})

	mt.Run("absent", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch))

		_, err := repo.FindByEmail(ctx, "a@x.com")
		assert.ErrorIs(mt, err, users.ErrNotFound)
	})
}

func TestDonationsRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("append returns updated campaign", func(mt *mtest.T) {
		repo := NewDonationsRepo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Roof"},
			{Key: "donated", Value: 10.0},
			{Key: "userDonations", Value: bson.A{
				bson.D{{Key: "donorEmail", Value: "a@x.com"}, {Key: "date", Value: "2024-01-01"}, {Key: "amount", Value: 10.0}},
			}},
		}}))

		d := donations.Donation{DonorEmail: "a@x.com", Date: "2024-01-01", Amount: 10}
		c, err := repo.AppendDonation(ctx, oid.Hex(), d)
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), c.ID)
		assert.Equal(mt, []donations.Donation{d}, c.UserDonations)
		assert.Equal(mt, 10.0, c.Donated)
	})

	mt.Run("append to missing campaign", func(mt *mtest.T) {
		repo := NewDonationsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.AppendDonation(ctx, primitive.NewObjectID().Hex(), donations.Donation{Amount: 1})
		assert.ErrorIs(mt, err, donations.ErrNotFound)
	})

	mt.Run("remove unknown pair", func(mt *mtest.T) {
		repo := NewDonationsRepo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.donations", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "userDonations", Value: bson.A{}},
		}))

		_, _, err := repo.RemoveDonation(ctx, oid.Hex(), "a@x.com", "2024-01-01")
		assert.ErrorIs(mt, err, donations.ErrDonationNotFound)
	})

	mt.Run("legacy document without donations list", func(mt *mtest.T) {
		repo := NewDonationsRepo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.donations", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Old"},
		}))

		c, err := repo.GetByID(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.NotNil(mt, c.UserDonations)
	})
}
