package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/donations"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
)

func TestPetRepo_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, pets.Pet{Name: name, AddedDate: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	got, err := repo.List(ctx, pets.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestPetRepo_ReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	p, err := repo.Create(ctx, pets.Pet{Name: "Milo", OwnerEmail: "o@x.com"})
	require.NoError(t, err)

	res, err := repo.Replace(ctx, p.ID, p)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteResult{Matched: true, Modified: false}, res)

	p.Adopted = true
	res, err = repo.Replace(ctx, p.ID, p)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteResult{Matched: true, Modified: true}, res)

	res, err = repo.Replace(ctx, "missing", p)
	require.NoError(t, err)
	assert.False(t, res.Matched)

	mine, err := repo.List(ctx, pets.Filter{OwnerEmail: "o@x.com"})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrNotFound)
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	u, err := repo.Create(ctx, users.User{Email: "a@x.com"})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, users.ErrNotFound)

	res, err := repo.UpdateRole(ctx, u.ID, users.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteResult{Matched: true, Modified: true}, res)

	res, err = repo.UpdateRole(ctx, u.ID, users.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteResult{Matched: true, Modified: false}, res)
}

func TestDonationRepo_AppendAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewDonationRepo()

	c, err := repo.Create(ctx, donations.Campaign{Name: "Shelter roof", UserDonations: []donations.Donation{}})
	require.NoError(t, err)

	d := donations.Donation{DonorEmail: "a@x.com", Date: "2024-01-01", Amount: 10}
	after, err := repo.AppendDonation(ctx, c.ID, d)
	require.NoError(t, err)
	assert.Equal(t, []donations.Donation{d}, after.UserDonations)
	assert.Equal(t, 10.0, after.Donated)

	other := donations.Donation{DonorEmail: "b@x.com", Date: "2024-01-02", Amount: 5}
	_, err = repo.AppendDonation(ctx, c.ID, other)
	require.NoError(t, err)

	_, _, err = repo.RemoveDonation(ctx, c.ID, "nobody@x.com", "2024-01-01")
	assert.ErrorIs(t, err, donations.ErrDonationNotFound)

	after, removed, err := repo.RemoveDonation(ctx, c.ID, "a@x.com", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 10.0, removed)
	assert.Equal(t, []donations.Donation{other}, after.UserDonations)
	assert.Equal(t, 5.0, after.Donated)

	_, err = repo.AppendDonation(ctx, "missing", d)
	assert.ErrorIs(t, err, donations.ErrNotFound)
}

func TestDonationRepo_ReplaceKeepsDonations(t *testing.T) {
	ctx := context.Background()
	repo := NewDonationRepo()

	c, err := repo.Create(ctx, donations.Campaign{Name: "Food"})
	require.NoError(t, err)
	_, err = repo.AppendDonation(ctx, c.ID, donations.Donation{DonorEmail: "a@x.com", Date: "d", Amount: 3})
	require.NoError(t, err)

	stale := c
	stale.Name = "Food drive"
	stale.Donated = 0
	stale.UserDonations = nil
	res, err := repo.Replace(ctx, c.ID, stale)
	require.NoError(t, err)
	assert.True(t, res.Modified)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Food drive", got.Name)
	assert.Equal(t, 3.0, got.Donated)
	assert.Len(t, got.UserDonations, 1)
}

func TestAdoptionRepo_StoreOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAdoptionRepo()

	var ids []string
	for _, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		req, err := repo.Create(ctx, adoptions.Request{RequesterEmail: email})
		require.NoError(t, err)
		ids = append(ids, req.ID)
	}

	all, err := repo.List(ctx, adoptions.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids, []string{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repo.List(ctx, adoptions.Filter{RequesterEmail: "a@x.com"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	require.NoError(t, repo.Delete(ctx, ids[1]))
	all, err = repo.List(ctx, adoptions.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0], ids[2]}, []string{all[0].ID, all[1].ID})
}
