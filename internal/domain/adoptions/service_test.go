package adoptions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
)

func TestCreate_FillsFromPet(t *testing.T) {
	ctx := context.Background()
	petSvc := pets.NewService(memory.NewPetRepo(), nil)
	p, err := petSvc.Create(ctx, "owner@x.com", pets.CreateInput{Name: "Milo", Image: "milo.png"})
	require.NoError(t, err)

	svc := adoptions.NewService(memory.NewAdoptionRepo(), petSvc, nil)
	req, err := svc.Create(ctx, adoptions.CreateInput{
		PetID:          p.ID,
		RequesterName:  "Ana",
		RequesterEmail: "Ana@X.com",
		Extra:          map[string]any{"hasYard": true},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "Milo", req.PetName)
	assert.Equal(t, "milo.png", req.PetImage)
	assert.Equal(t, "owner@x.com", req.OwnerEmail)
	assert.Equal(t, "ana@x.com", req.RequesterEmail)
	assert.Equal(t, true, req.Extra["hasYard"])
}

func TestCreate_UnknownPetKeepsInput(t *testing.T) {
	ctx := context.Background()
	petSvc := pets.NewService(memory.NewPetRepo(), nil)
	svc := adoptions.NewService(memory.NewAdoptionRepo(), petSvc, nil)

	req, err := svc.Create(ctx, adoptions.CreateInput{PetID: "gone", PetName: "Rex", RequesterEmail: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Rex", req.PetName)
	assert.Empty(t, req.OwnerEmail)
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := adoptions.NewService(memory.NewAdoptionRepo(), nil, nil)

	a, err := svc.Create(ctx, adoptions.CreateInput{PetID: "p1", RequesterEmail: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, adoptions.CreateInput{PetID: "p2", RequesterEmail: "b@x.com"})
	require.NoError(t, err)

	mine, err := svc.List(ctx, adoptions.Filter{RequesterEmail: "A@x.com"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a.ID, mine[0].ID)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Create(ctx, adoptions.CreateInput{PetID: "p3"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
