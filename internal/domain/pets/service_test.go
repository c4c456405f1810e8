package pets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/domain/pets"
)

func newService() *pets.Service {
	return pets.NewService(memory.NewPetRepo())
}

func TestServiceCreate_AssignsIDAndPersists(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, pets.CreateInput{Name: "Fido", Species: "Dog"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Fido", p.Name)
	assert.Equal(t, "Dog", p.Species)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestServiceCreate_RejectsMissingFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := []pets.CreateInput{
		{Name: "", Species: "Dog"},
		{Name: "Fido", Species: ""},
		{Name: "   ", Species: "Dog"}, // solo espacios = vacío
		{},
	}
	for _, in := range cases {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, pets.ErrInvalidInput, "input %+v", in)
	}

	items, err := svc.List(ctx, pets.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items, "rejected creates must not persist")
}

func TestServiceUpdate_AppliesOnlySuppliedFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, pets.CreateInput{Name: "Fido", Species: "Dog"})
	require.NoError(t, err)

	name := "Fido the Great"
	updated, err := svc.Update(ctx, p.ID, pets.UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Fido the Great", updated.Name)
	assert.Equal(t, "Dog", updated.Species, "unsupplied field must keep prior value")
	assert.Equal(t, p.ID, updated.ID)

	species := "Cat"
	updated, err = svc.Update(ctx, p.ID, pets.UpdateInput{Species: &species})
	require.NoError(t, err)
	assert.Equal(t, "Fido the Great", updated.Name)
	assert.Equal(t, "Cat", updated.Species)
}

func TestServiceUpdate_RejectsEmptySuppliedField(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, pets.CreateInput{Name: "Fido", Species: "Dog"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, p.ID, pets.UpdateInput{Name: &empty})
	assert.ErrorIs(t, err, pets.ErrInvalidInput)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fido", got.Name, "rejected update must not mutate the record")
}

func TestServiceUpdate_NotFound(t *testing.T) {
	svc := newService()

	name := "Ghost"
	_, err := svc.Update(context.Background(), 99, pets.UpdateInput{Name: &name})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestServiceDelete_RemovesRecord(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, pets.CreateInput{Name: "Fido", Species: "Dog"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	err = svc.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestServiceList_SpeciesFilter(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, pets.CreateInput{Name: "Fido", Species: "Dog"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, pets.CreateInput{Name: "Whiskers", Species: "Cat"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, pets.CreateInput{Name: "Rex", Species: "Dog"})
	require.NoError(t, err)

	all, err := svc.List(ctx, pets.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	dog := "Dog"
	dogs, err := svc.List(ctx, pets.ListFilter{Species: &dog})
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	for _, p := range dogs {
		assert.Equal(t, "Dog", p.Species)
	}

	// Match exacto, sin case folding
	lower := "dog"
	none, err := svc.List(ctx, pets.ListFilter{Species: &lower})
	require.NoError(t, err)
	assert.Empty(t, none)
}
