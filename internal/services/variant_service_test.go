package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

func TestVariantResolveInlineCreatesScoped(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo(), testLogger())
	ctx := context.Background()
	modelID := primitive.NewObjectID()

	variant, err := svc.Resolve(ctx, modelID, models.VariantRef{
		Inline: &models.VariantInput{Name: "Disc Brake", Specs: map[string]interface{}{"brake": "disc"}},
	})
	require.NoError(t, err)
	assert.Equal(t, modelID, variant.VehicleModelID)
	assert.Equal(t, "Disc Brake", variant.Name)
}

func TestVariantResolveInlineReusesExisting(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo(), testLogger())
	ctx := context.Background()
	modelID := primitive.NewObjectID()

	first, err := svc.Resolve(ctx, modelID, models.VariantRef{
		Inline: &models.VariantInput{Name: "Standard"},
	})
	require.NoError(t, err)

	second, err := svc.Resolve(ctx, modelID, models.VariantRef{
		Inline: &models.VariantInput{Name: "Standard"},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestVariantResolveSameNameDifferentModel(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo(), testLogger())
	ctx := context.Background()

	first, err := svc.Resolve(ctx, primitive.NewObjectID(), models.VariantRef{
		Inline: &models.VariantInput{Name: "Standard"},
	})
	require.NoError(t, err)

	// Uniqueness is per model, so the same name elsewhere is a fresh variant.
	second, err := svc.Resolve(ctx, primitive.NewObjectID(), models.VariantRef{
		Inline: &models.VariantInput{Name: "Standard"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestVariantResolveUnknownID(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo(), testLogger())

	missing := primitive.NewObjectID()
	_, err := svc.Resolve(context.Background(), primitive.NewObjectID(), models.VariantRef{ID: &missing})
	requireDomainCode(t, err, CodeVariantNotFound)
}

func TestVariantExplicitCreateRejectsDuplicate(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo(), testLogger())
	ctx := context.Background()
	modelID := primitive.NewObjectID()

	_, err := svc.Create(ctx, modelID, &models.VariantInput{Name: "Deluxe"})
	require.NoError(t, err)

	// Unlike Resolve, the explicit path does not reuse.
	_, err = svc.Create(ctx, modelID, &models.VariantInput{Name: "Deluxe"})
	requireDomainCode(t, err, CodeDuplicateVariant)
}

func TestVariantUpdateAndDelete(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo(), testLogger())
	ctx := context.Background()
	modelID := primitive.NewObjectID()

	variant, err := svc.Create(ctx, modelID, &models.VariantInput{Name: "Base"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, variant.ID.Hex(), &models.VariantInput{Name: "Base Plus"})
	require.NoError(t, err)
	assert.Equal(t, "Base Plus", updated.Name)

	require.NoError(t, svc.Delete(ctx, variant.ID.Hex()))
	_, err = svc.Get(ctx, variant.ID.Hex())
	requireDomainCode(t, err, CodeVariantNotFound)
}
