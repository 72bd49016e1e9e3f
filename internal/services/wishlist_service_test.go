package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

func seedWishlistListing(t *testing.T, listings *fakeListingRepo, name string) *models.VehicleListing {
	t.Helper()
	listing := &models.VehicleListing{
		Brand:    models.RefSummary{ID: primitive.NewObjectID(), Name: "Honda"},
		Name:     name,
		Category: models.CategoryBike,
		FuelType: models.FuelPetrol,
		Price:    125000,
		Type:     models.ListingTypeNew,
		Status:   models.ListingStatusAvailable,
		Stock:    2,
	}
	require.NoError(t, listings.Create(context.Background(), listing))
	return listing
}

func TestWishlistAddAndList(t *testing.T) {
	listings := newFakeListingRepo()
	svc := NewWishlistService(newFakeWishlistRepo(), listings, testLogger())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	first := seedWishlistListing(t, listings, "CB350")
	second := seedWishlistListing(t, listings, "Hness")

	_, err := svc.Add(ctx, userID, first.ID.Hex())
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, second.ID.Hex())
	require.NoError(t, err)

	saved, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestWishlistAddTwiceConflicts(t *testing.T) {
	listings := newFakeListingRepo()
	svc := NewWishlistService(newFakeWishlistRepo(), listings, testLogger())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	listing := seedWishlistListing(t, listings, "CB350")

	_, err := svc.Add(ctx, userID, listing.ID.Hex())
	require.NoError(t, err)

	_, err = svc.Add(ctx, userID, listing.ID.Hex())
	requireDomainCode(t, err, CodeAlreadyWishlisted)
}

func TestWishlistAddUnknownListing(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo(), newFakeListingRepo(), testLogger())

	_, err := svc.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex())
	requireDomainCode(t, err, CodeListingNotFound)
}

func TestWishlistListSkipsDeletedListings(t *testing.T) {
	listings := newFakeListingRepo()
	svc := NewWishlistService(newFakeWishlistRepo(), listings, testLogger())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	kept := seedWishlistListing(t, listings, "CB350")
	gone := seedWishlistListing(t, listings, "Hness")

	_, err := svc.Add(ctx, userID, kept.ID.Hex())
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, gone.ID.Hex())
	require.NoError(t, err)

	require.NoError(t, listings.Delete(ctx, gone.ID))

	saved, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, kept.ID, saved[0].ID)
}

func TestWishlistRemove(t *testing.T) {
	listings := newFakeListingRepo()
	svc := NewWishlistService(newFakeWishlistRepo(), listings, testLogger())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	listing := seedWishlistListing(t, listings, "CB350")

	_, err := svc.Add(ctx, userID, listing.ID.Hex())
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, userID, listing.ID.Hex()))

	err = svc.Remove(ctx, userID, listing.ID.Hex())
	requireDomainCode(t, err, CodeListingNotFound)
}
