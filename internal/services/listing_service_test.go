package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
)

type listingFixture struct {
	svc      *ListingService
	listings *fakeListingRepo
	images   *fakeImageRepo
	blobs    *fakeStorage
	brands   *fakeBrandRepo
	variants *fakeVariantRepo

	dealer     *models.User
	seller     *models.User
	manager    *models.User
	dealership *models.Dealership
	branch     *models.Branch
}

func newListingFixture(t *testing.T) *listingFixture {
	t.Helper()

	dealer := &models.User{ID: primitive.NewObjectID(), Username: "showroom", IsDealer: true}
	seller := &models.User{ID: primitive.NewObjectID(), Username: "ravi", FirstName: "Ravi", LastName: "Kumar"}
	manager := &models.User{ID: primitive.NewObjectID(), Username: "admin", IsManager: true}

	dealership := &models.Dealership{
		ID:      primitive.NewObjectID(),
		Name:    "Sunrise Motors",
		OwnerID: dealer.ID,
	}

	users := newFakeUserRepo(dealer, seller, manager)
	dealerships := newFakeDealershipRepo(dealership)

	branch := &models.Branch{
		DealershipID: dealership.ID,
		Name:         "MG Road",
		Address:      "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Zipcode:      "560001",
	}
	require.NoError(t, dealerships.CreateBranch(context.Background(), branch))

	log := testLogger()
	listings := newFakeListingRepo()
	images := newFakeImageRepo()
	blobs := newFakeStorage()
	brands := newFakeBrandRepo()
	variants := newFakeVariantRepo()

	svc := NewListingService(
		listings,
		users,
		dealerships,
		NewBrandService(brands, log),
		NewVariantService(variants, log),
		NewImageService(images, blobs, log),
		&fakeTx{brands: brands, variants: variants, listings: listings, images: images},
		nil,
		log,
	)

	return &listingFixture{
		svc:        svc,
		listings:   listings,
		images:     images,
		blobs:      blobs,
		brands:     brands,
		variants:   variants,
		dealer:     dealer,
		seller:     seller,
		manager:    manager,
		dealership: dealership,
		branch:     branch,
	}
}

func makeUploads(n int) []ImageUpload {
	uploads := make([]ImageUpload, 0, n)
	for i := 0; i < n; i++ {
		uploads = append(uploads, ImageUpload{
			Filename:    fmt.Sprintf("photo-%d.jpg", i),
			ContentType: "image/jpeg",
			Size:        1024,
			Reader:      strings.NewReader("jpeg bytes"),
		})
	}
	return uploads
}

func usedInput() *ListingInput {
	return &ListingInput{
		Name:     "Splendor Plus 2021",
		Brand:    models.BrandRef{Inline: &models.BrandInput{Name: "hero"}},
		Category: models.CategoryBike,
		FuelType: models.FuelPetrol,
		Price:    45000,
		Type:     models.ListingTypeUsed,
	}
}

func newInput(branchID string) *ListingInput {
	stock := 4
	return &ListingInput{
		Name:     "Pulsar NS200",
		Brand:    models.BrandRef{Inline: &models.BrandInput{Name: "bajaj"}},
		Category: models.CategoryBike,
		FuelType: models.FuelPetrol,
		Price:    145000,
		Stock:    &stock,
		Branch:   branchID,
	}
}

func TestParseListingInputMalformed(t *testing.T) {
	_, err := ParseListingInput([]byte("{not json"))
	requireDomainCode(t, err, CodeMalformedPayload)
}

func TestParseListingInputBrandForms(t *testing.T) {
	id := primitive.NewObjectID()
	input, err := ParseListingInput([]byte(fmt.Sprintf(`{"name":"x","brand":%q}`, id.Hex())))
	require.NoError(t, err)
	require.NotNil(t, input.Brand.ID)
	assert.Equal(t, id, *input.Brand.ID)

	input, err = ParseListingInput([]byte(`{"name":"x","brand":{"name":"hero"}}`))
	require.NoError(t, err)
	require.NotNil(t, input.Brand.Inline)
	assert.Equal(t, "hero", input.Brand.Inline.Name)
}

func TestCreateUsedListing(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)

	assert.Equal(t, models.ListingTypeUsed, detail.Type)
	require.NotNil(t, detail.Seller)
	assert.Equal(t, fx.seller.ID, detail.Seller.ID)
	assert.Equal(t, "Ravi Kumar", detail.Seller.Name)
	assert.Nil(t, detail.Dealer)
	assert.False(t, detail.Approved)
	assert.Equal(t, "Hero", detail.Brand.Name)

	require.Len(t, detail.Images, 3)
	for i, img := range detail.Images {
		assert.Equal(t, i, img.Order)
		assert.Equal(t, detail.ID, img.ListingID)
	}

	stored, err := fx.images.ListByListing(ctx, detail.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestCreateDefaultsToNewType(t *testing.T) {
	fx := newListingFixture(t)

	input := usedInput()
	input.Type = ""

	// Untyped payloads are new vehicle listings, which this user cannot post.
	_, err := fx.svc.Create(context.Background(), fx.seller.ID, input, makeUploads(3))
	requireDomainCode(t, err, CodeNotADealer)
}

func TestCreateNewListing(t *testing.T) {
	fx := newListingFixture(t)

	detail, err := fx.svc.Create(context.Background(), fx.dealer.ID, newInput(fx.branch.ID.Hex()), makeUploads(4))
	require.NoError(t, err)

	assert.Equal(t, models.ListingTypeNew, detail.Type)
	require.NotNil(t, detail.Dealer)
	assert.Equal(t, fx.dealership.ID, detail.Dealer.ID)
	require.NotNil(t, detail.Branch)
	assert.Equal(t, fx.branch.ID, detail.Branch.ID)
	assert.Nil(t, detail.Seller)
	assert.Equal(t, 4, detail.Stock)
}

func TestCreateNewListingRequiresBranch(t *testing.T) {
	fx := newListingFixture(t)

	_, err := fx.svc.Create(context.Background(), fx.dealer.ID, newInput(""), makeUploads(3))
	requireDomainCode(t, err, CodeBranchRequired)
}

func TestCreateNewListingForeignBranch(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	other := &models.Branch{
		DealershipID: primitive.NewObjectID(),
		Name:         "Rival Branch",
		Address:      "1 Rival St",
		City:         "Pune",
		State:        "Maharashtra",
		Zipcode:      "411001",
	}
	dealerships := fx.svc.dealerships.(*fakeDealershipRepo)
	require.NoError(t, dealerships.CreateBranch(ctx, other))

	_, err := fx.svc.Create(ctx, fx.dealer.ID, newInput(other.ID.Hex()), makeUploads(3))
	requireDomainCode(t, err, CodeBranchNotOwned)
}

func TestCreateDealerWithoutDealership(t *testing.T) {
	fx := newListingFixture(t)

	orphanDealer := &models.User{ID: primitive.NewObjectID(), Username: "lone", IsDealer: true}
	fx.svc.users.(*fakeUserRepo).users[orphanDealer.ID] = orphanDealer

	_, err := fx.svc.Create(context.Background(), orphanDealer.ID, newInput(fx.branch.ID.Hex()), makeUploads(3))
	requireDomainCode(t, err, CodeNoDealership)
}

func TestCreateImageCountBounds(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(2))
	requireDomainCode(t, err, CodeInsufficientImages)

	_, err = fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(11))
	requireDomainCode(t, err, CodeTooManyImages)
}

func TestCreateDiscountFieldsMismatch(t *testing.T) {
	fx := newListingFixture(t)

	discount := models.DiscountPercentage
	input := usedInput()
	input.DiscountType = &discount

	_, err := fx.svc.Create(context.Background(), fx.seller.ID, input, makeUploads(3))
	requireDomainCode(t, err, CodeDiscountFieldMismatch)
}

func TestCreateDuplicateInlineBrand(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)

	// The same inline brand name on a second compose is a conflict, the
	// client should reference the brand by id instead.
	_, err = fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	requireDomainCode(t, err, CodeDuplicateBrand)
}

func TestCreateAbortCleansUpBlobs(t *testing.T) {
	fx := newListingFixture(t)
	fx.listings.createErr = errors.New("write conflict")

	_, err := fx.svc.Create(context.Background(), fx.seller.ID, usedInput(), makeUploads(3))
	require.Error(t, err)

	// All three uploaded blobs must be gone and no image docs persisted.
	assert.Len(t, fx.blobs.deleted, 3)
	assert.Empty(t, fx.blobs.objects)
	assert.Empty(t, fx.images.images)

	// The inline brand aborts with the rest of the compose.
	assert.Empty(t, fx.brands.brands)
}

func TestCreateRetryAfterAbortSucceeds(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	fx.listings.createErr = errors.New("write conflict")
	_, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.Error(t, err)

	// The storage failure was transient; the identical payload must now
	// compose cleanly instead of tripping over a leftover brand row.
	fx.listings.createErr = nil
	detail, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)
	assert.Equal(t, "Hero", detail.Brand.Name)
	assert.Len(t, fx.brands.brands, 1)
}

func TestDetailRepresentation(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	// No specs and no discount in the payload: the representation still
	// carries an empty specs object and an explicit discount flag.
	plain, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)
	assert.NotNil(t, plain.Specs)
	assert.Empty(t, plain.Specs)
	assert.False(t, plain.HasDiscount)

	discount := models.DiscountPercentage
	value := 10.0
	input := usedInput()
	input.Name = "Splendor Plus 2020"
	input.Brand = models.BrandRef{ID: &plain.Brand.ID}
	input.DiscountType = &discount
	input.DiscountValue = &value
	input.Specs = map[string]interface{}{"color": "black"}

	discounted, err := fx.svc.Create(ctx, fx.seller.ID, input, makeUploads(3))
	require.NoError(t, err)
	assert.True(t, discounted.HasDiscount)
	assert.Equal(t, "black", discounted.Specs["color"])
}

func TestCreateWithInlineVariant(t *testing.T) {
	fx := newListingFixture(t)

	input := usedInput()
	input.Variant = &models.VariantRef{Inline: &models.VariantInput{
		Name:  "Self Start",
		Specs: map[string]interface{}{"starter": "electric"},
	}}

	detail, err := fx.svc.Create(context.Background(), fx.seller.ID, input, makeUploads(3))
	require.NoError(t, err)

	require.NotNil(t, detail.Variant)
	assert.Equal(t, "Self Start", detail.Variant.Name)

	variant, err := fx.variants.GetByID(context.Background(), detail.Variant.ID)
	require.NoError(t, err)
	assert.Equal(t, detail.ID, variant.VehicleModelID)
}

func TestUpdateReplacesImagesInOrder(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)
	oldKeys := make([]string, 0, 3)
	for _, img := range detail.Images {
		oldKeys = append(oldKeys, img.Key)
	}

	input := usedInput()
	input.Brand = models.BrandRef{ID: &detail.Brand.ID}
	input.Name = "Splendor Plus 2021 refreshed"

	updated, err := fx.svc.Update(ctx, fx.seller.ID, detail.ID.Hex(), input, makeUploads(5))
	require.NoError(t, err)

	assert.Equal(t, "Splendor Plus 2021 refreshed", updated.Name)
	require.Len(t, updated.Images, 5)
	for i, img := range updated.Images {
		assert.Equal(t, i, img.Order)
	}

	// The replaced blobs are cleaned up after commit.
	for _, key := range oldKeys {
		assert.Contains(t, fx.blobs.deleted, key)
	}
}

func TestUpdateWithoutImagesKeepsSet(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)

	input := usedInput()
	input.Brand = models.BrandRef{ID: &detail.Brand.ID}
	input.Price = 42000

	updated, err := fx.svc.Update(ctx, fx.seller.ID, detail.ID.Hex(), input, nil)
	require.NoError(t, err)

	assert.Equal(t, 42000.0, updated.Price)
	assert.Len(t, updated.Images, 3)
	assert.Empty(t, fx.blobs.deleted)
}

func TestUpdateChangesTypeNewToUsed(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.dealer.ID, newInput(fx.branch.ID.Hex()), makeUploads(3))
	require.NoError(t, err)

	year := 2023
	km := 8000
	input := usedInput()
	input.Brand = models.BrandRef{ID: &detail.Brand.ID}
	input.Name = detail.Name
	input.Year = &year
	input.KmDriven = &km

	updated, err := fx.svc.Update(ctx, fx.dealer.ID, detail.ID.Hex(), input, nil)
	require.NoError(t, err)

	assert.Equal(t, models.ListingTypeUsed, updated.Type)
	require.NotNil(t, updated.Seller)
	assert.Equal(t, fx.dealer.ID, updated.Seller.ID)
	assert.Nil(t, updated.Dealer)
	assert.Nil(t, updated.Branch)
}

func TestUpdateByNonOwner(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)

	stranger := &models.User{ID: primitive.NewObjectID(), Username: "stranger"}
	fx.svc.users.(*fakeUserRepo).users[stranger.ID] = stranger

	input := usedInput()
	input.Brand = models.BrandRef{ID: &detail.Brand.ID}

	_, err = fx.svc.Update(ctx, stranger.ID, detail.ID.Hex(), input, nil)
	requireDomainCode(t, err, CodeNotOwner)
}

func TestSetStock(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.dealer.ID, newInput(fx.branch.ID.Hex()), makeUploads(3))
	require.NoError(t, err)

	require.NoError(t, fx.svc.SetStock(ctx, fx.dealer.ID, detail.ID.Hex(), 9))

	stored, err := fx.listings.GetByID(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, stored.Stock)

	err = fx.svc.SetStock(ctx, fx.dealer.ID, detail.ID.Hex(), -1)
	requireDomainCode(t, err, CodeValidationFailed)
}

func TestToggleFeatured(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.dealer.ID, newInput(fx.branch.ID.Hex()), makeUploads(3))
	require.NoError(t, err)

	on, err := fx.svc.ToggleFeatured(ctx, fx.dealer.ID, detail.ID.Hex())
	require.NoError(t, err)
	assert.True(t, on)

	off, err := fx.svc.ToggleFeatured(ctx, fx.dealer.ID, detail.ID.Hex())
	require.NoError(t, err)
	assert.False(t, off)
}

func TestApprove(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	used, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)

	err = fx.svc.Approve(ctx, fx.seller.ID, used.ID.Hex())
	requireDomainCode(t, err, CodeNotAuthorized)

	require.NoError(t, fx.svc.Approve(ctx, fx.manager.ID, used.ID.Hex()))

	stored, err := fx.listings.GetByID(ctx, used.ID)
	require.NoError(t, err)
	assert.True(t, stored.Approved)
}

func TestApproveNewListingRejected(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.dealer.ID, newInput(fx.branch.ID.Hex()), makeUploads(3))
	require.NoError(t, err)

	err = fx.svc.Approve(ctx, fx.manager.ID, detail.ID.Hex())
	requireDomainCode(t, err, CodeValidationFailed)
}

func TestFeaturedFiltersUnapprovedUsed(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	used, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)
	_, err = fx.svc.ToggleFeatured(ctx, fx.seller.ID, used.ID.Hex())
	require.NoError(t, err)

	featured, err := fx.svc.Featured(ctx)
	require.NoError(t, err)
	assert.Empty(t, featured)

	require.NoError(t, fx.svc.Approve(ctx, fx.manager.ID, used.ID.Hex()))

	featured, err = fx.svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, used.ID, featured[0].ID)
}

func TestDeleteRemovesImagesAndBlobs(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	detail, err := fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)

	require.NoError(t, fx.svc.Delete(ctx, fx.seller.ID, detail.ID.Hex()))

	_, err = fx.svc.Get(ctx, detail.ID.Hex())
	requireDomainCode(t, err, CodeListingNotFound)
	assert.Empty(t, fx.blobs.objects)
}

func TestDealerListings(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, fx.dealer.ID, newInput(fx.branch.ID.Hex()), makeUploads(3))
	require.NoError(t, err)
	_, err = fx.svc.Create(ctx, fx.seller.ID, usedInput(), makeUploads(3))
	require.NoError(t, err)

	listings, total, err := fx.svc.DealerListings(ctx, fx.dealer.ID, interfaces.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, listings, 1)
	assert.Equal(t, models.ListingTypeNew, listings[0].Type)
}

func TestGetInvalidID(t *testing.T) {
	fx := newListingFixture(t)

	_, err := fx.svc.Get(context.Background(), "nope")
	requireDomainCode(t, err, CodeListingNotFound)
}
