package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

type dealerFixture struct {
	svc         *DealerService
	listings    *fakeListingRepo
	bookings    *fakeBookingRepo
	dealerships *fakeDealershipRepo

	dealer     *models.User
	customer   *models.User
	dealership *models.Dealership
}

func newDealerFixture(t *testing.T) *dealerFixture {
	t.Helper()

	dealer := &models.User{ID: primitive.NewObjectID(), Username: "showroom", IsDealer: true}
	customer := &models.User{ID: primitive.NewObjectID(), Username: "asha"}
	dealership := &models.Dealership{
		ID:      primitive.NewObjectID(),
		Name:    "Sunrise Motors",
		OwnerID: dealer.ID,
	}

	listings := newFakeListingRepo()
	bookings := newFakeBookingRepo()
	dealerships := newFakeDealershipRepo(dealership)
	users := newFakeUserRepo(dealer, customer)

	return &dealerFixture{
		svc:         NewDealerService(dealerships, listings, bookings, users, nil, testLogger()),
		listings:    listings,
		bookings:    bookings,
		dealerships: dealerships,
		dealer:      dealer,
		customer:    customer,
		dealership:  dealership,
	}
}

func branchInput(name string) *BranchInput {
	return &BranchInput{
		Name:    name,
		Address: "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Zipcode: "560001",
	}
}

func TestDealerBranchLifecycle(t *testing.T) {
	f := newDealerFixture(t)
	ctx := context.Background()

	branch, err := f.svc.CreateBranch(ctx, f.dealer.ID, branchInput("MG Road"))
	require.NoError(t, err)
	assert.Equal(t, f.dealership.ID, branch.DealershipID)

	updated, err := f.svc.UpdateBranch(ctx, f.dealer.ID, branch.ID.Hex(), branchInput("Indiranagar"))
	require.NoError(t, err)
	assert.Equal(t, "Indiranagar", updated.Name)

	branches, err := f.svc.ListBranches(ctx, f.dealer.ID)
	require.NoError(t, err)
	require.Len(t, branches, 1)

	require.NoError(t, f.svc.DeleteBranch(ctx, f.dealer.ID, branch.ID.Hex()))

	branches, err = f.svc.ListBranches(ctx, f.dealer.ID)
	require.NoError(t, err)
	assert.Empty(t, branches)
}

func TestDealerBranchForeignOwnership(t *testing.T) {
	f := newDealerFixture(t)
	ctx := context.Background()

	other := &models.Branch{
		DealershipID: primitive.NewObjectID(),
		Name:         "Rival Branch",
		Address:      "1 Ring Road",
		City:         "Pune",
		State:        "Maharashtra",
		Zipcode:      "411001",
	}
	require.NoError(t, f.dealerships.CreateBranch(ctx, other))

	_, err := f.svc.UpdateBranch(ctx, f.dealer.ID, other.ID.Hex(), branchInput("Hijacked"))
	requireDomainCode(t, err, CodeBranchNotOwned)

	err = f.svc.DeleteBranch(ctx, f.dealer.ID, other.ID.Hex())
	requireDomainCode(t, err, CodeBranchNotOwned)
}

func TestDealerPortalRequiresDealerAccount(t *testing.T) {
	f := newDealerFixture(t)

	_, err := f.svc.Dashboard(context.Background(), f.customer.ID)
	requireDomainCode(t, err, CodeNotADealer)
}

func TestDealerDashboardAggregates(t *testing.T) {
	f := newDealerFixture(t)
	ctx := context.Background()

	branch, err := f.svc.CreateBranch(ctx, f.dealer.ID, branchInput("MG Road"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		listing := &models.VehicleListing{
			Brand:    models.RefSummary{ID: primitive.NewObjectID(), Name: "Honda"},
			Dealer:   f.dealership.Summary(),
			Branch:   branch.Summary(),
			Name:     "Activa 6G",
			Category: models.CategoryScooter,
			FuelType: models.FuelPetrol,
			Price:    95000,
			Type:     models.ListingTypeNew,
			Status:   models.ListingStatusAvailable,
		}
		require.NoError(t, f.listings.Create(ctx, listing))
	}

	pending := &models.Booking{
		UserID:    f.customer.ID,
		VehicleID: primitive.NewObjectID(),
		BranchID:  &branch.ID,
		Type:      models.BookingTestRide,
		Status:    models.BookingStatusPending,
	}
	require.NoError(t, f.bookings.Create(ctx, pending))
	confirmed := &models.Booking{
		UserID:    f.customer.ID,
		VehicleID: primitive.NewObjectID(),
		BranchID:  &branch.ID,
		Type:      models.BookingInquiry,
		Status:    models.BookingStatusConfirmed,
	}
	require.NoError(t, f.bookings.Create(ctx, confirmed))

	dashboard, err := f.svc.Dashboard(ctx, f.dealer.ID)
	require.NoError(t, err)

	assert.Equal(t, f.dealership.ID.Hex(), dashboard.DealershipID)
	assert.EqualValues(t, 3, dashboard.TotalListings)
	assert.EqualValues(t, 2, dashboard.TotalBookings)
	assert.EqualValues(t, 1, dashboard.PendingBookings)
	assert.Equal(t, 1, dashboard.BranchCount)

	today := time.Now().Format("2006-01-02")
	require.Len(t, dashboard.BookingSeries, 1)
	assert.Equal(t, today, dashboard.BookingSeries[0].Date)
	assert.EqualValues(t, 2, dashboard.BookingSeries[0].Count)
}
