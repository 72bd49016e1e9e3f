package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/internal/utils"
	"vahanbazar/pkg/cache"
	"vahanbazar/pkg/logger"
)

type BranchInput struct {
	Name            string                 `json:"name" validate:"required,max=200"`
	Address         string                 `json:"address" validate:"required"`
	City            string                 `json:"city" validate:"required,max=100"`
	State           string                 `json:"state" validate:"required,max=100"`
	Zipcode         string                 `json:"zipcode" validate:"required,len=6,numeric"`
	ContactNumber   string                 `json:"contact_number" validate:"max=20"`
	LocationDetails map[string]interface{} `json:"location_details"`
}

// DealerDashboard aggregates a dealership's activity for the portal home.
type DealerDashboard struct {
	DealershipID    string                  `json:"dealership_id"`
	TotalListings   int64                   `json:"total_listings"`
	TotalBookings   int64                   `json:"total_bookings"`
	PendingBookings int64                   `json:"pending_bookings"`
	BranchCount     int                     `json:"branch_count"`
	BookingSeries   []interfaces.DailyCount `json:"booking_series"`
}

type DealerService struct {
	dealerships interfaces.DealershipRepository
	listings    interfaces.ListingRepository
	bookings    interfaces.BookingRepository
	users       interfaces.UserRepository
	cache       *cache.RedisCache
	logger      *logger.Logger
}

func NewDealerService(
	dealerships interfaces.DealershipRepository,
	listings interfaces.ListingRepository,
	bookings interfaces.BookingRepository,
	users interfaces.UserRepository,
	redisCache *cache.RedisCache,
	log *logger.Logger,
) *DealerService {
	return &DealerService{
		dealerships: dealerships,
		listings:    listings,
		bookings:    bookings,
		users:       users,
		cache:       redisCache,
		logger:      log,
	}
}

// Dashboard returns the dealer portal aggregates, cached for a few minutes
// per dealership.
func (s *DealerService) Dashboard(ctx context.Context, actorID primitive.ObjectID) (*DealerDashboard, error) {
	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(utils.CacheKeyDealerDashboard, dealership.ID.Hex())
	if s.cache != nil {
		var cached DealerDashboard
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	branches, err := s.dealerships.ListBranches(ctx, dealership.ID)
	if err != nil {
		return nil, err
	}
	branchIDs := make([]primitive.ObjectID, 0, len(branches))
	for _, branch := range branches {
		branchIDs = append(branchIDs, branch.ID)
	}

	totalListings, err := s.listings.CountByDealer(ctx, dealership.ID)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.CountByBranches(ctx, branchIDs, "")
	if err != nil {
		return nil, err
	}
	pendingBookings, err := s.bookings.CountByBranches(ctx, branchIDs, models.BookingStatusPending)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -utils.DashboardSeriesDays)
	series, err := s.bookings.DailyCounts(ctx, branchIDs, since)
	if err != nil {
		return nil, err
	}

	dashboard := &DealerDashboard{
		DealershipID:    dealership.ID.Hex(),
		TotalListings:   totalListings,
		TotalBookings:   totalBookings,
		PendingBookings: pendingBookings,
		BranchCount:     len(branches),
		BookingSeries:   series,
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, dashboard, utils.DashboardCacheTTL)
	}
	return dashboard, nil
}

func (s *DealerService) ListBranches(ctx context.Context, actorID primitive.ObjectID) ([]*models.Branch, error) {
	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.dealerships.ListBranches(ctx, dealership.ID)
}

func (s *DealerService) CreateBranch(ctx context.Context, actorID primitive.ObjectID, input *BranchInput) (*models.Branch, error) {
	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return nil, err
	}

	branch := &models.Branch{
		DealershipID:    dealership.ID,
		Name:            input.Name,
		Address:         input.Address,
		City:            input.City,
		State:           input.State,
		Zipcode:         input.Zipcode,
		ContactNumber:   input.ContactNumber,
		LocationDetails: input.LocationDetails,
	}
	if err := s.dealerships.CreateBranch(ctx, branch); err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx, dealership.ID)
	return branch, nil
}

func (s *DealerService) UpdateBranch(ctx context.Context, actorID primitive.ObjectID, id string, input *BranchInput) (*models.Branch, error) {
	branch, dealership, err := s.ownedBranch(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	branch.Name = input.Name
	branch.Address = input.Address
	branch.City = input.City
	branch.State = input.State
	branch.Zipcode = input.Zipcode
	branch.ContactNumber = input.ContactNumber
	branch.LocationDetails = input.LocationDetails

	if err := s.dealerships.UpdateBranch(ctx, branch); err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx, dealership.ID)
	return branch, nil
}

func (s *DealerService) DeleteBranch(ctx context.Context, actorID primitive.ObjectID, id string) error {
	branch, dealership, err := s.ownedBranch(ctx, actorID, id)
	if err != nil {
		return err
	}

	if err := s.dealerships.DeleteBranch(ctx, branch.ID); err != nil {
		return err
	}

	s.invalidateDashboard(ctx, dealership.ID)
	return nil
}

func (s *DealerService) ownedBranch(ctx context.Context, actorID primitive.ObjectID, id string) (*models.Branch, *models.Dealership, error) {
	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, nil, NewNotFoundError(CodeBranchNotFound, "branch does not exist")
	}
	branch, err := s.dealerships.GetBranch(ctx, oid)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, nil, NewNotFoundError(CodeBranchNotFound, "branch does not exist")
		}
		return nil, nil, err
	}
	if branch.DealershipID != dealership.ID {
		return nil, nil, NewAuthorizationError(CodeBranchNotOwned, "branch belongs to a different dealership")
	}

	return branch, dealership, nil
}

func (s *DealerService) requireDealership(ctx context.Context, actorID primitive.ObjectID) (*models.Dealership, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.IsDealer {
		return nil, NewAuthorizationError(CodeNotADealer, "only dealer accounts can access the dealer portal")
	}
	dealership, err := s.dealerships.GetByOwner(ctx, user.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewAuthorizationError(CodeNoDealership, "dealer account has no dealership")
		}
		return nil, err
	}
	return dealership, nil
}

func (s *DealerService) invalidateDashboard(ctx context.Context, dealershipID primitive.ObjectID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, fmt.Sprintf(utils.CacheKeyDealerDashboard, dealershipID.Hex()))
	}
}
