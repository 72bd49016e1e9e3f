package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/pkg/logger"
)

// BookingInput is an incoming test ride, inquiry or service request.
type BookingInput struct {
	VehicleID     string             `json:"vehicle" validate:"required,object_id"`
	Type          models.BookingType `json:"booking_type" validate:"required,booking_type"`
	PreferredDate *time.Time         `json:"preferred_date"`
	Message       string             `json:"message" validate:"max=2000"`
}

type BookingService struct {
	bookings      interfaces.BookingRepository
	listings      interfaces.ListingRepository
	dealerships   interfaces.DealershipRepository
	users         interfaces.UserRepository
	notifications interfaces.NotificationRepository
	logger        *logger.Logger
}

func NewBookingService(
	bookings interfaces.BookingRepository,
	listings interfaces.ListingRepository,
	dealerships interfaces.DealershipRepository,
	users interfaces.UserRepository,
	notifications interfaces.NotificationRepository,
	log *logger.Logger,
) *BookingService {
	return &BookingService{
		bookings:      bookings,
		listings:      listings,
		dealerships:   dealerships,
		users:         users,
		notifications: notifications,
		logger:        log,
	}
}

// Create records a booking against a listing and notifies the dealership
// owner when the listing has one. A failed notification does not fail the
// booking.
func (s *BookingService) Create(ctx context.Context, userID primitive.ObjectID, input *BookingInput) (*models.Booking, error) {
	vehicleID, err := parseObjectID(input.VehicleID)
	if err != nil {
		return nil, NewNotFoundError(CodeListingNotFound, "listing does not exist")
	}

	listing, err := s.listings.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewNotFoundError(CodeListingNotFound, "listing does not exist")
		}
		return nil, err
	}

	booking := &models.Booking{
		UserID:        userID,
		VehicleID:     listing.ID,
		Vehicle:       &models.RefSummary{ID: listing.ID, Name: listing.Name},
		Type:          input.Type,
		Status:        models.BookingStatusPending,
		PreferredDate: input.PreferredDate,
		Message:       input.Message,
	}
	if listing.Branch != nil {
		booking.BranchID = &listing.Branch.ID
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyDealer(ctx, listing, booking)
	s.logger.WithUserID(userID).WithField("booking_id", booking.ID.Hex()).Info("booking created")

	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID primitive.ObjectID, page interfaces.Page) ([]*models.Booking, int64, error) {
	return s.bookings.ListByUser(ctx, userID, page)
}

// ListForDealer returns bookings across every branch of the acting dealer's
// dealership.
func (s *BookingService) ListForDealer(ctx context.Context, actorID primitive.ObjectID, page interfaces.Page) ([]*models.Booking, int64, error) {
	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}

	branches, err := s.dealerships.ListBranches(ctx, dealership.ID)
	if err != nil {
		return nil, 0, err
	}

	branchIDs := make([]primitive.ObjectID, 0, len(branches))
	for _, branch := range branches {
		branchIDs = append(branchIDs, branch.ID)
	}

	return s.bookings.ListByBranches(ctx, branchIDs, page)
}

// UpdateStatus moves a booking through its lifecycle. The booking user can
// cancel; the dealership behind the branch can do the rest.
func (s *BookingService) UpdateStatus(ctx context.Context, actorID primitive.ObjectID, id string, status models.BookingStatus) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, NewValidationError(CodeValidationFailed, "status", "unknown booking status")
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, NewNotFoundError(CodeBookingNotFound, "booking does not exist")
	}
	booking, err := s.bookings.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewNotFoundError(CodeBookingNotFound, "booking does not exist")
		}
		return nil, err
	}

	if err := s.checkStatusActor(ctx, booking, actorID, status); err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	return booking, nil
}

func (s *BookingService) checkStatusActor(ctx context.Context, booking *models.Booking, actorID primitive.ObjectID, status models.BookingStatus) error {
	if booking.UserID == actorID {
		if status != models.BookingStatusCancelled {
			return NewAuthorizationError(CodeNotAuthorized, "customers can only cancel their bookings")
		}
		return nil
	}

	if booking.BranchID == nil {
		return NewAuthorizationError(CodeNotAuthorized, "booking cannot be managed by this account")
	}
	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return err
	}
	branch, err := s.dealerships.GetBranch(ctx, *booking.BranchID)
	if err != nil {
		return err
	}
	if branch.DealershipID != dealership.ID {
		return NewAuthorizationError(CodeNotAuthorized, "booking belongs to a different dealership")
	}

	return nil
}

func (s *BookingService) requireDealership(ctx context.Context, actorID primitive.ObjectID) (*models.Dealership, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.IsDealer {
		return nil, NewAuthorizationError(CodeNotADealer, "only dealer accounts can manage bookings")
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

func (s *BookingService) notifyDealer(ctx context.Context, listing *models.VehicleListing, booking *models.Booking) {
	if listing.Dealer == nil {
		return
	}

	dealership, err := s.dealerships.GetByID(ctx, listing.Dealer.ID)
	if err != nil {
		s.logger.WithError(err).Warn("failed to load dealership for booking notification")
		return
	}

	notification := &models.Notification{
		UserID:  dealership.OwnerID,
		Type:    models.NotificationBooking,
		Title:   "New booking received",
		Message: fmt.Sprintf("A %s request was placed for %s", booking.Type, listing.Name),
		Data: map[string]interface{}{
			"booking_id": booking.ID.Hex(),
			"vehicle_id": listing.ID.Hex(),
		},
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.WithError(err).Warn("failed to create booking notification")
	}
}
