package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/pkg/logger"
)

type ReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// RatingSummary accompanies a review page with the aggregate.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ReviewService struct {
	reviews  interfaces.ReviewRepository
	listings interfaces.ListingRepository
	users    interfaces.UserRepository
	logger   *logger.Logger
}

func NewReviewService(reviews interfaces.ReviewRepository, listings interfaces.ListingRepository, users interfaces.UserRepository, log *logger.Logger) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		listings: listings,
		users:    users,
		logger:   log,
	}
}

func (s *ReviewService) Create(ctx context.Context, userID primitive.ObjectID, vehicleID string, input *ReviewInput) (*models.Review, error) {
	oid, err := parseObjectID(vehicleID)
	if err != nil {
		return nil, NewNotFoundError(CodeListingNotFound, "listing does not exist")
	}
	if _, err := s.listings.GetByID(ctx, oid); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewNotFoundError(CodeListingNotFound, "listing does not exist")
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:    userID,
		UserName:  user.FullName(),
		VehicleID: oid,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, vehicleID string, page interfaces.Page) ([]*models.Review, int64, *RatingSummary, error) {
	oid, err := parseObjectID(vehicleID)
	if err != nil {
		return nil, 0, nil, NewNotFoundError(CodeListingNotFound, "listing does not exist")
	}

	reviews, total, err := s.reviews.ListByListing(ctx, oid, page)
	if err != nil {
		return nil, 0, nil, err
	}

	avg, count, err := s.reviews.AverageRating(ctx, oid)
	if err != nil {
		return nil, 0, nil, err
	}

	return reviews, total, &RatingSummary{Average: avg, Count: count}, nil
}
