package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/pkg/logger"
)

type WishlistService struct {
	wishlist interfaces.WishlistRepository
	listings interfaces.ListingRepository
	logger   *logger.Logger
}

func NewWishlistService(wishlist interfaces.WishlistRepository, listings interfaces.ListingRepository, log *logger.Logger) *WishlistService {
	return &WishlistService{
		wishlist: wishlist,
		listings: listings,
		logger:   log,
	}
}

func (s *WishlistService) Add(ctx context.Context, userID primitive.ObjectID, vehicleID string) (*models.WishlistItem, error) {
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

	item := &models.WishlistItem{UserID: userID, VehicleID: oid}
	if err := s.wishlist.Create(ctx, item); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return nil, NewConflictError(CodeAlreadyWishlisted, "listing is already in the wishlist")
		}
		return nil, err
	}

	return item, nil
}

// List returns the user's saved listings. Items whose listing has since been
// deleted are skipped.
func (s *WishlistService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.VehicleListing, error) {
	items, err := s.wishlist.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	listings := make([]*models.VehicleListing, 0, len(items))
	for _, item := range items {
		listing, err := s.listings.GetByID(ctx, item.VehicleID)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				continue
			}
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID primitive.ObjectID, vehicleID string) error {
	oid, err := parseObjectID(vehicleID)
	if err != nil {
		return NewNotFoundError(CodeListingNotFound, "listing does not exist")
	}

	if err := s.wishlist.Delete(ctx, userID, oid); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NewNotFoundError(CodeListingNotFound, "listing is not in the wishlist")
		}
		return err
	}

	return nil
}
