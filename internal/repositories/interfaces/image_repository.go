package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

type ImageRepository interface {
	InsertMany(ctx context.Context, images []*models.VehicleImage) error
	ListByListing(ctx context.Context, listingID primitive.ObjectID) ([]*models.VehicleImage, error)
	DeleteByListing(ctx context.Context, listingID primitive.ObjectID) error
}
