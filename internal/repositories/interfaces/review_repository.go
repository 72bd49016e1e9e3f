package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByListing(ctx context.Context, listingID primitive.ObjectID, page Page) ([]*models.Review, int64, error)
	AverageRating(ctx context.Context, listingID primitive.ObjectID) (float64, int64, error)
}
