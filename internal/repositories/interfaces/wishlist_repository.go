package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

type WishlistRepository interface {
	Create(ctx context.Context, item *models.WishlistItem) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.WishlistItem, error)
	Delete(ctx context.Context, userID, vehicleID primitive.ObjectID) error
}
