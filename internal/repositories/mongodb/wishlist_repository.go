package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
)

type wishlistRepository struct {
	collection *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) interfaces.WishlistRepository {
	return &wishlistRepository{
		collection: db.Collection("wishlist_items"),
	}
}

func (r *wishlistRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("wishlist item: %w", interfaces.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}

	return nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.WishlistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*models.WishlistItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist: %w", err)
	}

	return items, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "vehicle_id": vehicleID})
	if err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("wishlist item: %w", interfaces.ErrNotFound)
	}

	return nil
}
