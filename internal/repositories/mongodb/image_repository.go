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

type imageRepository struct {
	collection *mongo.Collection
}

func NewImageRepository(db *mongo.Database) interfaces.ImageRepository {
	return &imageRepository{
		collection: db.Collection("listing_images"),
	}
}

func (r *imageRepository) InsertMany(ctx context.Context, images []*models.VehicleImage) error {
	if len(images) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(images))
	for _, img := range images {
		if img.ID.IsZero() {
			img.ID = primitive.NewObjectID()
		}
		img.CreatedAt = now
		docs = append(docs, img)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert listing images: %w", err)
	}

	return nil
}

func (r *imageRepository) ListByListing(ctx context.Context, listingID primitive.ObjectID) ([]*models.VehicleImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"listing_id": listingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list listing images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []*models.VehicleImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode listing images: %w", err)
	}

	return images, nil
}

func (r *imageRepository) DeleteByListing(ctx context.Context, listingID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"listing_id": listingID})
	if err != nil {
		return fmt.Errorf("failed to delete listing images: %w", err)
	}

	return nil
}
