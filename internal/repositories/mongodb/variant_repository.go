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

type variantRepository struct {
	collection *mongo.Collection
}

func NewVariantRepository(db *mongo.Database) interfaces.VariantRepository {
	return &variantRepository{
		collection: db.Collection("vehicle_model_variants"),
	}
}

func (r *variantRepository) Create(ctx context.Context, variant *models.VehicleModelVariant) error {
	variant.ID = primitive.NewObjectID()
	variant.CreatedAt = time.Now()
	variant.UpdatedAt = variant.CreatedAt

	_, err := r.collection.InsertOne(ctx, variant)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("variant %q: %w", variant.Name, interfaces.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create variant: %w", err)
	}

	return nil
}

func (r *variantRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleModelVariant, error) {
	var variant models.VehicleModelVariant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&variant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("variant %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get variant: %w", err)
	}

	return &variant, nil
}

func (r *variantRepository) GetByModelAndName(ctx context.Context, modelID primitive.ObjectID, name string) (*models.VehicleModelVariant, error) {
	var variant models.VehicleModelVariant
	err := r.collection.FindOne(ctx, bson.M{"vehicle_model_id": modelID, "name": name}).Decode(&variant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("variant %q: %w", name, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get variant by name: %w", err)
	}

	return &variant, nil
}

func (r *variantRepository) ListByModel(ctx context.Context, modelID primitive.ObjectID) ([]*models.VehicleModelVariant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"vehicle_model_id": modelID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	defer cursor.Close(ctx)

	var variants []*models.VehicleModelVariant
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, fmt.Errorf("failed to decode variants: %w", err)
	}

	return variants, nil
}

func (r *variantRepository) Update(ctx context.Context, variant *models.VehicleModelVariant) error {
	variant.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": variant.ID}, variant)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("variant %q: %w", variant.Name, interfaces.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update variant: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("variant %s: %w", variant.ID.Hex(), interfaces.ErrNotFound)
	}

	return nil
}

func (r *variantRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete variant: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("variant %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	return nil
}
