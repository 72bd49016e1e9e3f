package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
)

type brandRepository struct {
	collection *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) interfaces.BrandRepository {
	return &brandRepository{
		collection: db.Collection("brands"),
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	brand.ID = primitive.NewObjectID()
	brand.CreatedAt = time.Now()
	brand.UpdatedAt = brand.CreatedAt

	_, err := r.collection.InsertOne(ctx, brand)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("brand %q: %w", brand.Name, interfaces.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}

	return nil
}

func (r *brandRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var brand models.Brand
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("brand %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return &brand, nil
}

func (r *brandRepository) GetByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&brand)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("brand %q: %w", name, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get brand by name: %w", err)
	}

	return &brand, nil
}

func (r *brandRepository) List(ctx context.Context, page interfaces.Page) ([]*models.Brand, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}
	defer cursor.Close(ctx)

	var brands []*models.Brand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, 0, fmt.Errorf("failed to decode brands: %w", err)
	}

	return brands, total, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	brand.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": brand.ID}, brand)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("brand %q: %w", brand.Name, interfaces.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update brand: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("brand %s: %w", brand.ID.Hex(), interfaces.ErrNotFound)
	}

	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("brand %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	return nil
}
