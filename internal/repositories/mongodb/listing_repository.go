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
	"vahanbazar/internal/utils"
	"vahanbazar/pkg/cache"
)

type listingRepository struct {
	collection *mongo.Collection
	cache      *cache.RedisCache
}

func NewListingRepository(db *mongo.Database, redisCache *cache.RedisCache) interfaces.ListingRepository {
	return &listingRepository{
		collection: db.Collection("vehicle_listings"),
		cache:      redisCache,
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.VehicleListing) error {
	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt

	_, err := r.collection.InsertOne(ctx, listing)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleListing, error) {
	if listing := r.fromCache(ctx, id.Hex()); listing != nil {
		return listing, nil
	}

	var listing models.VehicleListing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("listing %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	r.toCache(ctx, &listing)
	return &listing, nil
}

func (r *listingRepository) List(ctx context.Context, filter interfaces.ListingFilter, page interfaces.Page) ([]*models.VehicleListing, int64, error) {
	query := buildListingFilter(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []*models.VehicleListing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode listings: %w", err)
	}

	return listings, total, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *models.VehicleListing) error {
	listing.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": listing.ID}, listing)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("listing %s: %w", listing.ID.Hex(), interfaces.ErrNotFound)
	}

	r.invalidate(ctx, listing.ID.Hex())
	return nil
}

func (r *listingRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update listing fields: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("listing %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	r.invalidate(ctx, id.Hex())
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("listing %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	r.invalidate(ctx, id.Hex())
	return nil
}

func (r *listingRepository) CountByDealer(ctx context.Context, dealerID primitive.ObjectID) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"dealer.id": dealerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count dealer listings: %w", err)
	}
	return total, nil
}

func (r *listingRepository) fromCache(ctx context.Context, id string) *models.VehicleListing {
	if r.cache == nil {
		return nil
	}
	var listing models.VehicleListing
	if err := r.cache.Get(ctx, fmt.Sprintf(utils.CacheKeyListing, id), &listing); err != nil {
		return nil
	}
	return &listing
}

func (r *listingRepository) toCache(ctx context.Context, listing *models.VehicleListing) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Set(ctx, fmt.Sprintf(utils.CacheKeyListing, listing.ID.Hex()), listing, utils.ListingCacheTTL)
}

func (r *listingRepository) invalidate(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Delete(ctx, fmt.Sprintf(utils.CacheKeyListing, id))
}
