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

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) interfaces.BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, page interfaces.Page) ([]*models.Booking, int64, error) {
	return r.list(ctx, bson.M{"user_id": userID}, page)
}

func (r *bookingRepository) ListByBranches(ctx context.Context, branchIDs []primitive.ObjectID, page interfaces.Page) ([]*models.Booking, int64, error) {
	if len(branchIDs) == 0 {
		return nil, 0, nil
	}
	return r.list(ctx, bson.M{"branch_id": bson.M{"$in": branchIDs}}, page)
}

func (r *bookingRepository) CountByBranches(ctx context.Context, branchIDs []primitive.ObjectID, status models.BookingStatus) (int64, error) {
	if len(branchIDs) == 0 {
		return 0, nil
	}

	query := bson.M{"branch_id": bson.M{"$in": branchIDs}}
	if status != "" {
		query["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return total, nil
}

func (r *bookingRepository) DailyCounts(ctx context.Context, branchIDs []primitive.ObjectID, since time.Time) ([]interfaces.DailyCount, error) {
	if len(branchIDs) == 0 {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"branch_id":  bson.M{"$in": branchIDs},
			"created_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []interfaces.DailyCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode booking counts: %w", err)
	}

	return counts, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) list(ctx context.Context, query bson.M, page interfaces.Page) ([]*models.Booking, int64, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, total, nil
}
