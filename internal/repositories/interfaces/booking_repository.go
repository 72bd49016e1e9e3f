package interfaces

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

// DailyCount is one day of booking volume, date formatted as 2006-01-02.
type DailyCount struct {
	Date  string `json:"date" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, page Page) ([]*models.Booking, int64, error)
	ListByBranches(ctx context.Context, branchIDs []primitive.ObjectID, page Page) ([]*models.Booking, int64, error)
	CountByBranches(ctx context.Context, branchIDs []primitive.ObjectID, status models.BookingStatus) (int64, error)
	DailyCounts(ctx context.Context, branchIDs []primitive.ObjectID, since time.Time) ([]DailyCount, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
}
