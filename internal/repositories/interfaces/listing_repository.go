package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

// ListingFilter holds the query-side filters for listing searches. Pointer
// fields distinguish "not filtered" from a filtered zero value.
type ListingFilter struct {
	Brand        string
	Category     string
	Status       string
	Branch       string
	Type         string
	DealerID     string
	SellerID     string
	IsFeatured   *bool
	InStock      *bool
	HasDiscount  *bool
	MinPrice     *float64
	MaxPrice     *float64
	Search       string
	ApprovedOnly bool
}

type ListingRepository interface {
	Create(ctx context.Context, listing *models.VehicleListing) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleListing, error)
	List(ctx context.Context, filter ListingFilter, page Page) ([]*models.VehicleListing, int64, error)
	Update(ctx context.Context, listing *models.VehicleListing) error
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByDealer(ctx context.Context, dealerID primitive.ObjectID) (int64, error)
}
