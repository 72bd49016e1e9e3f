package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	GetByName(ctx context.Context, name string) (*models.Brand, error)
	List(ctx context.Context, page Page) ([]*models.Brand, int64, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
