package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

type VariantRepository interface {
	Create(ctx context.Context, variant *models.VehicleModelVariant) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleModelVariant, error)
	GetByModelAndName(ctx context.Context, modelID primitive.ObjectID, name string) (*models.VehicleModelVariant, error)
	ListByModel(ctx context.Context, modelID primitive.ObjectID) ([]*models.VehicleModelVariant, error)
	Update(ctx context.Context, variant *models.VehicleModelVariant) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
