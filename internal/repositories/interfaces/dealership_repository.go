package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

type DealershipRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Dealership, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Dealership, error)
	CreateBranch(ctx context.Context, branch *models.Branch) error
	GetBranch(ctx context.Context, id primitive.ObjectID) (*models.Branch, error)
	ListBranches(ctx context.Context, dealershipID primitive.ObjectID) ([]*models.Branch, error)
	UpdateBranch(ctx context.Context, branch *models.Branch) error
	DeleteBranch(ctx context.Context, id primitive.ObjectID) error
}
