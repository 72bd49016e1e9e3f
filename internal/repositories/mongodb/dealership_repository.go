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

type dealershipRepository struct {
	dealerships *mongo.Collection
	branches    *mongo.Collection
}

func NewDealershipRepository(db *mongo.Database) interfaces.DealershipRepository {
	return &dealershipRepository{
		dealerships: db.Collection("dealerships"),
		branches:    db.Collection("dealership_branches"),
	}
}

func (r *dealershipRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Dealership, error) {
	var dealership models.Dealership
	err := r.dealerships.FindOne(ctx, bson.M{"_id": id}).Decode(&dealership)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("dealership %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dealership: %w", err)
	}

	return &dealership, nil
}

func (r *dealershipRepository) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Dealership, error) {
	var dealership models.Dealership
	err := r.dealerships.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&dealership)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("dealership for owner %s: %w", ownerID.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dealership by owner: %w", err)
	}

	return &dealership, nil
}

func (r *dealershipRepository) CreateBranch(ctx context.Context, branch *models.Branch) error {
	branch.ID = primitive.NewObjectID()
	branch.CreatedAt = time.Now()
	branch.UpdatedAt = branch.CreatedAt

	_, err := r.branches.InsertOne(ctx, branch)
	if err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}

	return nil
}

func (r *dealershipRepository) GetBranch(ctx context.Context, id primitive.ObjectID) (*models.Branch, error) {
	var branch models.Branch
	err := r.branches.FindOne(ctx, bson.M{"_id": id}).Decode(&branch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("branch %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	return &branch, nil
}

func (r *dealershipRepository) ListBranches(ctx context.Context, dealershipID primitive.ObjectID) ([]*models.Branch, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.branches.Find(ctx, bson.M{"dealership_id": dealershipID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer cursor.Close(ctx)

	var branches []*models.Branch
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, fmt.Errorf("failed to decode branches: %w", err)
	}

	return branches, nil
}

func (r *dealershipRepository) UpdateBranch(ctx context.Context, branch *models.Branch) error {
	branch.UpdatedAt = time.Now()

	result, err := r.branches.ReplaceOne(ctx, bson.M{"_id": branch.ID}, branch)
	if err != nil {
		return fmt.Errorf("failed to update branch: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("branch %s: %w", branch.ID.Hex(), interfaces.ErrNotFound)
	}

	return nil
}

func (r *dealershipRepository) DeleteBranch(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.branches.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("branch %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	return nil
}
