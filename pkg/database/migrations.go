package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
	Down        func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	err := m.createMigrationsCollection()
	if err != nil {
		return err
	}

	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			err := migration.Up(m.db)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			err = m.updateVersion(migration.Version)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}

			log.Printf("Migration %d completed successfully", migration.Version)
		}
	}

	return nil
}

func (m *Migrator) createMigrationsCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collections, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}

	for _, name := range collections {
		if name == "migrations" {
			return nil
		}
	}

	return m.db.CreateCollection(ctx, "migrations")
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection("migrations").FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)

	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create brands collection with unique name index",
			Up: func(db *mongo.Database) error {
				return createBrandsIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("brands").Drop(context.Background())
			},
		},
		{
			Version:     2,
			Description: "Create listings collection with indexes",
			Up: func(db *mongo.Database) error {
				return createListingsIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("vehicle_listings").Drop(context.Background())
			},
		},
		{
			Version:     3,
			Description: "Create variants collection with per-model unique name index",
			Up: func(db *mongo.Database) error {
				return createVariantsIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("vehicle_model_variants").Drop(context.Background())
			},
		},
		{
			Version:     4,
			Description: "Create listing_images collection with indexes",
			Up: func(db *mongo.Database) error {
				return createImagesIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("listing_images").Drop(context.Background())
			},
		},
		{
			Version:     5,
			Description: "Create wishlist collection with unique user/vehicle index",
			Up: func(db *mongo.Database) error {
				return createWishlistIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("wishlist_items").Drop(context.Background())
			},
		},
		{
			Version:     6,
			Description: "Create bookings, reviews and notifications indexes",
			Up: func(db *mongo.Database) error {
				return createActivityIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				ctx := context.Background()
				if err := db.Collection("bookings").Drop(ctx); err != nil {
					return err
				}
				if err := db.Collection("reviews").Drop(ctx); err != nil {
					return err
				}
				return db.Collection("notifications").Drop(ctx)
			},
		},
	}
}

func createBrandsIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("brands")

	indexes := []mongo.IndexModel{
		{
			// Names are title-cased before insert, so this doubles as the
			// case-insensitive uniqueness arbiter under concurrent creates.
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createListingsIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("vehicle_listings")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "dealer.id", Value: 1}}},
		{Keys: bson.D{{Key: "seller.id", Value: 1}}},
		{Keys: bson.D{{Key: "brand.id", Value: 1}}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createVariantsIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("vehicle_model_variants")

	indexes := []mongo.IndexModel{
		{
			// Variant names are unique per vehicle model, not globally.
			Keys:    bson.D{{Key: "vehicle_model_id", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createImagesIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("listing_images")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "listing_id", Value: 1}, {Key: "order", Value: 1}}},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createWishlistIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("wishlist_items")

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "vehicle_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createActivityIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("bookings").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "branch_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("reviews").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "vehicle_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("notifications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return err
}
