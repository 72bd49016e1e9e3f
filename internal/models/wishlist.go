package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem links a user to a saved listing. The (user_id, vehicle_id)
// pair is unique.
type WishlistItem struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	VehicleID primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
