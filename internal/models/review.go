package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a rating with optional comment left by a user on a listing.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	UserName  string             `json:"user_name" bson:"user_name"`
	VehicleID primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id"`
	Rating    int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty" validate:"max=2000"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
