package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dealership has at most one owning user. Branches belong to exactly one
// dealership.
type Dealership struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required,max=200"`
	OwnerID     primitive.ObjectID `json:"owner_id" bson:"owner_id"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

func (d *Dealership) Summary() *RefSummary {
	return &RefSummary{ID: d.ID, Name: d.Name}
}

type Branch struct {
	ID              primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	DealershipID    primitive.ObjectID     `json:"dealership_id" bson:"dealership_id"`
	Name            string                 `json:"name" bson:"name" validate:"required,max=200"`
	Address         string                 `json:"address" bson:"address" validate:"required"`
	City            string                 `json:"city" bson:"city" validate:"required,max=100"`
	State           string                 `json:"state" bson:"state" validate:"required,max=100"`
	Zipcode         string                 `json:"zipcode" bson:"zipcode" validate:"required,len=6,numeric"`
	ContactNumber   string                 `json:"contact_number,omitempty" bson:"contact_number,omitempty"`
	LocationDetails map[string]interface{} `json:"location_details,omitempty" bson:"location_details,omitempty"`
	CreatedAt       time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at" bson:"updated_at"`
}

func (b *Branch) Summary() *RefSummary {
	return &RefSummary{ID: b.ID, Name: b.Name}
}
