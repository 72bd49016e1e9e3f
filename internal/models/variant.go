package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleModelVariant is a named sub-configuration of a vehicle listing with
// its own spec overrides. Names are unique within the parent model, not
// globally.
type VehicleModelVariant struct {
	ID             primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	VehicleModelID primitive.ObjectID     `json:"vehicle_model" bson:"vehicle_model_id"`
	Name           string                 `json:"name" bson:"name" validate:"required,max=200"`
	Specs          map[string]interface{} `json:"specs" bson:"specs"`
	CreatedAt      time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at" bson:"updated_at"`
}

func (v *VehicleModelVariant) Summary() *RefSummary {
	return &RefSummary{ID: v.ID, Name: v.Name}
}
