package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand names are unique and stored title-cased.
type Brand struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,min=1,max=120"`
	Logo      string             `json:"logo,omitempty" bson:"logo,omitempty" validate:"omitempty,url"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func (b *Brand) Summary() *RefSummary {
	return &RefSummary{ID: b.ID, Name: b.Name}
}
