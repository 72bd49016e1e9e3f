package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username      string             `json:"username" bson:"username" validate:"required,min=3,max=50"`
	FirstName     string             `json:"first_name" bson:"first_name"`
	LastName      string             `json:"last_name" bson:"last_name"`
	Email         string             `json:"email" bson:"email" validate:"required,email"`
	Phone         string             `json:"phone" bson:"phone"`
	Password      string             `json:"-" bson:"password"`
	IsDealer      bool               `json:"is_dealer" bson:"is_dealer"`
	IsDealerStaff bool               `json:"is_dealer_staff" bson:"is_dealer_staff"`
	IsManager     bool               `json:"is_manager" bson:"is_manager"`
	Status        UserStatus         `json:"status" bson:"status" default:"active"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// FullName falls back to the username when no name parts are set.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
