package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingType string
type BookingStatus string

const (
	BookingTestRide BookingType = "TEST_RIDE"
	BookingInquiry  BookingType = "INQUIRY"
	BookingService  BookingType = "SERVICE"

	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a customer request against a listing. BranchID is copied from
// the listing at creation so dealers can pull bookings per branch.
type Booking struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID  `json:"user_id" bson:"user_id"`
	VehicleID     primitive.ObjectID  `json:"vehicle_id" bson:"vehicle_id"`
	Vehicle       *RefSummary         `json:"vehicle,omitempty" bson:"vehicle,omitempty"`
	BranchID      *primitive.ObjectID `json:"branch_id,omitempty" bson:"branch_id,omitempty"`
	Type          BookingType         `json:"booking_type" bson:"booking_type" validate:"required"`
	Status        BookingStatus       `json:"status" bson:"status"`
	PreferredDate *time.Time          `json:"preferred_date,omitempty" bson:"preferred_date,omitempty"`
	Message       string              `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" bson:"updated_at"`
}

func ValidBookingType(t BookingType) bool {
	return t == BookingTestRide || t == BookingInquiry || t == BookingService
}

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
