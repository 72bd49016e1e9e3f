package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationBooking  NotificationType = "BOOKING"
	NotificationApproval NotificationType = "APPROVAL"
	NotificationGeneral  NotificationType = "GENERAL"
)

type Notification struct {
	ID        primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID     `json:"user_id" bson:"user_id"`
	Type      NotificationType       `json:"type" bson:"type"`
	Title     string                 `json:"title" bson:"title"`
	Message   string                 `json:"message" bson:"message"`
	Data      map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
	IsRead    bool                   `json:"is_read" bson:"is_read"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
}
