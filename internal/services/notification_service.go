package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/pkg/logger"
)

type NotificationService struct {
	notifications interfaces.NotificationRepository
	logger        *logger.Logger
}

func NewNotificationService(notifications interfaces.NotificationRepository, log *logger.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        log,
	}
}

func (s *NotificationService) List(ctx context.Context, userID primitive.ObjectID, page interfaces.Page) ([]*models.Notification, int64, error) {
	return s.notifications.ListByUser(ctx, userID, page)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID primitive.ObjectID, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return NewNotFoundError(CodeNotificationNotFound, "notification does not exist")
	}

	if err := s.notifications.MarkRead(ctx, oid, userID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NewNotFoundError(CodeNotificationNotFound, "notification does not exist")
		}
		return err
	}

	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
