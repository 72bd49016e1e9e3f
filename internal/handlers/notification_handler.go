package handlers

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/pkg/logger"
)

type NotificationHandler struct {
	notifications *services.NotificationService
	logger        *logger.Logger
}

func NewNotificationHandler(notifications *services.NotificationService, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		logger:        log,
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	notifications, total, err := h.notifications.List(c.Request.Context(), userID, pageFrom(params, map[string]bool{"created_at": true}))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	unread, err := h.notifications.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Notifications retrieved successfully", gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	}, meta)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.notifications.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "All notifications marked as read", nil)
}
