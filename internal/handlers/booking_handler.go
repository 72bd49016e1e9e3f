package handlers

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/models"
	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/internal/validators"
	"vahanbazar/pkg/logger"
)

type BookingHandler struct {
	bookings *services.BookingService
	logger   *logger.Logger
}

func NewBookingHandler(bookings *services.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		logger:   log,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), userID, &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Booking created successfully", booking)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	bookings, total, err := h.bookings.ListForUser(c.Request.Context(), userID, pageFrom(params, map[string]bool{"created_at": true}))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Bookings retrieved successfully", gin.H{"bookings": bookings}, meta)
}

// DealerBookings returns bookings across all branches of the acting dealer's
// dealership.
func (h *BookingHandler) DealerBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	bookings, total, err := h.bookings.ListForDealer(c.Request.Context(), userID, pageFrom(params, map[string]bool{"created_at": true}))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Dealer bookings retrieved successfully", gin.H{"bookings": bookings}, meta)
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "status is required")
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Request.Context(), userID, c.Param("id"), request.Status)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Booking status updated successfully", booking)
}
