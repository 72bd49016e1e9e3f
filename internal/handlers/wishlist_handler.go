package handlers

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/pkg/logger"
)

type WishlistHandler struct {
	wishlist *services.WishlistService
	logger   *logger.Logger
}

func NewWishlistHandler(wishlist *services.WishlistService, log *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		logger:   log,
	}
}

func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request struct {
		VehicleID string `json:"vehicle" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "vehicle is required")
		return
	}

	item, err := h.wishlist.Add(c.Request.Context(), userID, request.VehicleID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Listing added to wishlist", item)
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	listings, err := h.wishlist.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Wishlist retrieved successfully", gin.H{"listings": listings})
}

func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.wishlist.Remove(c.Request.Context(), userID, c.Param("vehicle_id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.NoContentResponse(c)
}
