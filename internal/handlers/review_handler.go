package handlers

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/internal/validators"
	"vahanbazar/pkg/logger"
)

type ReviewHandler struct {
	reviews *services.ReviewService
	logger  *logger.Logger
}

func NewReviewHandler(reviews *services.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  log,
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), userID, c.Param("id"), &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Review created successfully", review)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	reviews, total, summary, err := h.reviews.ListByListing(c.Request.Context(), c.Param("id"), pageFrom(params, map[string]bool{"created_at": true, "rating": true}))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Reviews retrieved successfully", gin.H{
		"reviews": reviews,
		"rating":  summary,
	}, meta)
}
