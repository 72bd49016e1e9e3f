package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/internal/validators"
	"vahanbazar/pkg/logger"
)

type VariantHandler struct {
	variants *services.VariantService
	logger   *logger.Logger
}

func NewVariantHandler(variants *services.VariantService, log *logger.Logger) *VariantHandler {
	return &VariantHandler{
		variants: variants,
		logger:   log,
	}
}

// CreateVariant adds a named variant under a listing. Duplicate names within
// the listing are rejected.
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	modelID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid listing id")
		return
	}

	var input models.VariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	variant, err := h.variants.Create(c.Request.Context(), modelID, &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Variant created successfully", variant)
}

func (h *VariantHandler) ListVariants(c *gin.Context) {
	modelID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid listing id")
		return
	}

	variants, err := h.variants.ListByModel(c.Request.Context(), modelID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Variants retrieved successfully", gin.H{"variants": variants})
}

func (h *VariantHandler) GetVariant(c *gin.Context) {
	variant, err := h.variants.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Variant retrieved successfully", variant)
}

func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	var input models.VariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	variant, err := h.variants.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Variant updated successfully", variant)
}

func (h *VariantHandler) DeleteVariant(c *gin.Context) {
	if err := h.variants.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.NoContentResponse(c)
}
