package handlers

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/models"
	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/internal/validators"
	"vahanbazar/pkg/logger"
)

type BrandHandler struct {
	brands *services.BrandService
	logger *logger.Logger
}

func NewBrandHandler(brands *services.BrandService, log *logger.Logger) *BrandHandler {
	return &BrandHandler{
		brands: brands,
		logger: log,
	}
}

func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var input models.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	brand, err := h.brands.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Brand created successfully", brand)
}

func (h *BrandHandler) GetBrand(c *gin.Context) {
	brand, err := h.brands.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Brand retrieved successfully", brand)
}

func (h *BrandHandler) ListBrands(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	brands, total, err := h.brands.List(c.Request.Context(), pageFrom(params, map[string]bool{"name": true, "created_at": true}))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Brands retrieved successfully", gin.H{"brands": brands}, meta)
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	var input models.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	brand, err := h.brands.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Brand updated successfully", brand)
}

func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	if err := h.brands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.NoContentResponse(c)
}

func validationDetails(errs validators.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, e := range errs {
		details[e.Field] = e.Message
	}
	return details
}
