package handlers

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/internal/validators"
	"vahanbazar/pkg/logger"
)

type DealerHandler struct {
	dealers *services.DealerService
	logger  *logger.Logger
}

func NewDealerHandler(dealers *services.DealerService, log *logger.Logger) *DealerHandler {
	return &DealerHandler{
		dealers: dealers,
		logger:  log,
	}
}

// Dashboard returns listing and booking aggregates for the dealer portal.
func (h *DealerHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dealers.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved successfully", dashboard)
}

func (h *DealerHandler) ListBranches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	branches, err := h.dealers.ListBranches(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Branches retrieved successfully", gin.H{"branches": branches})
}

func (h *DealerHandler) CreateBranch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	branch, err := h.dealers.CreateBranch(c.Request.Context(), userID, &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Branch created successfully", branch)
}

func (h *DealerHandler) UpdateBranch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	branch, err := h.dealers.UpdateBranch(c.Request.Context(), userID, c.Param("id"), &input)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Branch updated successfully", branch)
}

func (h *DealerHandler) DeleteBranch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.dealers.DeleteBranch(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.NoContentResponse(c)
}
