package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/pkg/logger"
)

type ListingHandler struct {
	listings *services.ListingService
	logger   *logger.Logger
}

func NewListingHandler(listings *services.ListingService, log *logger.Logger) *ListingHandler {
	return &ListingHandler{
		listings: listings,
		logger:   log,
	}
}

// CreateListing composes a listing from a multipart form: a "data" JSON field
// plus "images" files.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	input, uploads, closers, ok := h.parseComposeForm(c)
	if !ok {
		return
	}
	defer closeAll(closers)

	detail, err := h.listings.Create(c.Request.Context(), userID, input, uploads)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Listing created successfully", detail)
}

// UpdateListing recomposes a listing. Sending image files replaces the whole
// image set in the order given; omitting them keeps the current set.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	input, uploads, closers, ok := h.parseComposeForm(c)
	if !ok {
		return
	}
	defer closeAll(closers)

	detail, err := h.listings.Update(c.Request.Context(), userID, c.Param("id"), input, uploads)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Listing updated successfully", detail)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	detail, err := h.listings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Listing retrieved successfully", detail)
}

// ListListings is the public browse endpoint with the full filter surface.
func (h *ListingHandler) ListListings(c *gin.Context) {
	filter := interfaces.ListingFilter{
		Brand:        c.Query("brand"),
		Category:     c.Query("category"),
		Status:       c.Query("status"),
		Branch:       c.Query("branch"),
		Type:         c.Query("type"),
		Search:       c.Query("search"),
		IsFeatured:   queryBool(c, "is_featured"),
		InStock:      queryBool(c, "in_stock"),
		HasDiscount:  queryBool(c, "has_discount"),
		MinPrice:     queryFloat(c, "min_price"),
		MaxPrice:     queryFloat(c, "max_price"),
		ApprovedOnly: true,
	}

	params := utils.GetPaginationParams(c)
	listings, total, err := h.listings.List(c.Request.Context(), filter, pageFrom(params, listingSortFields))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Listings retrieved successfully", gin.H{"listings": listings}, meta)
}

func (h *ListingHandler) FeaturedListings(c *gin.Context) {
	listings, err := h.listings.Featured(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Featured listings retrieved successfully", gin.H{"listings": listings})
}

// DealerListings returns the acting dealer's own inventory.
func (h *ListingHandler) DealerListings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	listings, total, err := h.listings.DealerListings(c.Request.Context(), userID, pageFrom(params, listingSortFields))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Dealer listings retrieved successfully", gin.H{"listings": listings}, meta)
}

// SellerListings returns the acting user's used listings, approved or not.
func (h *ListingHandler) SellerListings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	listings, total, err := h.listings.SellerListings(c.Request.Context(), userID, pageFrom(params, listingSortFields))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Seller listings retrieved successfully", gin.H{"listings": listings}, meta)
}

func (h *ListingHandler) UpdateStock(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request struct {
		Stock *int `json:"stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "stock is required")
		return
	}

	if err := h.listings.SetStock(c.Request.Context(), userID, c.Param("id"), *request.Stock); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Stock updated successfully", gin.H{"stock": *request.Stock})
}

func (h *ListingHandler) ToggleFeatured(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	featured, err := h.listings.ToggleFeatured(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Listing featured flag toggled", gin.H{"is_featured": featured})
}

func (h *ListingHandler) ApproveListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.listings.Approve(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Listing approved successfully", nil)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.listings.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ListingHandler) parseComposeForm(c *gin.Context) (*services.ListingInput, []services.ImageUpload, []io.Closer, bool) {
	raw := c.PostForm("data")
	if raw == "" {
		utils.BadRequestResponse(c, "multipart field 'data' is required")
		return nil, nil, nil, false
	}

	input, err := services.ParseListingInput([]byte(raw))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return nil, nil, nil, false
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "invalid multipart form")
		return nil, nil, nil, false
	}

	var uploads []services.ImageUpload
	var closers []io.Closer
	for _, header := range form.File["images"] {
		if err := utils.ValidateImageUpload(header); err != nil {
			closeAll(closers)
			utils.BadRequestResponse(c, err.Error())
			return nil, nil, nil, false
		}

		file, err := header.Open()
		if err != nil {
			closeAll(closers)
			utils.BadRequestResponse(c, "failed to read uploaded file")
			return nil, nil, nil, false
		}
		closers = append(closers, file)
		uploads = append(uploads, services.ImageUpload{
			Filename:    header.Filename,
			ContentType: utils.GetContentType(header.Filename),
			Size:        header.Size,
			Reader:      file,
		})
	}

	return input, uploads, closers, true
}

func closeAll(closers []io.Closer) {
	for _, closer := range closers {
		closer.Close()
	}
}

func queryBool(c *gin.Context, name string) *bool {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func queryFloat(c *gin.Context, name string) *float64 {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
