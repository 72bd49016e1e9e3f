package services

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/internal/utils"
	"vahanbazar/internal/validators"
	"vahanbazar/pkg/cache"
	"vahanbazar/pkg/logger"
)

// ListingInput is the decoded "data" part of a listing compose request.
type ListingInput struct {
	Name                string                 `json:"name" validate:"required,max=200"`
	ModelName           string                 `json:"model_name" validate:"max=200"`
	Brand               models.BrandRef        `json:"brand"`
	Variant             *models.VariantRef     `json:"variant"`
	Category            models.VehicleCategory `json:"category" validate:"required,vehicle_category"`
	FuelType            models.FuelType        `json:"fuel_type" validate:"required,fuel_type"`
	Price               float64                `json:"price" validate:"required,gt=0"`
	Stock               *int                   `json:"stock" validate:"omitempty,gte=0"`
	Type                models.ListingType     `json:"type" validate:"omitempty,listing_type"`
	Status              models.ListingStatus   `json:"status" validate:"omitempty,listing_status"`
	Branch              string                 `json:"branch" validate:"omitempty,object_id"`
	IsFeatured          bool                   `json:"is_featured"`
	DiscountType        *models.DiscountType   `json:"discount_type" validate:"omitempty,discount_type"`
	DiscountValue       *float64               `json:"discount_value" validate:"omitempty,gt=0"`
	DiscountDescription string                 `json:"discount_description" validate:"max=500"`
	Year                *int                   `json:"year" validate:"omitempty,gte=1950"`
	KmDriven            *int                   `json:"km_driven" validate:"omitempty,gte=0"`
	Condition           string                 `json:"condition" validate:"max=100"`
	ExchangeOffer       bool                   `json:"exchange_offer"`
	LoanOption          bool                   `json:"loan_option"`
	Specs               map[string]interface{} `json:"specs"`
}

// ParseListingInput decodes the raw JSON document carried alongside the image
// files. Broken JSON is a client error, not an internal one.
func ParseListingInput(raw []byte) (*ListingInput, error) {
	var input ListingInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, NewValidationError(CodeMalformedPayload, "data", "payload is not valid JSON")
	}
	return &input, nil
}

type ListingService struct {
	listings    interfaces.ListingRepository
	users       interfaces.UserRepository
	dealerships interfaces.DealershipRepository
	brands      *BrandService
	variants    *VariantService
	images      *ImageService
	tx          TxRunner
	cache       *cache.RedisCache
	logger      *logger.Logger
}

func NewListingService(
	listings interfaces.ListingRepository,
	users interfaces.UserRepository,
	dealerships interfaces.DealershipRepository,
	brands *BrandService,
	variants *VariantService,
	images *ImageService,
	tx TxRunner,
	redisCache *cache.RedisCache,
	log *logger.Logger,
) *ListingService {
	return &ListingService{
		listings:    listings,
		users:       users,
		dealerships: dealerships,
		brands:      brands,
		variants:    variants,
		images:      images,
		tx:          tx,
		cache:       redisCache,
		logger:      log,
	}
}

// sellerContext is the resolved ownership side of a compose request: dealer
// plus branch for NEW listings, the acting user as seller for USED ones.
type sellerContext struct {
	user       *models.User
	dealership *models.Dealership
	branch     *models.Branch
}

// Create composes a listing from its payload and image files. Blob uploads
// happen up front; every database write then commits or aborts as one unit.
// A client disconnect after the uploads does not abort the commit.
func (s *ListingService) Create(ctx context.Context, actorID primitive.ObjectID, input *ListingInput, uploads []ImageUpload) (*models.ListingDetail, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if err := s.images.ValidateCount(len(uploads)); err != nil {
		return nil, err
	}

	sc, err := s.resolveSeller(ctx, actorID, input)
	if err != nil {
		return nil, err
	}

	listing := buildListing(primitive.NewObjectID(), input, sc)

	images, err := s.images.Upload(ctx, listing.ID, uploads)
	if err != nil {
		return nil, err
	}

	// Brand resolution happens inside the transaction so an inline-created
	// brand does not outlive an aborted compose.
	txCtx := context.WithoutCancel(ctx)
	err = s.tx.WithTransaction(txCtx, func(ctx context.Context) error {
		brand, err := s.brands.Resolve(ctx, input.Brand)
		if err != nil {
			return err
		}
		listing.Brand = *brand.Summary()
		if input.Variant != nil && !input.Variant.IsZero() {
			variant, err := s.variants.Resolve(ctx, listing.ID, *input.Variant)
			if err != nil {
				return err
			}
			listing.Variant = variant.Summary()
		}
		if err := s.listings.Create(ctx, listing); err != nil {
			return err
		}
		return s.images.Attach(ctx, images)
	})
	if err != nil {
		s.images.Cleanup(txCtx, images)
		return nil, err
	}

	s.invalidateFeatured(txCtx)
	s.logger.WithListingID(listing.ID).WithUserID(actorID).Info("listing created")

	return models.NewListingDetail(listing, images), nil
}

// Update recomposes an existing listing. When new image files are present the
// whole image set is replaced in order; otherwise the current set stays.
func (s *ListingService) Update(ctx context.Context, actorID primitive.ObjectID, id string, input *ListingInput, uploads []ImageUpload) (*models.ListingDetail, error) {
	existing, err := s.getByHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Ownership is gated on the existing listing, so an owner may change the
	// type when the new type's requirements are met.
	if err := s.checkActorOwns(ctx, existing, actorID); err != nil {
		return nil, err
	}
	sc, err := s.resolveSeller(ctx, actorID, input)
	if err != nil {
		return nil, err
	}

	replaceImages := len(uploads) > 0
	if replaceImages {
		if err := s.images.ValidateCount(len(uploads)); err != nil {
			return nil, err
		}
	}

	listing := buildListing(existing.ID, input, sc)
	listing.CreatedAt = existing.CreatedAt
	listing.Approved = existing.Approved
	listing.Variant = existing.Variant

	var newImages []*models.VehicleImage
	var oldImages []*models.VehicleImage
	if replaceImages {
		oldImages, err = s.images.ListByListing(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		newImages, err = s.images.Upload(ctx, existing.ID, uploads)
		if err != nil {
			return nil, err
		}
	}

	txCtx := context.WithoutCancel(ctx)
	err = s.tx.WithTransaction(txCtx, func(ctx context.Context) error {
		brand, err := s.brands.Resolve(ctx, input.Brand)
		if err != nil {
			return err
		}
		listing.Brand = *brand.Summary()
		if input.Variant != nil && !input.Variant.IsZero() {
			variant, err := s.variants.Resolve(ctx, existing.ID, *input.Variant)
			if err != nil {
				return err
			}
			listing.Variant = variant.Summary()
		}
		if err := s.listings.Update(ctx, listing); err != nil {
			return err
		}
		if replaceImages {
			return s.images.Replace(ctx, existing.ID, newImages)
		}
		return nil
	})
	if err != nil {
		s.images.Cleanup(txCtx, newImages)
		return nil, err
	}

	if replaceImages {
		// Committed; the replaced blobs are unreferenced now.
		s.images.Cleanup(txCtx, oldImages)
	}
	s.invalidateFeatured(txCtx)
	s.logger.WithListingID(listing.ID).WithUserID(actorID).Info("listing updated")

	images, err := s.images.ListByListing(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	return models.NewListingDetail(listing, images), nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*models.ListingDetail, error) {
	listing, err := s.getByHexID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.images.ListByListing(ctx, listing.ID)
	if err != nil {
		return nil, err
	}

	return models.NewListingDetail(listing, images), nil
}

func (s *ListingService) List(ctx context.Context, filter interfaces.ListingFilter, page interfaces.Page) ([]*models.VehicleListing, int64, error) {
	return s.listings.List(ctx, filter, page)
}

// Featured returns available featured listings, cached briefly since the home
// page hits this on every load.
func (s *ListingService) Featured(ctx context.Context) ([]*models.VehicleListing, error) {
	if s.cache != nil {
		var cached []*models.VehicleListing
		if err := s.cache.Get(ctx, utils.CacheKeyFeaturedList, &cached); err == nil {
			return cached, nil
		}
	}

	featured := true
	listings, _, err := s.listings.List(ctx, interfaces.ListingFilter{
		IsFeatured:   &featured,
		Status:       string(models.ListingStatusAvailable),
		ApprovedOnly: true,
	}, interfaces.Page{Limit: utils.DefaultPageSize})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, utils.CacheKeyFeaturedList, listings, utils.ListingCacheTTL)
	}
	return listings, nil
}

// DealerListings returns the listings owned by the acting dealer.
func (s *ListingService) DealerListings(ctx context.Context, actorID primitive.ObjectID, page interfaces.Page) ([]*models.VehicleListing, int64, error) {
	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}

	return s.listings.List(ctx, interfaces.ListingFilter{DealerID: dealership.ID.Hex()}, page)
}

// SellerListings returns the used listings posted by the acting user,
// approved or not.
func (s *ListingService) SellerListings(ctx context.Context, actorID primitive.ObjectID, page interfaces.Page) ([]*models.VehicleListing, int64, error) {
	return s.listings.List(ctx, interfaces.ListingFilter{SellerID: actorID.Hex()}, page)
}

func (s *ListingService) SetStock(ctx context.Context, actorID primitive.ObjectID, id string, stock int) error {
	if stock < 0 {
		return NewValidationError(CodeValidationFailed, "stock", "stock cannot be negative")
	}

	listing, err := s.getByHexID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkActorOwns(ctx, listing, actorID); err != nil {
		return err
	}

	return s.listings.UpdateFields(ctx, listing.ID, map[string]interface{}{"stock": stock})
}

func (s *ListingService) ToggleFeatured(ctx context.Context, actorID primitive.ObjectID, id string) (bool, error) {
	listing, err := s.getByHexID(ctx, id)
	if err != nil {
		return false, err
	}
	if err := s.checkActorOwns(ctx, listing, actorID); err != nil {
		return false, err
	}

	next := !listing.IsFeatured
	if err := s.listings.UpdateFields(ctx, listing.ID, map[string]interface{}{"is_featured": next}); err != nil {
		return false, err
	}

	s.invalidateFeatured(ctx)
	return next, nil
}

// Approve marks a used listing as visible to buyers. Managers only.
func (s *ListingService) Approve(ctx context.Context, actorID primitive.ObjectID, id string) error {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsManager {
		return NewAuthorizationError(CodeNotAuthorized, "only managers can approve listings")
	}

	listing, err := s.getByHexID(ctx, id)
	if err != nil {
		return err
	}
	if listing.Type != models.ListingTypeUsed {
		return NewValidationError(CodeValidationFailed, "type", "only used listings need approval")
	}

	return s.listings.UpdateFields(ctx, listing.ID, map[string]interface{}{"approved": true})
}

// Delete removes a listing with its image documents and blobs.
func (s *ListingService) Delete(ctx context.Context, actorID primitive.ObjectID, id string) error {
	listing, err := s.getByHexID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkActorOwns(ctx, listing, actorID); err != nil {
		return err
	}

	txCtx := context.WithoutCancel(ctx)
	err = s.tx.WithTransaction(txCtx, func(ctx context.Context) error {
		if err := s.listings.Delete(ctx, listing.ID); err != nil {
			return err
		}
		return s.images.DeleteAll(ctx, listing.ID)
	})
	if err != nil {
		return err
	}

	s.invalidateFeatured(txCtx)
	s.logger.WithListingID(listing.ID).WithUserID(actorID).Info("listing deleted")
	return nil
}

func (s *ListingService) validateInput(input *ListingInput) error {
	if input.Type == "" {
		input.Type = models.ListingTypeNew
	}
	if input.Status == "" {
		input.Status = models.ListingStatusAvailable
	}
	if input.Brand.IsZero() {
		return NewValidationError(CodeValidationFailed, "brand", "this field is required")
	}

	if errs := validators.ValidateStruct(input); len(errs) > 0 {
		return NewValidationError(CodeValidationFailed, errs[0].Field, errs[0].Message)
	}

	if (input.DiscountType == nil) != (input.DiscountValue == nil) {
		return NewValidationError(CodeDiscountFieldMismatch, "discount_type",
			"discount_type and discount_value must be provided together")
	}

	return nil
}

// resolveSeller checks the actor may post this kind of listing and resolves
// the owning side. NEW listings need a dealer account, its dealership and an
// owned branch; USED listings record the actor as the seller.
func (s *ListingService) resolveSeller(ctx context.Context, actorID primitive.ObjectID, input *ListingInput) (*sellerContext, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	sc := &sellerContext{user: user}
	if input.Type == models.ListingTypeUsed {
		return sc, nil
	}

	if !user.IsDealer {
		return nil, NewAuthorizationError(CodeNotADealer, "only dealer accounts can post new vehicle listings")
	}

	dealership, err := s.dealerships.GetByOwner(ctx, user.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewAuthorizationError(CodeNoDealership, "dealer account has no dealership")
		}
		return nil, err
	}
	sc.dealership = dealership

	if input.Branch == "" {
		return nil, NewValidationError(CodeBranchRequired, "branch", "new vehicle listings require a branch")
	}
	branchID, err := parseObjectID(input.Branch)
	if err != nil {
		return nil, NewValidationError(CodeBranchRequired, "branch", "branch id is invalid")
	}
	branch, err := s.dealerships.GetBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewNotFoundError(CodeBranchNotFound, "branch does not exist")
		}
		return nil, err
	}
	if branch.DealershipID != dealership.ID {
		return nil, NewAuthorizationError(CodeBranchNotOwned, "branch belongs to a different dealership")
	}
	sc.branch = branch

	return sc, nil
}

// checkActorOwns gates mutations on an existing listing: the dealership owner
// for NEW, the seller for USED.
func (s *ListingService) checkActorOwns(ctx context.Context, listing *models.VehicleListing, actorID primitive.ObjectID) error {
	if listing.Type == models.ListingTypeUsed {
		if listing.Seller == nil || listing.Seller.ID != actorID {
			return NewAuthorizationError(CodeNotOwner, "listing belongs to a different seller")
		}
		return nil
	}

	dealership, err := s.requireDealership(ctx, actorID)
	if err != nil {
		return err
	}
	if listing.Dealer == nil || listing.Dealer.ID != dealership.ID {
		return NewAuthorizationError(CodeNotOwner, "listing belongs to a different dealership")
	}
	return nil
}

func (s *ListingService) requireDealership(ctx context.Context, actorID primitive.ObjectID) (*models.Dealership, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.IsDealer {
		return nil, NewAuthorizationError(CodeNotADealer, "only dealer accounts can manage listings")
	}
	dealership, err := s.dealerships.GetByOwner(ctx, user.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewAuthorizationError(CodeNoDealership, "dealer account has no dealership")
		}
		return nil, err
	}
	return dealership, nil
}

func (s *ListingService) getByHexID(ctx context.Context, id string) (*models.VehicleListing, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, NewNotFoundError(CodeListingNotFound, "listing does not exist")
	}
	listing, err := s.listings.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewNotFoundError(CodeListingNotFound, "listing does not exist")
		}
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) invalidateFeatured(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, utils.CacheKeyFeaturedList)
	}
}

func buildListing(id primitive.ObjectID, input *ListingInput, sc *sellerContext) *models.VehicleListing {
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	listing := &models.VehicleListing{
		ID:                  id,
		Name:                input.Name,
		ModelName:           input.ModelName,
		Category:            input.Category,
		FuelType:            input.FuelType,
		Price:               input.Price,
		Status:              input.Status,
		Stock:               stock,
		IsFeatured:          input.IsFeatured,
		Type:                input.Type,
		DiscountType:        input.DiscountType,
		DiscountValue:       input.DiscountValue,
		DiscountDescription: input.DiscountDescription,
		Year:                input.Year,
		KmDriven:            input.KmDriven,
		Condition:           input.Condition,
		ExchangeOffer:       input.ExchangeOffer,
		LoanOption:          input.LoanOption,
		Specs:               input.Specs,
	}

	if input.Type == models.ListingTypeUsed {
		listing.Seller = &models.RefSummary{ID: sc.user.ID, Name: sc.user.FullName()}
	} else {
		listing.Dealer = sc.dealership.Summary()
		listing.Branch = sc.branch.Summary()
	}

	return listing
}
