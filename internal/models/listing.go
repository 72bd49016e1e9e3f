package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingType string
type VehicleCategory string
type FuelType string
type ListingStatus string
type DiscountType string

const (
	ListingTypeNew  ListingType = "NEW"
	ListingTypeUsed ListingType = "USED"

	CategoryBike    VehicleCategory = "BIKE"
	CategoryScooter VehicleCategory = "SCOOTER"
	CategoryEV      VehicleCategory = "EV"

	FuelPetrol   FuelType = "PETROL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"

	ListingStatusAvailable ListingStatus = "AVAILABLE"
	ListingStatusSold      ListingStatus = "SOLD"
	ListingStatusHold      ListingStatus = "HOLD"

	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountCashback   DiscountType = "cashback"
)

// RefSummary is the nested {id, name} shape used for brand, dealer, seller,
// branch and variant references on a listing. Summaries are denormalized onto
// the listing document at compose time so reads and text search need no joins.
type RefSummary struct {
	ID   primitive.ObjectID `json:"id" bson:"id"`
	Name string             `json:"name" bson:"name"`
}

// VehicleListing is a single sellable vehicle record, new or used. Exactly one
// of Dealer (NEW) or Seller (USED) is populated; the composer enforces this,
// not the database.
type VehicleListing struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Brand      RefSummary         `json:"brand_detail" bson:"brand"`
	Dealer     *RefSummary        `json:"dealer,omitempty" bson:"dealer,omitempty"`
	Seller     *RefSummary        `json:"seller,omitempty" bson:"seller,omitempty"`
	Branch     *RefSummary        `json:"branch,omitempty" bson:"branch,omitempty"`
	Variant    *RefSummary        `json:"variant,omitempty" bson:"variant,omitempty"`
	Name       string             `json:"name" bson:"name" validate:"required,max=200"`
	ModelName  string             `json:"model_name,omitempty" bson:"model_name,omitempty"`
	Category   VehicleCategory    `json:"category" bson:"category" validate:"required"`
	FuelType   FuelType           `json:"fuel_type" bson:"fuel_type" validate:"required"`
	Price      float64            `json:"price" bson:"price" validate:"required,gt=0"`
	Status     ListingStatus      `json:"status" bson:"status" default:"AVAILABLE"`
	Stock      int                `json:"stock" bson:"stock"`
	IsFeatured bool               `json:"is_featured" bson:"is_featured"`
	Type       ListingType        `json:"type" bson:"type" validate:"required"`

	// Discount fields are co-required: either both type and value are set or
	// neither is.
	DiscountType        *DiscountType `json:"discount_type,omitempty" bson:"discount_type,omitempty"`
	DiscountValue       *float64      `json:"discount_value,omitempty" bson:"discount_value,omitempty"`
	DiscountDescription string        `json:"discount_description,omitempty" bson:"discount_description,omitempty"`

	// Condition fields, meaningful for USED listings only.
	Year          *int   `json:"year,omitempty" bson:"year,omitempty"`
	KmDriven      *int   `json:"km_driven,omitempty" bson:"km_driven,omitempty"`
	Condition     string `json:"condition,omitempty" bson:"condition,omitempty"`
	ExchangeOffer bool   `json:"exchange_offer" bson:"exchange_offer"`
	LoanOption    bool   `json:"loan_option" bson:"loan_option"`
	Approved      bool   `json:"approved" bson:"approved"`

	Specs map[string]interface{} `json:"specs" bson:"specs"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// EffectiveSpecs returns the specs served to clients. The variant reference is
// weak: if the variant is gone the listing's own specs stand.
func (l *VehicleListing) EffectiveSpecs() map[string]interface{} {
	if l.Specs == nil {
		return map[string]interface{}{}
	}
	return l.Specs
}

func (l *VehicleListing) HasDiscount() bool {
	return l.DiscountType != nil
}

// VehicleImage is one entry of a listing's ordered image set. Order is a
// 0-based index, stable and significant for display.
type VehicleImage struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ListingID primitive.ObjectID `json:"listing_id" bson:"listing_id"`
	Key       string             `json:"-" bson:"key"`
	URL       string             `json:"image" bson:"url"`
	Order     int                `json:"order" bson:"order"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// ListingDetail is the full client representation: the listing plus its
// ordered image set.
type ListingDetail struct {
	*VehicleListing
	Images      []*VehicleImage `json:"images"`
	HasDiscount bool            `json:"has_discount"`
}

func NewListingDetail(listing *VehicleListing, images []*VehicleImage) *ListingDetail {
	listing.Specs = listing.EffectiveSpecs()
	return &ListingDetail{
		VehicleListing: listing,
		Images:         images,
		HasDiscount:    listing.HasDiscount(),
	}
}

func ValidListingType(t ListingType) bool {
	return t == ListingTypeNew || t == ListingTypeUsed
}

func ValidCategory(c VehicleCategory) bool {
	return c == CategoryBike || c == CategoryScooter || c == CategoryEV
}

func ValidFuelType(f FuelType) bool {
	return f == FuelPetrol || f == FuelElectric || f == FuelHybrid
}

func ValidListingStatus(s ListingStatus) bool {
	return s == ListingStatusAvailable || s == ListingStatusSold || s == ListingStatusHold
}

func ValidDiscountType(d DiscountType) bool {
	return d == DiscountPercentage || d == DiscountFixed || d == DiscountCashback
}
