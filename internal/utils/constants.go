package utils

import "time"

// Application Constants
const (
	AppName    = "VahanBazar"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage = "en"
	DefaultCurrency = "INR"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour

	// Listings
	MinListingImages  = 3
	MaxListingImages  = 10
	MaxListingNameLen = 200

	// File Upload
	MaxImageSize = 5 * 1024 * 1024 // 5MB

	// Cache TTLs
	ListingCacheTTL   = 10 * time.Minute
	DashboardCacheTTL = 5 * time.Minute

	// Dealer dashboard
	DashboardSeriesDays = 30
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrUnauthorized     = "unauthorized"
	ErrForbidden        = "forbidden"
	ErrNotFound         = "not found"
	ErrValidationFailed = "validation failed"
	ErrFileUploadFailed = "file upload failed"
)

// Cache Keys
const (
	CacheKeyListing         = "listing_%s"
	CacheKeyDealerDashboard = "dealer_dashboard_%s"
	CacheKeyFeaturedList    = "featured_listings"
)

// Allowed upload types
var (
	AllowedImageTypes = []string{"jpg", "jpeg", "png", "webp"}
)
