package routes

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/handlers"
	"vahanbazar/internal/middleware"
)

// SetupListingRoutes wires the marketplace surface: browsing, composing and
// managing vehicle listings plus their variants and reviews.
func SetupListingRoutes(
	r *gin.RouterGroup,
	listingHandler *handlers.ListingHandler,
	variantHandler *handlers.VariantHandler,
	reviewHandler *handlers.ReviewHandler,
	auth gin.HandlerFunc,
) {
	listings := r.Group("/listings")
	{
		listings.GET("", listingHandler.ListListings)
		listings.GET("/featured", listingHandler.FeaturedListings)
		listings.GET("/:id", listingHandler.GetListing)
		listings.GET("/:id/variants", variantHandler.ListVariants)
		listings.GET("/:id/reviews", reviewHandler.ListReviews)
	}

	protected := r.Group("/listings")
	protected.Use(auth)
	{
		protected.POST("", listingHandler.CreateListing)
		protected.PUT("/:id", listingHandler.UpdateListing)
		protected.DELETE("/:id", listingHandler.DeleteListing)
		protected.PATCH("/:id/stock", listingHandler.UpdateStock)
		protected.POST("/:id/toggle-featured", listingHandler.ToggleFeatured)
		protected.POST("/:id/variants", variantHandler.CreateVariant)
		protected.POST("/:id/reviews", reviewHandler.CreateReview)
		protected.GET("/mine", listingHandler.SellerListings)
	}

	moderation := r.Group("/listings")
	moderation.Use(auth, middleware.ManagerRequired())
	{
		moderation.POST("/:id/approve", listingHandler.ApproveListing)
	}

	variants := r.Group("/variants")
	{
		variants.GET("/:id", variantHandler.GetVariant)
	}
	variantAdmin := r.Group("/variants")
	variantAdmin.Use(auth)
	{
		variantAdmin.PUT("/:id", variantHandler.UpdateVariant)
		variantAdmin.DELETE("/:id", variantHandler.DeleteVariant)
	}
}
