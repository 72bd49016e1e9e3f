package routes

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/handlers"
	"vahanbazar/internal/middleware"
)

// SetupDealerRoutes wires the dealer portal: dashboard, branch management,
// inventory and branch bookings.
func SetupDealerRoutes(
	r *gin.RouterGroup,
	dealerHandler *handlers.DealerHandler,
	listingHandler *handlers.ListingHandler,
	bookingHandler *handlers.BookingHandler,
	auth gin.HandlerFunc,
) {
	dealer := r.Group("/dealer")
	dealer.Use(auth, middleware.DealerRequired())
	{
		dealer.GET("/dashboard", dealerHandler.Dashboard)
		dealer.GET("/vehicles", listingHandler.DealerListings)
		dealer.GET("/bookings", bookingHandler.DealerBookings)

		dealer.GET("/branches", dealerHandler.ListBranches)
		dealer.POST("/branches", dealerHandler.CreateBranch)
		dealer.PUT("/branches/:id", dealerHandler.UpdateBranch)
		dealer.DELETE("/branches/:id", dealerHandler.DeleteBranch)
	}
}
