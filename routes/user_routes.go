package routes

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/handlers"
)

// SetupUserRoutes wires the endpoints scoped to the acting customer account:
// wishlist, bookings and notifications.
func SetupUserRoutes(
	r *gin.RouterGroup,
	wishlistHandler *handlers.WishlistHandler,
	bookingHandler *handlers.BookingHandler,
	notificationHandler *handlers.NotificationHandler,
	auth gin.HandlerFunc,
) {
	wishlist := r.Group("/wishlist")
	wishlist.Use(auth)
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/:vehicle_id", wishlistHandler.RemoveFromWishlist)
	}

	bookings := r.Group("/bookings")
	bookings.Use(auth)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.MyBookings)
		bookings.PUT("/:id/status", bookingHandler.UpdateBookingStatus)
	}

	notifications := r.Group("/notifications")
	notifications.Use(auth)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
		notifications.POST("/read-all", notificationHandler.MarkAllRead)
	}
}
