package routes

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/handlers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadHandler *handlers.UploadHandler, auth gin.HandlerFunc) {
	uploads := r.Group("/uploads")
	uploads.Use(auth)
	{
		uploads.POST("/images", uploadHandler.UploadImage)
	}
}
