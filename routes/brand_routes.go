package routes

import (
	"github.com/gin-gonic/gin"

	"vahanbazar/internal/handlers"
	"vahanbazar/internal/middleware"
)

func SetupBrandRoutes(r *gin.RouterGroup, brandHandler *handlers.BrandHandler, auth gin.HandlerFunc) {
	brands := r.Group("/brands")
	{
		brands.GET("", brandHandler.ListBrands)
		brands.GET("/:id", brandHandler.GetBrand)
	}

	admin := r.Group("/brands")
	admin.Use(auth, middleware.ManagerRequired())
	{
		admin.POST("", brandHandler.CreateBrand)
		admin.PUT("/:id", brandHandler.UpdateBrand)
		admin.DELETE("/:id", brandHandler.DeleteBrand)
	}
}
