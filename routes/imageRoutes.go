package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dopetech/dopetech-api/controllers"
)

func ImageRoutes(server *gin.Engine, productImages *controllers.ProductImageController, heroImages *controllers.HeroImageController) {
	api := server.Group("/api")
	{
		api.GET("/product-images", productImages.GetProductImages)
		api.POST("/product-images", productImages.UploadProductImage)
		api.GET("/hero-images", heroImages.GetHeroImages)
		api.POST("/hero-images/upload", heroImages.UploadHeroImage)
	}
}
