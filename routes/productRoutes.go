package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dopetech/dopetech-api/controllers"
)

func ProductRoutes(server *gin.Engine, products *controllers.ProductController, edgeProducts *controllers.EdgeProductController) {
	api := server.Group("/api")
	{
		api.GET("/products", products.GetProducts)
		api.POST("/products", products.CreateProduct)
		api.PUT("/products", products.UpdateProduct)
		api.DELETE("/products", products.DeleteProduct)
		api.GET("/products/:id", edgeProducts.GetProduct)
	}

	edge := server.Group("/api/edge")
	{
		edge.GET("/products", edgeProducts.GetProducts)
		edge.GET("/products/with-images", edgeProducts.GetProductsWithImages)
		edge.GET("/products/dope-picks", edgeProducts.GetDopePicks)
		edge.GET("/products/weekly-picks", edgeProducts.GetWeeklyPicks)
		edge.GET("/products/category/:category", edgeProducts.GetProductsByCategory)
		edge.GET("/products/:id", edgeProducts.GetProduct)
		edge.GET("/product-images", edgeProducts.GetProductImages)
		edge.GET("/hero-images", edgeProducts.GetHeroImages)
	}
}
