package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all API routes on the router.
func RegisterRoutes(router *gin.Engine, products *ProductHandler, health *HealthHandler) {
	router.GET("/", health.GetIndex)
	router.GET("/health", health.GetHealth)

	api := router.Group("/api/products")
	{
		api.GET("", products.ListProducts)
		api.POST("", products.CreateProduct)
		api.GET("/:id", products.GetProduct)
		api.PUT("/:id", products.UpdateProduct)
		api.DELETE("/:id", products.DeleteProduct)
		api.POST("/:id/like", products.LikeProduct)
	}
}
