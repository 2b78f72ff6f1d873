package routes

import (
	"transparencyhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupProductRoutes mounts the product catalog endpoints
func SetupProductRoutes(router gin.IRouter, pc *controllers.ProductController) {
	router.GET("/products", pc.ListProducts)

	api := router.Group("/api/products")
	{
		api.GET("", pc.ListProducts)
		api.POST("", pc.CreateProduct)
		api.GET("/:id", pc.GetProduct)
		api.PUT("/:id", pc.UpdateProduct)
		api.DELETE("/:id", pc.DeleteProduct)
	}
}
