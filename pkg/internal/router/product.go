package router

import (
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/handle"
)

// RegisterProductRoutes binds the catalog CRUD and aggregation routes.
func RegisterProductRoutes(g *gin.RouterGroup) {
	products := g.Group("/products")
	{
		products.GET("", handle.ListProducts)
		products.GET("/stats", handle.GetProductStats)
		products.GET("/category/:category", handle.GetProductsByCategory)
		products.GET("/:id", handle.GetProduct)
		products.POST("", handle.CreateProduct)
		products.PUT("/:id", handle.UpdateProduct)
		products.DELETE("/:id", handle.DeleteProduct)
	}
}
