package router

import (
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/handle"
)

// RegisterHealthRoutes binds the liveness and per-component probes.
func RegisterHealthRoutes(g *gin.RouterGroup) {
	health := g.Group("/health")
	{
		health.GET("", handle.Health)
		health.GET("/mongo", handle.HealthMongo)
		health.GET("/blob", handle.HealthBlob)
	}
}
