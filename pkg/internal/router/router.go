// Package router binds the HTTP paths to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/handle"
)

// RegisterRoutes binds the full API surface onto the engine.
func RegisterRoutes(e *gin.Engine) {
	e.GET("/", handle.Welcome)

	api := e.Group("/api")
	{
		RegisterProductRoutes(api)
		RegisterImageRoutes(api)
		RegisterEmailRoutes(api)
		RegisterHealthRoutes(api)
	}

	e.NoRoute(handle.NotFoundHandler)
}
