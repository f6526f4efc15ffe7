// Package api registers the public HTTP surface onto a gin engine.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/router"
)

// RegisterGroup binds every route of the service to the engine.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	router.RegisterRoutes(e)

	return e
}
