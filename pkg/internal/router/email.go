package router

import (
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/handle"
)

// RegisterEmailRoutes binds the mail dispatch routes.
func RegisterEmailRoutes(g *gin.RouterGroup) {
	email := g.Group("/email")
	{
		email.POST("/visit", handle.SendVisitEmail)
		email.POST("/purchase", handle.SendPurchaseEmail)
	}
}
