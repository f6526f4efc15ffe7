package router

import (
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/handle"
)

// RegisterImageRoutes binds the image pipeline routes.
func RegisterImageRoutes(g *gin.RouterGroup) {
	images := g.Group("/images")
	{
		images.POST("/upload", handle.UploadImage)
		images.GET("", handle.ListImages)
		images.GET("/:filename", handle.GetImage)
		images.DELETE("/:filename", handle.DeleteImage)
	}
}
