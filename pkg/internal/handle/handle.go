// Package handle implements the HTTP request handlers.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/configs"
	ctxPkg "github.com/greengivers/nursery/pkg/context"
	"github.com/greengivers/nursery/pkg/internal/service"
	"github.com/greengivers/nursery/pkg/internal/storage/blob"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
	"github.com/greengivers/nursery/pkg/internal/types"
)

// NotFoundHandler answers every unmatched route.
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, types.ErrorResponse{
		Success: false,
		Message: "Route not found",
		Path:    c.Request.URL.Path,
	})
}

// respondError maps a service error onto the JSON failure envelope.
func respondError(c *gin.Context, err error) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  verr.Errors,
		})
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, blob.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrImageTooLarge),
		errors.Is(err, service.ErrNotImage),
		errors.Is(err, service.ErrNoFile):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	default:
		resp := types.ErrorResponse{
			Success: false,
			Message: "Internal server error",
		}
		// The raw error leaks storage details; exposed outside production
		// only.
		if configs.GetConfig().Server.Environment != "production" {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func productService(c *gin.Context) *service.ProductService {
	return service.NewProductService(ctxPkg.GetCatalogClient(c.Request.Context()))
}

func imageService(c *gin.Context) *service.ImageService {
	return service.NewImageService(ctxPkg.GetBlobClient(c.Request.Context()))
}

func emailService(c *gin.Context) *service.EmailService {
	ctx := c.Request.Context()

	return service.NewEmailService(
		ctxPkg.GetMailer(ctx),
		ctxPkg.GetBlobClient(ctx),
		configs.GetConfig().Mail.AdminAddress,
	)
}
