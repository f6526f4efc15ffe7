package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
	"github.com/greengivers/nursery/pkg/internal/types"
)

// SendVisitEmail renders and dispatches a visit scheduling request.
func SendVisitEmail(c *gin.Context) {
	var req types.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Errors:  []string{err.Error()},
		})

		return
	}

	if _, err := emailService(c).SendVisitRequest(c.Request.Context(), &req); err != nil {
		respondEmailError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Success: true,
		Message: "Visit schedule email sent successfully",
	})
}

// SendPurchaseEmail renders and dispatches a purchase inquiry.
func SendPurchaseEmail(c *gin.Context) {
	var req types.PurchaseInquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Errors:  []string{err.Error()},
		})

		return
	}

	if _, err := emailService(c).SendPurchaseInquiry(c.Request.Context(), &req); err != nil {
		respondEmailError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Success: true,
		Message: "Purchase inquiry email sent successfully",
	})
}

// respondEmailError distinguishes bad payloads from relay failures. Every
// relay failure answers 502 with the structured failure body.
func respondEmailError(c *gin.Context, err error) {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  verr.Errors,
		})

		return
	}

	c.JSON(http.StatusBadGateway, types.ErrorResponse{
		Success: false,
		Message: "Failed to send email",
		Error:   err.Error(),
	})
}
