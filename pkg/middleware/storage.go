package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/context"
	"github.com/greengivers/nursery/pkg/internal/mailer"
	"github.com/greengivers/nursery/pkg/internal/storage"
)

// StorageMiddleware injects the storage manager into the request context.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// MailerMiddleware injects the mail relay client into the request context.
func MailerMiddleware(m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithMailer(c.Request.Context(), m)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
