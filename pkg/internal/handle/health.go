package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/configs"
	ctxPkg "github.com/greengivers/nursery/pkg/context"
	"github.com/greengivers/nursery/pkg/internal/types"
)

const probeTimeout = 2 * time.Second

// Health answers the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Success:     true,
		Message:     "Green Givers Nursery API is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: configs.GetConfig().Server.Environment,
		Version:     configs.AppVersion,
	})
}

// HealthMongo probes the MongoDB connection. Deployments where no driver
// uses Mongo report not configured.
func HealthMongo(c *gin.Context) {
	mc := ctxPkg.GetManager(c.Request.Context()).GetMongoClient()
	if mc == nil {
		c.JSON(http.StatusOK, gin.H{"component": "mongo", "status": "not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if err := mc.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "mongo", "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "mongo", "status": "ok"})
}

// HealthBlob probes the blob store with a metadata listing.
func HealthBlob(c *gin.Context) {
	bc := ctxPkg.GetBlobClient(c.Request.Context())
	if bc == nil || bc.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "blob", "status": "unhealthy", "error": "blob store not initialized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if _, err := bc.List(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "blob", "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "blob", "status": "ok"})
}

// Welcome answers the root path with the endpoint map.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, types.WelcomeResponse{
		Message: "Welcome to Green Givers Nursery API",
		Version: configs.AppVersion,
		Endpoints: map[string]string{
			"products": "/api/products",
			"stats":    "/api/products/stats",
			"images":   "/api/images",
			"email":    "/api/email",
			"health":   "/api/health",
		},
	})
}
