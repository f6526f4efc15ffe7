package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/configs"
)

// CORSMiddleware builds the CORS policy from configuration. Debug mode
// allows every origin.
func CORSMiddleware(server configs.ServerConfig, corsCfg configs.CORSConfig) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = corsCfg.AllowOrigins
	config.AllowFiles = true

	if server.Debug {
		config.AllowAllOrigins = true
		config.AllowOrigins = nil
	}

	return cors.New(config)
}
