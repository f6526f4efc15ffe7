// Package app wires configuration, storage, mail, and middleware into one
// runnable HTTP application.
package app

import (
	contextPkg "context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/greengivers/nursery/pkg/api"
	"github.com/greengivers/nursery/pkg/configs"
	"github.com/greengivers/nursery/pkg/internal/mailer"
	"github.com/greengivers/nursery/pkg/internal/service"
	"github.com/greengivers/nursery/pkg/internal/storage"
	"github.com/greengivers/nursery/pkg/log"
	"github.com/greengivers/nursery/pkg/metrics"
	"github.com/greengivers/nursery/pkg/middleware"
)

// App is the assembled HTTP application.
type App struct {
	Engine  *gin.Engine
	Manager *storage.Manager
	Mailer  mailer.Mailer

	config *configs.AppConfig
	server *http.Server
}

// NewApp loads configuration and builds the engine with every dependency
// constructed up front and injected through middleware.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()
	log.Init()

	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	relay, err := mailer.NewSMTP(&config.Mail)
	if err != nil {
		fmt.Printf("Error initializing mail relay: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.CORSMiddleware(config.Server, config.CORS),
		middleware.GinLoggerMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.PrometheusMiddleware(),
		// Image bytes are already compressed; skip gzip on the byte routes.
		// JSON routes under the same prefix (upload, list) stay compressible.
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{
			service.ImageBytesPattern,
		})),
		middleware.StorageMiddleware(manager),
		middleware.MailerMiddleware(relay),
	)

	api.RegisterGroup(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:  engine,
		Manager: manager,
		Mailer:  relay,
		config:  config,
	}
}

// Run serves HTTP until the listener fails or Shutdown is called.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.Engine,
		ReadTimeout:  a.config.Server.GetTimeoutDuration(),
		WriteTimeout: a.config.Server.GetTimeoutDuration(),
	}

	log.Logger().Info().Str("addr", addr).Msg("HTTP server listening")

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown drains in-flight requests and releases every backend.
func (a *App) Shutdown(ctx contextPkg.Context) error {
	var errs []string

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if a.Manager != nil {
		a.Manager.Close(ctx)
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown: %s", strings.Join(errs, "; "))
	}

	return nil
}
