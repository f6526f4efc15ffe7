// Package configs manages application configuration: server, logging, storage
// backends (Mongo, blob store, catalog), mail relay, CORS and rate limiting.
// Multiple formats are supported (YAML, JSON, TOML, dotenv) with optional hot
// reload.
//
// Example:
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppVersion is stamped into client user agents and the root endpoint.
const AppVersion = "1.0.0"

type (
	// AppConfig is the global application configuration.
	AppConfig struct {
		Server    ServerConfig    `mapstructure:"server"`     // listening address, debug mode, timeouts
		Log       LogConfig       `mapstructure:"log"`        // log level and file rotation
		Mongo     MongoConfig     `mapstructure:"mongo"`      // MongoDB connection
		Blob      BlobConfig      `mapstructure:"blob"`       // image blob store driver
		Catalog   CatalogConfig   `mapstructure:"catalog"`    // product catalog driver
		Mail      MailConfig      `mapstructure:"mail"`       // SMTP relay
		CORS      CORSConfig      `mapstructure:"cors"`       // allowed origins
		RateLimit RateLimitConfig `mapstructure:"rate_limit"` // per-client request limits
		Metrics   MetricsConfig   `mapstructure:"metrics"`    // Prometheus exposition
	}
)

var (
	// globalConfig is the global configuration instance.
	globalConfig AppConfig
	// appViper is the global Viper instance.
	appViper *viper.Viper
)

// InitConfig loads the application configuration from a file or directory,
// applies defaults and NURSERY_* environment overrides, and optionally enables
// hot reload.
func InitConfig(path string) error {
	appViper = viper.New()
	setAllDefaults(appViper)

	// path may point at a file or at a directory containing config.<ext>
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		appViper.SetConfigFile(path)
	} else {
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(filepath.Join(path, "configs"))

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}
		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("NURSERY")

	if err := appViper.ReadInConfig(); err != nil {
		// Missing config file is fine: defaults plus env cover every option.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults applies the default values of every section.
func setAllDefaults(v *viper.Viper) {
	var (
		serverConfig    ServerConfig
		logConfig       LogConfig
		mongoConfig     MongoConfig
		blobConfig      BlobConfig
		catalogConfig   CatalogConfig
		mailConfig      MailConfig
		corsConfig      CORSConfig
		rateLimitConfig RateLimitConfig
		metricsConfig   MetricsConfig
	)

	serverConfig.setDefaults(v)
	logConfig.setDefaults(v)
	mongoConfig.setDefaults(v)
	blobConfig.setDefaults(v)
	catalogConfig.setDefaults(v)
	mailConfig.setDefaults(v)
	corsConfig.setDefaults(v)
	rateLimitConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig returns the global configuration instance.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
