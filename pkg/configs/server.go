package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPort         = 3001          // listening port
	DefaultHost         = "0.0.0.0"     // listening address
	DefaultEnvironment  = "development" // environment tag reported by /api/health
	DefaultReloadConfig = false         // config hot reload
	DefaultDebug        = false         // debug mode
	DefaultTimeout      = 30            // request timeout, seconds
)

type (
	// ServerConfig holds the HTTP server configuration.
	ServerConfig struct {
		Port         int    `mapstructure:"port"          rule:"min=1,max=65535"`
		Host         string `mapstructure:"host"`
		Environment  string `mapstructure:"environment"`
		ReloadConfig bool   `mapstructure:"reload_config"`
		Debug        bool   `mapstructure:"debug"`
		Timeout      int    `mapstructure:"timeout"       rule:"min=1,max=300"`
	}
)

// GetTimeoutDuration returns the request timeout as a time.Duration.
func (s *ServerConfig) GetTimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// setDefaults applies the server configuration defaults.
func (s *ServerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.environment", DefaultEnvironment)
	v.SetDefault("server.reload_config", DefaultReloadConfig)
	v.SetDefault("server.debug", DefaultDebug)
	v.SetDefault("server.timeout", DefaultTimeout)
}
