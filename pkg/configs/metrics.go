package configs

import (
	"github.com/spf13/viper"
)

// MetricsConfig holds Prometheus exposition configuration.
type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`         // expose /metrics
	RuntimeMetrics bool `mapstructure:"runtime_metrics"` // collect Go/process metrics
	Pprof          bool `mapstructure:"pprof"`           // expose /debug/pprof
}

// setDefaults applies the metrics configuration defaults.
func (c *MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.runtime_metrics", true)
	v.SetDefault("metrics.pprof", false)
}
