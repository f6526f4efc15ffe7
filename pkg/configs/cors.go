package configs

import "github.com/spf13/viper"

// CORSConfig holds the allowed browser origins. Debug mode allows everything.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

func (c *CORSConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("cors.allow_origins", []string{
		"http://localhost:3000",
		"http://localhost:3001",
	})
}
