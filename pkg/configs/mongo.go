package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultMongoURI      = "mongodb://localhost:27017" // connection string
	DefaultMongoDatabase = "greengivers"               // database name
	DefaultMongoTimeout  = 10                          // connect/ping timeout, seconds
)

// MongoConfig holds the MongoDB connection configuration. Mongo backs both the
// product collection and the GridFS image bucket.
type MongoConfig struct {
	URI      string `mapstructure:"uri"      rule:"required"`
	Database string `mapstructure:"database" rule:"required"`
	Timeout  int    `mapstructure:"timeout"  rule:"min=1,max=120"`
}

// TimeoutDuration returns the connect/ping timeout as a duration.
func (c *MongoConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// setDefaults applies the MongoDB configuration defaults.
func (c *MongoConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mongo.uri", DefaultMongoURI)
	v.SetDefault("mongo.database", DefaultMongoDatabase)
	v.SetDefault("mongo.timeout", DefaultMongoTimeout)
}
