package configs

import (
	"github.com/spf13/viper"
)

// CatalogDriver selects the product catalog backend.
type CatalogDriver string

const (
	// CatalogMongo persists products in a MongoDB collection.
	CatalogMongo CatalogDriver = "mongo"
	// CatalogJSONFile persists the whole catalog as one JSON document on disk.
	CatalogJSONFile CatalogDriver = "jsonfile"
)

const (
	DefaultCatalogDriver     = CatalogMongo
	DefaultCatalogCollection = "products"          // mongo collection name
	DefaultCatalogFilePath   = "data/catalog.json" // jsonfile document path
)

// CatalogConfig holds the product catalog configuration.
type CatalogConfig struct {
	Driver     CatalogDriver `mapstructure:"driver"     rule:"oneof=mongo jsonfile"`
	Collection string        `mapstructure:"collection"`
	FilePath   string        `mapstructure:"file_path"`
}

// setDefaults applies the catalog configuration defaults.
func (c *CatalogConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.driver", string(DefaultCatalogDriver))
	v.SetDefault("catalog.collection", DefaultCatalogCollection)
	v.SetDefault("catalog.file_path", DefaultCatalogFilePath)
}
