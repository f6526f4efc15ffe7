// Package model defines the persisted entities of the nursery catalog.
package model

import (
	"time"
)

// Categories is the fixed set a product may belong to.
var Categories = []string{
	"Avenue Trees",
	"Flower Plants",
	"Fruit Plants",
	"Indoor Plants",
	"Outdoor Plants",
	"Show Plants",
}

// ValidCategory reports whether c is one of the enumerated categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// CareInstructions are the extended care detail fields shown on a product
// page.
type CareInstructions struct {
	BotanicalName     string `bson:"botanicalName,omitempty"     json:"botanicalName,omitempty"`
	CareLevel         string `bson:"careLevel,omitempty"         json:"careLevel,omitempty"`
	LightRequirement  string `bson:"lightRequirement,omitempty"  json:"lightRequirement,omitempty"`
	WateringFrequency string `bson:"wateringFrequency,omitempty" json:"wateringFrequency,omitempty"`
	Humidity          string `bson:"humidity,omitempty"          json:"humidity,omitempty"`
	Temperature       string `bson:"temperature,omitempty"       json:"temperature,omitempty"`
	Fertilizer        string `bson:"fertilizer,omitempty"        json:"fertilizer,omitempty"`
	SoilType          string `bson:"soilType,omitempty"          json:"soilType,omitempty"`
	MaxHeight         string `bson:"maxHeight,omitempty"         json:"maxHeight,omitempty"`
	Origin            string `bson:"origin,omitempty"            json:"origin,omitempty"`
}

// Traits are the boolean plant trait flags.
type Traits struct {
	PetFriendly    bool `bson:"petFriendly"    json:"petFriendly"`
	AirPurifying   bool `bson:"airPurifying"   json:"airPurifying"`
	LowMaintenance bool `bson:"lowMaintenance" json:"lowMaintenance"`
	Flowering      bool `bson:"flowering"      json:"flowering"`
	Fragrant       bool `bson:"fragrant"       json:"fragrant"`
	Edible         bool `bson:"edible"         json:"edible"`
	Medicinal      bool `bson:"medicinal"      json:"medicinal"`
}

// Product is one catalog record. ID is an opaque hex string regardless of the
// backing catalog driver. Image holds either an absolute URL, an
// /api/images/<filename> path, or a bare stored filename.
type Product struct {
	ID            string           `bson:"_id,omitempty"           json:"id"`
	Name          string           `bson:"name"                    json:"name"`
	Category      string           `bson:"category"                json:"category"`
	Price         float64          `bson:"price"                   json:"price"`
	OriginalPrice float64          `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Image         string           `bson:"image,omitempty"         json:"image,omitempty"`
	Description   string           `bson:"description,omitempty"   json:"description,omitempty"`
	Features      []string         `bson:"features,omitempty"      json:"features,omitempty"`
	Care          CareInstructions `bson:"care,omitempty"          json:"care,omitempty"`
	Traits        Traits           `bson:"traits,omitempty"        json:"traits"`
	InStock       bool             `bson:"inStock"                 json:"inStock"`
	StockQuantity int              `bson:"stockQuantity"           json:"stockQuantity"`
	IsActive      bool             `bson:"isActive"                json:"isActive"`
	Badge         string           `bson:"badge,omitempty"         json:"badge,omitempty"`
	CreatedAt     time.Time        `bson:"createdAt"               json:"createdAt"`
	UpdatedAt     time.Time        `bson:"updatedAt"               json:"updatedAt"`
}
