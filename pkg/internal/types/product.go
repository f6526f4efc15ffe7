package types

import "github.com/greengivers/nursery/pkg/internal/model"

// ProductRequest is the create/update payload. InStock and IsActive are
// pointers so an omitted flag defaults to true instead of false.
type ProductRequest struct {
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	Price         float64                `json:"price"`
	OriginalPrice float64                `json:"originalPrice"`
	Image         string                 `json:"image"`
	Description   string                 `json:"description"`
	Features      []string               `json:"features"`
	Care          model.CareInstructions `json:"care"`
	Traits        model.Traits           `json:"traits"`
	InStock       *bool                  `json:"inStock"`
	StockQuantity int                    `json:"stockQuantity"`
	IsActive      *bool                  `json:"isActive"`
	Badge         string                 `json:"badge"`
}

// ToModel converts the payload into a catalog record, applying flag
// defaults. Id and timestamps are assigned by the store.
func (r *ProductRequest) ToModel() *model.Product {
	p := &model.Product{
		Name:          r.Name,
		Category:      r.Category,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		Description:   r.Description,
		Features:      r.Features,
		Care:          r.Care,
		Traits:        r.Traits,
		InStock:       true,
		StockQuantity: r.StockQuantity,
		IsActive:      true,
		Badge:         r.Badge,
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}

	return p
}
