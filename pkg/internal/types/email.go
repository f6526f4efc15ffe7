package types

// VisitRequest is the visit scheduling form payload. Delivered by mail only,
// never persisted.
type VisitRequest struct {
	Name     string `json:"name"     rule:"required,max=100"`
	Email    string `json:"email"    rule:"required,email"`
	Phone    string `json:"phone"    rule:"max=20"`
	Date     string `json:"date"     rule:"required"`
	Time     string `json:"time"     rule:"required"`
	Location string `json:"location" rule:"max=200"`
	Message  string `json:"message"  rule:"max=2000"`
}

// PurchaseForm is the customer half of a purchase inquiry.
type PurchaseForm struct {
	Name     string `json:"name"     rule:"required,max=100"`
	Email    string `json:"email"    rule:"required,email"`
	Phone    string `json:"phone"    rule:"max=20"`
	Quantity int    `json:"quantity" rule:"min=1"`
	Message  string `json:"message"  rule:"max=2000"`
}

// PlantSnapshot is the catalog item snapshot embedded in a purchase inquiry.
// Image may be an absolute URL, an /api/images path, or a bare stored
// filename.
type PlantSnapshot struct {
	Name     string  `json:"name"     rule:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// PurchaseInquiry is the purchase inquiry payload.
type PurchaseInquiry struct {
	FormData     PurchaseForm  `json:"formData"`
	PlantDetails PlantSnapshot `json:"plantDetails"`
}
