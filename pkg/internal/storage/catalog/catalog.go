// Package catalog provides the product catalog contract and its drivers
// (MongoDB collection, single JSON document on disk).
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/greengivers/nursery/pkg/internal/model"
	"github.com/greengivers/nursery/pkg/rule"
)

// ErrNotFound is returned when an id does not resolve to a product.
var ErrNotFound = errors.New("product not found")

// ValidationError carries one message per invalid field.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// Filter narrows a List call. A nil IsActive applies the public default of
// active-only; callers needing inactive records must ask explicitly.
type Filter struct {
	Category string
	Search   string
	IsActive *bool
}

// Active resolves the effective isActive filter value.
func (f *Filter) Active() bool {
	if f.IsActive == nil {
		return true
	}

	return *f.IsActive
}

// GroupCount is one aggregation bucket, keyed the way the Mongo pipeline
// emits it.
type GroupCount struct {
	Key   string `bson:"_id"   json:"_id"`
	Count int    `bson:"count" json:"count"`
}

// Stats is the live aggregate over the whole collection. Category and badge
// buckets count active records only; empty badges are excluded.
type Stats struct {
	TotalProducts    int          `json:"totalProducts"`
	ActiveProducts   int          `json:"activeProducts"`
	InactiveProducts int          `json:"inactiveProducts"`
	CategoryStats    []GroupCount `json:"categoryStats"`
	BadgeStats       []GroupCount `json:"badgeStats"`
}

// Store is the product catalog contract. Update has full-replace semantics;
// concurrent writers race freely (last write wins).
type Store interface {
	List(ctx context.Context, f Filter) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)
	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

// Client wraps a Store driver.
type Client struct {
	Store
}

const maxNameLength = 100

// Validate runs the field-level checks shared by create and update.
func Validate(p *model.Product) error {
	var msgs []string

	if err := rule.ValidateVar(p.Name, fmt.Sprintf("required,max=%d", maxNameLength)); err != nil {
		msgs = append(msgs, "name is required and must be at most 100 characters")
	}

	if !model.ValidCategory(p.Category) {
		msgs = append(msgs, fmt.Sprintf("category must be one of: %s", strings.Join(model.Categories, ", ")))
	}

	if err := rule.ValidateVar(p.Price, "gte=0"); err != nil {
		msgs = append(msgs, "price must be a non-negative number")
	}

	if p.StockQuantity < 0 {
		msgs = append(msgs, "stockQuantity must not be negative")
	}

	if len(msgs) > 0 {
		return &ValidationError{Errors: msgs}
	}

	return nil
}
