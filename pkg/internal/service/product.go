package service

import (
	"context"

	"github.com/greengivers/nursery/pkg/internal/model"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
	"github.com/greengivers/nursery/pkg/internal/types"
)

// ProductService exposes catalog CRUD and aggregation.
type ProductService struct {
	store *catalog.Client
}

// NewProductService builds the service on top of a catalog client.
func NewProductService(store *catalog.Client) *ProductService {
	return &ProductService{store: store}
}

// List returns products matching the filter, newest first. Active-only
// unless the filter says otherwise.
func (s *ProductService) List(ctx context.Context, f catalog.Filter) ([]model.Product, error) {
	return s.store.List(ctx, f)
}

// ListByCategory returns the active products of one category.
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.store.List(ctx, catalog.Filter{Category: category})
}

// Get returns one product or catalog.ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.store.Get(ctx, id)
}

// Create validates and stores a new product.
func (s *ProductService) Create(ctx context.Context, req *types.ProductRequest) (*model.Product, error) {
	return s.store.Create(ctx, req.ToModel())
}

// Update replaces an existing product wholesale and stamps updatedAt.
func (s *ProductService) Update(ctx context.Context, id string, req *types.ProductRequest) (*model.Product, error) {
	return s.store.Update(ctx, id, req.ToModel())
}

// Delete removes a product and returns the removed record.
func (s *ProductService) Delete(ctx context.Context, id string) (*model.Product, error) {
	return s.store.Delete(ctx, id)
}

// Stats computes live catalog aggregates.
func (s *ProductService) Stats(ctx context.Context) (*catalog.Stats, error) {
	return s.store.Stats(ctx)
}
