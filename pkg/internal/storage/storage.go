// Package storage assembles the configured storage backends into one manager
// that the HTTP layer receives through the request context.
package storage

import (
	"context"
	"fmt"

	"github.com/greengivers/nursery/pkg/configs"
	"github.com/greengivers/nursery/pkg/internal/storage/blob"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
	mongoc "github.com/greengivers/nursery/pkg/internal/storage/mongo"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// Manager holds the storage clients for one process. Mongo is only connected
// when the configured drivers need it.
type Manager struct {
	Mongo   *mongoc.Client
	Blob    *blob.Client
	Catalog *catalog.Client
}

// Init builds the manager from the loaded configuration.
func Init(ctx context.Context) (*Manager, error) {
	cfg := configs.GetConfig()
	m := &Manager{}

	needMongo := cfg.Blob.Driver == configs.BlobGridFS || cfg.Catalog.Driver == configs.CatalogMongo
	if needMongo {
		cli, err := mongoc.New(ctx, &cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("init mongo: %w", err)
		}
		m.Mongo = cli
	}

	blobStore, err := m.initBlob(ctx, cfg)
	if err != nil {
		m.Close(ctx)
		return nil, fmt.Errorf("init blob store: %w", err)
	}
	m.Blob = &blob.Client{Store: blobStore}

	catalogStore, err := m.initCatalog(ctx, cfg)
	if err != nil {
		m.Close(ctx)
		return nil, fmt.Errorf("init catalog store: %w", err)
	}
	m.Catalog = &catalog.Client{Store: catalogStore}

	nlog.Logger().Info().
		Str("blob_driver", string(cfg.Blob.Driver)).
		Str("catalog_driver", string(cfg.Catalog.Driver)).
		Msg("storage initialized")

	return m, nil
}

func (m *Manager) initBlob(ctx context.Context, cfg *configs.AppConfig) (blob.Store, error) {
	switch cfg.Blob.Driver {
	case configs.BlobGridFS:
		return blob.NewGridFS(m.Mongo.Database(), cfg.Blob.Bucket)
	case configs.BlobS3:
		return blob.NewS3(ctx, &cfg.Blob)
	case configs.BlobMemory:
		return blob.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Blob.Driver)
	}
}

func (m *Manager) initCatalog(ctx context.Context, cfg *configs.AppConfig) (catalog.Store, error) {
	switch cfg.Catalog.Driver {
	case configs.CatalogMongo:
		return catalog.NewMongo(ctx, m.Mongo.Database(), cfg.Catalog.Collection)
	case configs.CatalogJSONFile:
		return catalog.NewJSONFile(cfg.Catalog.FilePath)
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
}

// GetBlobClient returns the blob store client.
func (m *Manager) GetBlobClient() *blob.Client {
	return m.Blob
}

// GetCatalogClient returns the catalog store client.
func (m *Manager) GetCatalogClient() *catalog.Client {
	return m.Catalog
}

// GetMongoClient returns the mongo client, nil when no driver uses Mongo.
func (m *Manager) GetMongoClient() *mongoc.Client {
	return m.Mongo
}

// Close releases every held backend. Safe to call on a partially built
// manager.
func (m *Manager) Close(ctx context.Context) {
	if m.Blob != nil && m.Blob.Store != nil {
		if err := m.Blob.Close(); err != nil {
			nlog.Logger().Warn().Err(err).Msg("close blob store")
		}
	}
	if m.Catalog != nil && m.Catalog.Store != nil {
		if err := m.Catalog.Close(); err != nil {
			nlog.Logger().Warn().Err(err).Msg("close catalog store")
		}
	}
	if m.Mongo != nil {
		if err := m.Mongo.Close(ctx); err != nil {
			nlog.Logger().Warn().Err(err).Msg("disconnect mongo")
		}
	}
}
