// Package context carries the process-level dependencies through the request
// context so handlers receive them without globals.
package context

import (
	"context"

	"github.com/greengivers/nursery/pkg/internal/mailer"
	"github.com/greengivers/nursery/pkg/internal/storage"
	"github.com/greengivers/nursery/pkg/internal/storage/blob"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
)

type ContextKey string

const (
	StorageManagerKey ContextKey = "storageManager"
	MailerKey         ContextKey = "mailer"
)

// WithStorageManager stores the Manager in the context.
func WithStorageManager(ctx context.Context, mgr *storage.Manager) context.Context {
	return context.WithValue(ctx, StorageManagerKey, mgr)
}

// GetManager retrieves the Manager from the context.
func GetManager(ctx context.Context) *storage.Manager {
	if mgr, ok := ctx.Value(StorageManagerKey).(*storage.Manager); ok {
		return mgr
	}

	return nil
}

// GetBlobClient retrieves the blob store client from the context.
func GetBlobClient(ctx context.Context) *blob.Client {
	if mgr := GetManager(ctx); mgr != nil {
		return mgr.GetBlobClient()
	}

	return nil
}

// GetCatalogClient retrieves the catalog client from the context.
func GetCatalogClient(ctx context.Context) *catalog.Client {
	if mgr := GetManager(ctx); mgr != nil {
		return mgr.GetCatalogClient()
	}

	return nil
}

// WithMailer stores the mail relay client in the context.
func WithMailer(ctx context.Context, m mailer.Mailer) context.Context {
	return context.WithValue(ctx, MailerKey, m)
}

// GetMailer retrieves the mail relay client from the context.
func GetMailer(ctx context.Context) mailer.Mailer {
	if m, ok := ctx.Value(MailerKey).(mailer.Mailer); ok {
		return m
	}

	return nil
}
