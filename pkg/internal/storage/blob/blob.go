// Package blob provides the image blob store contract and its drivers
// (GridFS, S3, memory). Blobs are addressed by a generated filename that is
// unique within the bucket and never reused; stored content is immutable.
package blob

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/greengivers/nursery/pkg/internal/model"
)

// ErrNotFound is returned when a filename or identifier does not resolve to a
// stored blob.
var ErrNotFound = errors.New("blob not found")

// Store is the blob store contract.
type Store interface {
	// Put stores the full byte stream under a freshly generated filename and
	// returns the stored metadata. Success is not reported until the backing
	// store confirms the write; a failed transfer leaves no retrievable file.
	Put(ctx context.Context, r io.Reader, originalName, contentType string) (*model.BlobFile, error)
	// FindByFilename returns the metadata of one blob, or ErrNotFound.
	FindByFilename(ctx context.Context, filename string) (*model.BlobFile, error)
	// OpenReadStream opens the blob content for reading together with its
	// metadata. The caller owns the returned reader.
	OpenReadStream(ctx context.Context, filename string) (io.ReadCloser, *model.BlobFile, error)
	// Delete removes the blob behind an identifier, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// List returns the metadata of every stored blob. Unpaginated; bucket
	// sizes stay small.
	List(ctx context.Context) ([]model.BlobFile, error)
	// Close releases the driver's resources.
	Close() error
}

// Client wraps a Store driver.
type Client struct {
	Store
}

// NewFilename generates a collision-resistant filename: 32 random hex
// characters plus the lowercased extension of the original name. The original
// name itself never leaks into the key.
func NewFilename(originalName string) string {
	u := uuid.New()
	ext := strings.ToLower(path.Ext(originalName))

	return hex.EncodeToString(u[:]) + ext
}
