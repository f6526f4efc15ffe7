// Package service implements the application logic between the HTTP handlers
// and the storage and mail backends.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/greengivers/nursery/pkg/internal/model"
	"github.com/greengivers/nursery/pkg/internal/storage/blob"
	"github.com/greengivers/nursery/pkg/internal/types"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// MaxImageSize is the upload size ceiling.
const MaxImageSize = 5 << 20

// ImageURLPrefix is the public path under which stored images are served.
const ImageURLPrefix = "/api/images/"

// ImageBytesPattern matches the image fetch routes only: a generated blob
// filename under ImageURLPrefix (32 hex characters plus an optional
// lowercased extension). The upload and list endpoints under the same prefix
// do not match.
const ImageBytesPattern = "^" + ImageURLPrefix + `[0-9a-f]{32}(\.[a-z0-9]+)?$`

var (
	// ErrImageTooLarge rejects uploads over MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds the 5 MiB size limit")
	// ErrNotImage rejects uploads whose content type is not image/*.
	ErrNotImage = errors.New("only image files are allowed")
	// ErrNoFile rejects multipart requests without the image field.
	ErrNoFile = errors.New("no image file provided")
)

// ImageService exposes the image pipeline over a blob store.
type ImageService struct {
	store *blob.Client
}

// NewImageService builds the service on top of a blob client.
func NewImageService(store *blob.Client) *ImageService {
	return &ImageService{store: store}
}

// Upload validates and stores one multipart image file. Rejected uploads
// leave the store unchanged.
func (s *ImageService) Upload(ctx context.Context, fh *multipart.FileHeader) (*types.ImageInfo, error) {
	if fh == nil {
		return nil, ErrNoFile
	}
	if fh.Size > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(fh.Filename))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	// The size ceiling is enforced on the stream as well, the declared
	// header size is caller controlled.
	bf, err := s.store.Put(ctx, io.LimitReader(f, MaxImageSize+1), fh.Filename, contentType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	if bf.Size > MaxImageSize {
		if delErr := s.store.Delete(ctx, bf.ID); delErr != nil {
			nlog.Logger().Warn().Err(delErr).Str("filename", bf.Filename).Msg("remove oversized upload")
		}

		return nil, ErrImageTooLarge
	}

	nlog.Logger().Info().
		Str("filename", bf.Filename).
		Str("original_name", bf.OriginalName).
		Int64("size", bf.Size).
		Msg("image uploaded")

	return toImageInfo(bf), nil
}

// Open returns the content stream and metadata of one stored image. Blobs
// whose content type is not image/* are treated as absent.
func (s *ImageService) Open(ctx context.Context, filename string) (io.ReadCloser, *model.BlobFile, error) {
	rc, bf, err := s.store.OpenReadStream(ctx, filename)
	if err != nil {
		return nil, nil, err
	}
	if !bf.IsImage() {
		_ = rc.Close()

		return nil, nil, blob.ErrNotFound
	}

	return rc, bf, nil
}

// Delete removes one stored image by filename.
func (s *ImageService) Delete(ctx context.Context, filename string) error {
	bf, err := s.store.FindByFilename(ctx, filename)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, bf.ID); err != nil {
		return err
	}

	nlog.Logger().Info().Str("filename", filename).Msg("image deleted")

	return nil
}

// List returns metadata for every stored image, newest first. Non-image
// blobs are filtered out.
func (s *ImageService) List(ctx context.Context) ([]types.ImageInfo, error) {
	blobs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	infos := make([]types.ImageInfo, 0, len(blobs))
	for i := range blobs {
		if !blobs[i].IsImage() {
			continue
		}
		infos = append(infos, *toImageInfo(&blobs[i]))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].UploadDate > infos[j].UploadDate })

	return infos, nil
}

func toImageInfo(bf *model.BlobFile) *types.ImageInfo {
	return &types.ImageInfo{
		FileID:       bf.ID,
		Filename:     bf.Filename,
		OriginalName: bf.OriginalName,
		Size:         bf.Size,
		Hash:         bf.Hash,
		ContentType:  bf.ContentType,
		UploadDate:   bf.UploadDate.UTC().Format(time.RFC3339),
		ImageURL:     ImageURLPrefix + bf.Filename,
	}
}
