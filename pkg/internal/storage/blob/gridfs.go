package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/greengivers/nursery/pkg/internal/model"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// GridFSStore stores blobs in a MongoDB GridFS bucket.
type GridFSStore struct {
	bucket *mongo.GridFSBucket
}

// gridfsFile mirrors the fs.files document shape.
type gridfsFile struct {
	ID         bson.ObjectID `bson:"_id"`
	Filename   string        `bson:"filename"`
	Length     int64         `bson:"length"`
	UploadDate time.Time     `bson:"uploadDate"`
	Metadata   struct {
		OriginalName string `bson:"originalName"`
		ContentType  string `bson:"contentType"`
		Hash         string `bson:"hash"`
	} `bson:"metadata"`
}

func (f *gridfsFile) toModel() model.BlobFile {
	return model.BlobFile{
		ID:           f.ID.Hex(),
		Filename:     f.Filename,
		OriginalName: f.Metadata.OriginalName,
		ContentType:  f.Metadata.ContentType,
		Size:         f.Length,
		Hash:         f.Metadata.Hash,
		UploadDate:   f.UploadDate,
	}
}

// NewGridFS opens the named GridFS bucket on the given database.
func NewGridFS(db *mongo.Database, bucketName string) (*GridFSStore, error) {
	bucket := db.GridFSBucket(options.GridFSBucket().SetName(bucketName))

	nlog.Logger().Info().Str("bucket", bucketName).Msg("gridfs blob store ready")

	return &GridFSStore{bucket: bucket}, nil
}

// Put buffers the stream, hashes it and uploads it in one shot. The driver
// aborts the upload on a failed transfer, so no partial file becomes
// retrievable.
func (s *GridFSStore) Put(ctx context.Context, r io.Reader, originalName, contentType string) (*model.BlobFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	filename := NewFilename(originalName)
	hash := fmt.Sprintf("%016x", xxhash.Sum64(data))
	now := time.Now().UTC()

	opts := options.GridFSUpload().SetMetadata(bson.D{
		{Key: "originalName", Value: originalName},
		{Key: "contentType", Value: contentType},
		{Key: "hash", Value: hash},
	})

	id, err := s.bucket.UploadFromStream(ctx, filename, bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("gridfs upload %s: %w", filename, err)
	}

	return &model.BlobFile{
		ID:           id.Hex(),
		Filename:     filename,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         int64(len(data)),
		Hash:         hash,
		UploadDate:   now,
	}, nil
}

// FindByFilename looks up one fs.files document by filename.
func (s *GridFSStore) FindByFilename(ctx context.Context, filename string) (*model.BlobFile, error) {
	cursor, err := s.bucket.Find(ctx, bson.D{{Key: "filename", Value: filename}})
	if err != nil {
		return nil, fmt.Errorf("gridfs find %s: %w", filename, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("gridfs find %s: %w", filename, err)
		}

		return nil, ErrNotFound
	}

	var f gridfsFile
	if err := cursor.Decode(&f); err != nil {
		return nil, fmt.Errorf("gridfs decode %s: %w", filename, err)
	}

	bf := f.toModel()

	return &bf, nil
}

// OpenReadStream opens a download stream by filename. A race with a
// concurrent delete surfaces as a stream error, not a pre-check.
func (s *GridFSStore) OpenReadStream(ctx context.Context, filename string) (io.ReadCloser, *model.BlobFile, error) {
	ds, err := s.bucket.OpenDownloadStreamByName(ctx, filename)
	if err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return nil, nil, ErrNotFound
		}

		return nil, nil, fmt.Errorf("gridfs open %s: %w", filename, err)
	}

	file := ds.GetFile()

	bf := model.BlobFile{
		ID:         objectIDHex(file.ID),
		Filename:   file.Name,
		Size:       file.Length,
		UploadDate: file.UploadDate,
	}

	if len(file.Metadata) > 0 {
		var meta struct {
			OriginalName string `bson:"originalName"`
			ContentType  string `bson:"contentType"`
			Hash         string `bson:"hash"`
		}
		if err := bson.Unmarshal(file.Metadata, &meta); err == nil {
			bf.OriginalName = meta.OriginalName
			bf.ContentType = meta.ContentType
			bf.Hash = meta.Hash
		}
	}

	return ds, &bf, nil
}

// Delete removes one blob by its hex ObjectID.
func (s *GridFSStore) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	if err := s.bucket.Delete(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("gridfs delete %s: %w", id, err)
	}

	return nil
}

// List returns every fs.files document in the bucket.
func (s *GridFSStore) List(ctx context.Context) ([]model.BlobFile, error) {
	cursor, err := s.bucket.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("gridfs list: %w", err)
	}
	defer cursor.Close(ctx)

	var files []gridfsFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("gridfs list decode: %w", err)
	}

	out := make([]model.BlobFile, 0, len(files))
	for i := range files {
		out = append(out, files[i].toModel())
	}

	return out, nil
}

// Close is a no-op; the underlying client is owned by the storage manager.
func (s *GridFSStore) Close() error { return nil }

// objectIDHex renders a GridFS file ID, which the driver exposes untyped.
func objectIDHex(id any) string {
	if oid, ok := id.(bson.ObjectID); ok {
		return oid.Hex()
	}

	return fmt.Sprintf("%v", id)
}
