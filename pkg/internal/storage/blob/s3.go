package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/cespare/xxhash/v2"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/greengivers/nursery/pkg/configs"
	"github.com/greengivers/nursery/pkg/internal/model"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// S3Store stores blobs in an S3-compatible bucket. The blob identifier equals
// the object key (the generated filename).
type S3Store struct {
	client *minio.Client
	bucket string
}

// NewS3 initializes the MinIO client and ensures the bucket exists.
func NewS3(ctx context.Context, cfg *configs.BlobConfig) (*S3Store, error) {
	s3cfg := cfg.S3

	endpoint := s3cfg.Endpoint
	// allow a full scheme endpoint (http:// or https://)
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			s3cfg.UseSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s3cfg.AccessKeyID, s3cfg.SecretAccessKey, ""),
		Secure: s3cfg.UseSSL,
		Region: s3cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("nursery", configs.AppVersion)

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: s3cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	nlog.Logger().Info().Str("endpoint", s3cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("s3 blob store ready")

	return &S3Store{client: cli, bucket: cfg.Bucket}, nil
}

func (s *S3Store) Put(ctx context.Context, r io.Reader, originalName, contentType string) (*model.BlobFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	filename := NewFilename(originalName)
	hash := fmt.Sprintf("%016x", xxhash.Sum64(data))

	info, err := s.client.PutObject(ctx, s.bucket, filename, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"Original-Name": originalName,
			"Content-Hash":  hash,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put %s: %w", filename, err)
	}

	return &model.BlobFile{
		ID:           filename,
		Filename:     filename,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         info.Size,
		Hash:         hash,
		UploadDate:   info.LastModified,
	}, nil
}

func (s *S3Store) FindByFilename(ctx context.Context, filename string) (*model.BlobFile, error) {
	info, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("s3 stat %s: %w", filename, err)
	}

	bf := statToModel(filename, info)

	return &bf, nil
}

func (s *S3Store) OpenReadStream(ctx context.Context, filename string) (io.ReadCloser, *model.BlobFile, error) {
	// StatObject first: GetObject defers the request until the first read, so
	// absence would otherwise only surface mid-stream.
	info, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil, ErrNotFound
		}

		return nil, nil, fmt.Errorf("s3 stat %s: %w", filename, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("s3 get %s: %w", filename, err)
	}

	bf := statToModel(filename, info)

	return obj, &bf, nil
}

func (s *S3Store) Delete(ctx context.Context, id string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, id, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrNotFound
		}

		return fmt.Errorf("s3 stat %s: %w", id, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s3 delete %s: %w", id, err)
	}

	return nil
}

func (s *S3Store) List(ctx context.Context) ([]model.BlobFile, error) {
	var out []model.BlobFile

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("s3 list: %w", obj.Err)
		}

		info, err := s.client.StatObject(ctx, s.bucket, obj.Key, minio.StatObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("s3 stat %s: %w", obj.Key, err)
		}

		out = append(out, statToModel(obj.Key, info))
	}

	return out, nil
}

func (s *S3Store) Close() error { return nil }

func statToModel(filename string, info minio.ObjectInfo) model.BlobFile {
	return model.BlobFile{
		ID:           filename,
		Filename:     filename,
		OriginalName: info.UserMetadata["Original-Name"],
		ContentType:  info.ContentType,
		Size:         info.Size,
		Hash:         info.UserMetadata["Content-Hash"],
		UploadDate:   info.LastModified,
	}
}
