package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// BlobDriver selects the blob store backend.
type BlobDriver string

const (
	// BlobGridFS stores images in a MongoDB GridFS bucket.
	BlobGridFS BlobDriver = "gridfs"
	// BlobS3 stores images in an S3-compatible bucket.
	BlobS3 BlobDriver = "s3"
	// BlobMemory keeps images in process memory. Development and tests only.
	BlobMemory BlobDriver = "memory"
)

const (
	DefaultBlobDriver = BlobGridFS
	DefaultBlobBucket = "plantImages" // GridFS bucket / S3 bucket name

	DefaultS3Endpoint        = "localhost:9000"
	DefaultS3AccessKeyID     = "minioadmin"
	DefaultS3SecretAccessKey = "minioadmin"
	DefaultS3UseSSL          = false
	DefaultS3Region          = "us-east-1"
)

// BlobConfig holds the blob store configuration.
type BlobConfig struct {
	Driver BlobDriver `mapstructure:"driver" rule:"oneof=gridfs s3 memory"`
	Bucket string     `mapstructure:"bucket" rule:"required"`
	S3     S3Config   `mapstructure:"s3"`
}

// S3Config holds S3/MinIO connection options, used when Driver is "s3".
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Region          string `mapstructure:"region"`
}

// GetEndpointURL returns the full S3 endpoint URL.
func (c *S3Config) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// setDefaults applies the blob store configuration defaults.
func (c *BlobConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("blob.driver", string(DefaultBlobDriver))
	v.SetDefault("blob.bucket", DefaultBlobBucket)
	v.SetDefault("blob.s3.endpoint", DefaultS3Endpoint)
	v.SetDefault("blob.s3.access_key_id", DefaultS3AccessKeyID)
	v.SetDefault("blob.s3.secret_access_key", DefaultS3SecretAccessKey)
	v.SetDefault("blob.s3.use_ssl", DefaultS3UseSSL)
	v.SetDefault("blob.s3.region", DefaultS3Region)
}
