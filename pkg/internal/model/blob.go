package model

import (
	"strings"
	"time"
)

// BlobFile is the stored metadata of one image blob. Filename is the public
// lookup key and is unique within the bucket; the blob behind it is immutable.
type BlobFile struct {
	ID           string    `json:"fileId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	Hash         string    `json:"hash,omitempty"`
	UploadDate   time.Time `json:"uploadDate"`
}

// IsImage reports whether the blob carries an image MIME type.
func (b *BlobFile) IsImage() bool {
	return strings.HasPrefix(b.ContentType, "image/")
}
