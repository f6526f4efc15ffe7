package types

// ImageInfo is the public view of one stored image, returned by the upload
// and list endpoints. ImageURL is synthesized from the stored filename.
type ImageInfo struct {
	FileID       string `json:"fileId"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Hash         string `json:"hash,omitempty"`
	ContentType  string `json:"contentType"`
	UploadDate   string `json:"uploadDate,omitempty"`
	ImageURL     string `json:"imageUrl"`
}
