package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"regexp"
	"strings"
	"testing"

	"github.com/greengivers/nursery/pkg/internal/service"
	"github.com/greengivers/nursery/pkg/internal/storage/blob"
)

// makeFileHeader builds a parsed multipart file header the way gin hands it
// to the upload handler.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image"][0]
}

func TestImageUploadAndOpen(t *testing.T) {
	store := blob.NewMemory()
	svc := service.NewImageService(&blob.Client{Store: store})
	ctx := context.Background()
	content := []byte("fake png bytes")

	info, err := svc.Upload(ctx, makeFileHeader(t, "rose.png", "image/png", content))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if info.OriginalName != "rose.png" {
		t.Errorf("expected original name preserved, got %q", info.OriginalName)
	}
	if info.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), info.Size)
	}
	if !strings.HasPrefix(info.ImageURL, service.ImageURLPrefix) {
		t.Errorf("expected synthesized URL under %s, got %q", service.ImageURLPrefix, info.ImageURL)
	}
	if info.Hash == "" {
		t.Error("expected a content hash")
	}

	rc, bf, err := svc.Open(ctx, info.Filename)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Error("fetched bytes differ from uploaded bytes")
	}
	if bf.ContentType != "image/png" {
		t.Errorf("expected image/png, got %q", bf.ContentType)
	}
}

func TestImageUploadRejectsNonImage(t *testing.T) {
	store := blob.NewMemory()
	svc := service.NewImageService(&blob.Client{Store: store})

	_, err := svc.Upload(context.Background(), makeFileHeader(t, "notes.txt", "text/plain", []byte("plain text")))
	if !errors.Is(err, service.ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}

	if store.Len() != 0 {
		t.Errorf("rejected upload stored %d blobs", store.Len())
	}
}

func TestImageUploadRejectsOversized(t *testing.T) {
	store := blob.NewMemory()
	svc := service.NewImageService(&blob.Client{Store: store})

	// The declared size alone must trigger the rejection, no bytes read.
	fh := &multipart.FileHeader{
		Filename: "huge.png",
		Size:     service.MaxImageSize + 1,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}

	_, err := svc.Upload(context.Background(), fh)
	if !errors.Is(err, service.ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge, got %v", err)
	}

	if store.Len() != 0 {
		t.Errorf("rejected upload stored %d blobs", store.Len())
	}
}

func TestImageOpenRejectsNonImageBlob(t *testing.T) {
	store := blob.NewMemory()
	svc := service.NewImageService(&blob.Client{Store: store})
	ctx := context.Background()

	// Planted directly in the store, bypassing upload validation.
	bf, err := store.Put(ctx, strings.NewReader("not an image"), "sneaky.txt", "text/plain")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, _, err := svc.Open(ctx, bf.Filename); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("non-image blob should read as absent, got %v", err)
	}
}

func TestImageDelete(t *testing.T) {
	store := blob.NewMemory()
	svc := service.NewImageService(&blob.Client{Store: store})
	ctx := context.Background()

	info, err := svc.Upload(ctx, makeFileHeader(t, "rose.png", "image/png", []byte("bytes")))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if err := svc.Delete(ctx, info.Filename); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Len() != 0 {
		t.Error("delete left the blob behind")
	}

	if err := svc.Delete(ctx, info.Filename); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestImageListFiltersNonImages(t *testing.T) {
	store := blob.NewMemory()
	svc := service.NewImageService(&blob.Client{Store: store})
	ctx := context.Background()

	if _, err := store.Put(ctx, strings.NewReader("a"), "a.png", "image/png"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := store.Put(ctx, strings.NewReader("b"), "b.txt", "text/plain"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	infos, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(infos) != 1 {
		t.Fatalf("expected the non-image blob to be filtered, got %d entries", len(infos))
	}
	if infos[0].ContentType != "image/png" {
		t.Errorf("wrong survivor: %+v", infos[0])
	}
}

func TestImageBytesPattern(t *testing.T) {
	re := regexp.MustCompile(service.ImageBytesPattern)

	for _, name := range []string{blob.NewFilename("photo.PNG"), blob.NewFilename("raw")} {
		if p := service.ImageURLPrefix + name; !re.MatchString(p) {
			t.Errorf("expected %s to match", p)
		}
	}

	for _, p := range []string{
		service.ImageURLPrefix + "upload",
		"/api/images",
		"/api/products",
	} {
		if re.MatchString(p) {
			t.Errorf("expected %s not to match", p)
		}
	}
}
