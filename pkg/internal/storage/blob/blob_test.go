package blob_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/greengivers/nursery/pkg/internal/storage/blob"
)

func TestNewFilename(t *testing.T) {
	a := blob.NewFilename("photo.JPG")
	b := blob.NewFilename("photo.JPG")

	if a == b {
		t.Error("two generated filenames collided")
	}

	if !strings.HasSuffix(a, ".jpg") {
		t.Errorf("expected lowercased .jpg suffix, got %q", a)
	}

	if len(a) != 32+len(".jpg") {
		t.Errorf("expected 32 hex chars plus extension, got %q", a)
	}

	if strings.Contains(a, "photo") {
		t.Errorf("original name leaked into %q", a)
	}

	noExt := blob.NewFilename("README")
	if len(noExt) != 32 {
		t.Errorf("expected bare 32 hex chars for extensionless name, got %q", noExt)
	}
}

func TestMemoryPutAndFetch(t *testing.T) {
	store := blob.NewMemory()
	ctx := context.Background()
	content := []byte("fake png bytes")

	bf, err := store.Put(ctx, bytes.NewReader(content), "rose.png", "image/png")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if bf.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), bf.Size)
	}
	if bf.OriginalName != "rose.png" {
		t.Errorf("expected original name preserved, got %q", bf.OriginalName)
	}
	if bf.Hash == "" {
		t.Error("expected a content hash")
	}

	found, err := store.FindByFilename(ctx, bf.Filename)
	if err != nil {
		t.Fatalf("FindByFilename failed: %v", err)
	}
	if found.ID != bf.ID {
		t.Errorf("expected id %q, got %q", bf.ID, found.ID)
	}

	rc, meta, err := store.OpenReadStream(ctx, bf.Filename)
	if err != nil {
		t.Fatalf("OpenReadStream failed: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Error("stream content differs from uploaded bytes")
	}
	if meta.ContentType != "image/png" {
		t.Errorf("expected image/png, got %q", meta.ContentType)
	}
}

func TestMemoryNotFound(t *testing.T) {
	store := blob.NewMemory()
	ctx := context.Background()

	if _, err := store.FindByFilename(ctx, "missing.png"); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, _, err := store.OpenReadStream(ctx, "missing.png"); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := store.Delete(ctx, "mem-999"); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	store := blob.NewMemory()
	ctx := context.Background()

	bf, err := store.Put(ctx, strings.NewReader("data"), "a.png", "image/png")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := store.Delete(ctx, bf.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if store.Len() != 0 {
		t.Errorf("expected empty store after delete, got %d entries", store.Len())
	}

	if _, err := store.FindByFilename(ctx, bf.Filename); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

// brokenReader fails partway through a transfer.
type brokenReader struct{}

func (brokenReader) Read(p []byte) (int, error) { return 0, errors.New("read failure") }

func TestMemoryFailedPutLeavesNothing(t *testing.T) {
	store := blob.NewMemory()
	ctx := context.Background()

	if _, err := store.Put(ctx, brokenReader{}, "a.png", "image/png"); err == nil {
		t.Fatal("expected Put to fail with a broken reader")
	}

	if store.Len() != 0 {
		t.Errorf("failed upload left %d retrievable entries", store.Len())
	}
}

func TestMemoryList(t *testing.T) {
	store := blob.NewMemory()
	ctx := context.Background()

	for _, name := range []string{"a.png", "b.jpg", "c.gif"} {
		if _, err := store.Put(ctx, strings.NewReader(name), name, "image/png"); err != nil {
			t.Fatalf("Put %s failed: %v", name, err)
		}
	}

	blobs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(blobs) != 3 {
		t.Errorf("expected 3 blobs, got %d", len(blobs))
	}
}
