package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/greengivers/nursery/pkg/internal/model"
)

// MemoryStore keeps blobs in process memory. Development and tests only;
// nothing survives a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	byName  map[string]*memoryBlob
	counter int64
}

type memoryBlob struct {
	meta model.BlobFile
	data []byte
}

// NewMemory creates an empty in-memory blob store.
func NewMemory() *MemoryStore {
	return &MemoryStore{byName: make(map[string]*memoryBlob)}
}

func (s *MemoryStore) Put(ctx context.Context, r io.Reader, originalName, contentType string) (*model.BlobFile, error) {
	// Buffer first: a failed read must not leave a retrievable entry.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filename := NewFilename(originalName)
	s.counter++

	meta := model.BlobFile{
		ID:           fmt.Sprintf("mem-%d", s.counter),
		Filename:     filename,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         int64(len(data)),
		Hash:         fmt.Sprintf("%016x", xxhash.Sum64(data)),
		UploadDate:   time.Now().UTC(),
	}

	s.byName[filename] = &memoryBlob{meta: meta, data: data}

	return &meta, nil
}

func (s *MemoryStore) FindByFilename(ctx context.Context, filename string) (*model.BlobFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byName[filename]
	if !ok {
		return nil, ErrNotFound
	}

	meta := b.meta

	return &meta, nil
}

func (s *MemoryStore) OpenReadStream(ctx context.Context, filename string) (io.ReadCloser, *model.BlobFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byName[filename]
	if !ok {
		return nil, nil, ErrNotFound
	}

	meta := b.meta

	return io.NopCloser(bytes.NewReader(b.data)), &meta, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, b := range s.byName {
		if b.meta.ID == id {
			delete(s.byName, name)
			return nil
		}
	}

	return ErrNotFound
}

func (s *MemoryStore) List(ctx context.Context) ([]model.BlobFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.BlobFile, 0, len(s.byName))
	for _, b := range s.byName {
		out = append(out, b.meta)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.Before(out[j].UploadDate) })

	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

// Len reports the number of stored blobs.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byName)
}
