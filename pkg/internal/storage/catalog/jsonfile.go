package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/greengivers/nursery/pkg/internal/model"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// JSONFileStore persists the whole catalog as one JSON document, rewritten on
// every mutation. All mutations serialize behind one mutex and land via a
// temp file + rename, so concurrent writers cannot interleave partial writes.
type JSONFileStore struct {
	mu   chan struct{} // single-writer token
	path string
	doc  catalogDoc
}

type catalogDoc struct {
	Plants     []model.Product `json:"plants"`
	Categories []string        `json:"categories"`
	Metadata   docMetadata     `json:"metadata"`
}

type docMetadata struct {
	Version         string    `json:"version"`
	LastUpdated     time.Time `json:"lastUpdated"`
	TotalPlants     int       `json:"totalPlants"`
	TotalCategories int       `json:"totalCategories"`
}

// NewJSONFile loads (or initializes) the catalog document at path.
func NewJSONFile(path string) (*JSONFileStore, error) {
	s := &JSONFileStore{
		mu:   make(chan struct{}, 1),
		path: path,
		doc: catalogDoc{
			Plants:     []model.Product{},
			Categories: model.Categories,
		},
	}
	s.mu <- struct{}{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := sonic.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// first run, start empty
	default:
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	nlog.Logger().Info().Str("path", path).Int("plants", len(s.doc.Plants)).Msg("jsonfile catalog ready")

	return s, nil
}

// lock acquires the writer token, honoring context cancellation.
func (s *JSONFileStore) lock(ctx context.Context) error {
	select {
	case <-s.mu:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *JSONFileStore) unlock() {
	s.mu <- struct{}{}
}

// persist rewrites the whole document. Caller holds the lock.
func (s *JSONFileStore) persist() error {
	s.doc.Metadata = docMetadata{
		Version:         "1.0",
		LastUpdated:     time.Now().UTC(),
		TotalPlants:     len(s.doc.Plants),
		TotalCategories: len(s.doc.Categories),
	}

	data, err := sonic.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}

	return nil
}

func (s *JSONFileStore) List(ctx context.Context, f Filter) ([]model.Product, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	search := strings.ToLower(f.Search)

	// never nil: an empty result still serializes as a JSON array
	out := []model.Product{}

	for i := range s.doc.Plants {
		p := s.doc.Plants[i]

		if p.IsActive != f.Active() {
			continue
		}

		if f.Category != "" && p.Category != f.Category {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (s *JSONFileStore) Get(ctx context.Context, id string) (*model.Product, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	for i := range s.doc.Plants {
		if s.doc.Plants[i].ID == id {
			p := s.doc.Plants[i]
			return &p, nil
		}
	}

	return nil, ErrNotFound
}

func (s *JSONFileStore) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	now := time.Now().UTC()

	created := *p
	created.ID = bson.NewObjectID().Hex()
	created.CreatedAt = now
	created.UpdatedAt = now

	s.doc.Plants = append(s.doc.Plants, created)

	if err := s.persist(); err != nil {
		s.doc.Plants = s.doc.Plants[:len(s.doc.Plants)-1]
		return nil, err
	}

	return &created, nil
}

func (s *JSONFileStore) Update(ctx context.Context, id string, p *model.Product) (*model.Product, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	for i := range s.doc.Plants {
		if s.doc.Plants[i].ID != id {
			continue
		}

		prev := s.doc.Plants[i]

		updated := *p
		updated.ID = id
		updated.CreatedAt = prev.CreatedAt
		updated.UpdatedAt = time.Now().UTC()

		s.doc.Plants[i] = updated

		if err := s.persist(); err != nil {
			s.doc.Plants[i] = prev
			return nil, err
		}

		return &updated, nil
	}

	return nil, ErrNotFound
}

func (s *JSONFileStore) Delete(ctx context.Context, id string) (*model.Product, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	for i := range s.doc.Plants {
		if s.doc.Plants[i].ID != id {
			continue
		}

		deleted := s.doc.Plants[i]
		s.doc.Plants = append(s.doc.Plants[:i], s.doc.Plants[i+1:]...)

		if err := s.persist(); err != nil {
			s.doc.Plants = append(s.doc.Plants[:i], append([]model.Product{deleted}, s.doc.Plants[i:]...)...)
			return nil, err
		}

		return &deleted, nil
	}

	return nil, ErrNotFound
}

func (s *JSONFileStore) Stats(ctx context.Context) (*Stats, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	stats := &Stats{
		TotalProducts: len(s.doc.Plants),
		CategoryStats: []GroupCount{},
		BadgeStats:    []GroupCount{},
	}

	categories := map[string]int{}
	badges := map[string]int{}

	for i := range s.doc.Plants {
		p := &s.doc.Plants[i]

		if !p.IsActive {
			continue
		}

		stats.ActiveProducts++
		categories[p.Category]++

		if p.Badge != "" {
			badges[p.Badge]++
		}
	}

	stats.InactiveProducts = stats.TotalProducts - stats.ActiveProducts
	stats.CategoryStats = sortedCounts(categories)
	stats.BadgeStats = sortedCounts(badges)

	return stats, nil
}

func (s *JSONFileStore) Close() error { return nil }

// sortedCounts renders a count map as buckets sorted by descending count,
// ties broken by key for stable output.
func sortedCounts(m map[string]int) []GroupCount {
	out := make([]GroupCount, 0, len(m))
	for k, v := range m {
		out = append(out, GroupCount{Key: k, Count: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Key < out[j].Key
	})

	return out
}
