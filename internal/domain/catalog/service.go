// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Source loads the product snapshot from its backing store.
type Source interface {
	LoadProducts(ctx context.Context) ([]Product, error)
}

// gormSource loads active products (with categories) from Postgres.
type gormSource struct {
	db *gorm.DB
}

// NewGormSource creates a Source backed by a gorm database handle.
func NewGormSource(db *gorm.DB) Source {
	return &gormSource{db: db}
}

func (s *gormSource) LoadProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// Service holds the in-memory product snapshot. Products are loaded once;
// after the load completes every lookup is served from memory.
type Service struct {
	source Source
	logger *logrus.Logger

	mu      sync.Mutex
	loading bool
	loaded  bool
	byID    map[uint]Product
	ordered []Product
	ready   chan struct{}
	onReady []func()
}

// NewService creates a new catalog service
func NewService(source Source, logger *logrus.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// LoadProducts starts the one-time snapshot load and registers onReady to be
// invoked once the catalog becomes available. If the catalog is already
// loaded, onReady is invoked immediately. A nil onReady only triggers the
// load.
func (s *Service) LoadProducts(onReady func()) {
	s.mu.Lock()

	if s.loaded {
		s.mu.Unlock()
		if onReady != nil {
			onReady()
		}
		return
	}

	if onReady != nil {
		s.onReady = append(s.onReady, onReady)
	}

	if s.loading {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()

	go s.load()
}

// OnReady registers a callback invoked once the catalog is available.
func (s *Service) OnReady(fn func()) {
	s.LoadProducts(fn)
}

func (s *Service) load() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := s.source.LoadProducts(ctx)
	if err != nil {
		// Leave the catalog not-ready; a later LoadProducts call may retry.
		s.logger.WithError(err).Error("catalog load failed")
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return
	}

	byID := make(map[uint]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.mu.Lock()
	s.byID = byID
	s.ordered = products
	s.loaded = true
	s.loading = false
	callbacks := s.onReady
	s.onReady = nil
	close(s.ready)
	s.mu.Unlock()

	s.logger.WithField("products", len(products)).Info("catalog loaded")

	for _, fn := range callbacks {
		fn()
	}
}

// Ready reports whether the product snapshot has been loaded.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// ReadyCh returns a channel closed when the snapshot becomes available.
func (s *Service) ReadyCh() <-chan struct{} {
	return s.ready
}

// ProductByID looks up a product in the snapshot.
func (s *Service) ProductByID(id uint) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	return p, ok
}

// Products returns the snapshot in stable ID order.
func (s *Service) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.ordered))
	copy(out, s.ordered)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Suggest returns up to limit products whose title contains the query,
// case-insensitively. An empty query returns no suggestions.
func (s *Service) Suggest(query string, limit int) []Suggestion {
	q := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(q) == 0 || limit <= 0 {
		return nil
	}

	var suggestions []Suggestion
	for _, p := range s.Products() {
		if indexFold([]rune(p.Title), q) < 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			ProductID:       p.ID,
			Title:           p.Title,
			HighlightedHTML: highlight(p.Title, q),
		})
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}

// highlight wraps every case-insensitive occurrence of the lowercased query
// runes q in title with <mark> tags, escaping everything else. Matching works
// on runes: lowercasing can change a rune's encoded length, so byte offsets
// into a lowered copy of the title cannot be used to slice the original.
func highlight(title string, q []rune) string {
	var b strings.Builder
	rest := []rune(title)
	for len(rest) > 0 {
		idx := indexFold(rest, q)
		if idx < 0 {
			b.WriteString(html.EscapeString(string(rest)))
			break
		}
		b.WriteString(html.EscapeString(string(rest[:idx])))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(string(rest[idx : idx+len(q)])))
		b.WriteString("</mark>")
		rest = rest[idx+len(q):]
	}
	return b.String()
}

// indexFold returns the rune index of the first occurrence of the lowercased
// needle q in s, comparing runes after lowercasing, or -1 if there is none.
func indexFold(s, q []rune) int {
	for i := 0; i+len(q) <= len(s); i++ {
		match := true
		for j, r := range q {
			if unicode.ToLower(s[i+j]) != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
