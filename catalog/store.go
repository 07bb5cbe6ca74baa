package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rishitrebant/SoleConnect/models"
)

var (
	// ErrSourceUnavailable means the catalog document could not be fetched.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
	// ErrMalformedData means the document was fetched but lacks the
	// expected {"products": [...]} shape.
	ErrMalformedData = errors.New("catalog data malformed")
	// ErrProductNotFound is returned when an id lookup misses.
	ErrProductNotFound = errors.New("product not found")
)

// DefaultFeaturedLimit is how many products the homepage carousel shows.
const DefaultFeaturedLimit = 4

// document is the external shape of the catalog source.
type document struct {
	Products []models.Product `json:"products"`
}

// Store holds the full product catalog for a run. It is built once by Load
// and read-only afterwards; there are no update or delete operations.
type Store struct {
	products []*models.Product
	byID     map[int]*models.Product
}

// httpClient applies a fixed timeout to remote sources so a hung fetch
// cannot stall startup.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// Load reads the product catalog from a file path or an HTTP(S) URL.
// Loading never panics past this boundary: on failure the returned store
// is empty but fully usable, and the error says what degraded. Callers may
// log it and keep serving an empty catalog.
func Load(source string) (*Store, error) {
	raw, err := fetch(source)
	if err != nil {
		return empty(), fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return empty(), fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if doc.Products == nil {
		return empty(), fmt.Errorf("%w: missing products array", ErrMalformedData)
	}
	s := &Store{
		products: make([]*models.Product, 0, len(doc.Products)),
		byID:     make(map[int]*models.Product, len(doc.Products)),
	}
	for i := range doc.Products {
		p := &doc.Products[i]
		s.products = append(s.products, p)
		s.byID[p.ID] = p
	}
	return s, nil
}

func empty() *Store {
	return &Store{byID: make(map[int]*models.Product)}
}

func fetch(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err := get(source)
		if err != nil {
			// Single retry on a transient fetch failure.
			body, err = get(source)
		}
		return body, err
	}
	return os.ReadFile(source)
}

func get(url string) ([]byte, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Len reports how many products are loaded.
func (s *Store) Len() int {
	return len(s.products)
}

// All returns every product in source order.
func (s *Store) All() []*models.Product {
	out := make([]*models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID resolves a product by its identifier.
func (s *Store) GetByID(id int) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// GetByBrand returns all products whose brand matches, case-insensitively.
func (s *Store) GetByBrand(brand string) []*models.Product {
	var out []*models.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Brand, brand) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the first products in catalog order, for the homepage
// carousel. A non-positive limit falls back to the default.
func (s *Store) Featured(limit int) []*models.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > len(s.products) {
		limit = len(s.products)
	}
	out := make([]*models.Product, limit)
	copy(out, s.products[:limit])
	return out
}
