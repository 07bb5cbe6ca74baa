package catalog

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "products": [
    {
      "id": 1,
      "brand": "Nike",
      "name": "Air Jordan 1",
      "price": 12999,
      "originalPrice": 15999,
      "images": ["aj1.jpg"],
      "sizes": [7, 8, 9, 10],
      "vendors": [
        {"name": "SneakerVault", "price": 13499, "rating": 4.8, "verified": true},
        {"name": "KicksHub", "price": 12999, "rating": 4.6, "verified": true}
      ]
    },
    {
      "id": 2,
      "brand": "Adidas",
      "name": "Samba OG",
      "price": 8999,
      "images": ["samba.jpg"],
      "sizes": [6, 7, 8],
      "vendors": []
    }
  ]
}`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	store, err := Load(writeCatalogFile(t, sampleCatalog))

	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	p, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Air Jordan 1", p.Name)
	assert.Len(t, p.Vendors, 2)
}

func TestLoadMissingFile(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	// The degraded store is still usable, just empty.
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len())
	_, lookupErr := store.GetByID(1)
	assert.ErrorIs(t, lookupErr, ErrProductNotFound)
}

func TestLoadMalformed(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "<html>oops</html>"},
		{name: "wrong shape", content: `{"items": []}`},
		{name: "products not an array", content: `{"products": 7}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Load(writeCatalogFile(t, tc.content))
			assert.ErrorIs(t, err, ErrMalformedData)
			require.NotNil(t, store)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	store, err := Load(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestLoadFromHTTPRetriesOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	store, err := Load(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetByBrand(t *testing.T) {
	store, err := Load(writeCatalogFile(t, sampleCatalog))
	require.NoError(t, err)

	assert.Len(t, store.GetByBrand("nike"), 1, "brand match is case-insensitive")
	assert.Len(t, store.GetByBrand("NIKE"), 1)
	assert.Empty(t, store.GetByBrand("Nik"), "match is exact, not prefix")
}

func TestFeatured(t *testing.T) {
	store, err := Load(writeCatalogFile(t, sampleCatalog))
	require.NoError(t, err)

	assert.Len(t, store.Featured(1), 1)
	assert.Equal(t, 1, store.Featured(1)[0].ID, "catalog order is preserved")
	assert.Len(t, store.Featured(0), 2, "default limit is capped by catalog size")
	assert.Len(t, store.Featured(10), 2)
}
