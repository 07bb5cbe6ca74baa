package cartcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishitrebant/SoleConnect/models"
	"github.com/rishitrebant/SoleConnect/storage"
)

func testSetup(t *testing.T) (*gin.Engine, *storage.CartStore, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	kv, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	store := storage.NewCartStore(kv)

	r := gin.New()
	r.GET("/cart", GetCart(store))
	r.DELETE("/cart", ClearCart(store))
	r.DELETE("/cart/:index", DeleteCartItem(store))
	return r, store, dir
}

func do(r *gin.Engine, method, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	r.ServeHTTP(rec, req)
	return rec
}

func entry(productID int, price int64) models.CartEntry {
	return models.CartEntry{
		ProductSnapshot: models.ProductSnapshot{ProductID: productID, Brand: "Nike", Name: "AJ1"},
		Size:            9,
		Price:           decimal.NewFromInt(price),
	}
}

func TestGetCart(t *testing.T) {
	r, store, _ := testSetup(t)
	require.NoError(t, store.Add(entry(1, 850)))
	require.NoError(t, store.Add(entry(1, 850)))

	rec := do(r, http.MethodGet, "/cart")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int     `json:"count"`
		Total float64 `json:"total,string"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1700.0, resp.Total)
}

func TestGetCartCorruptPayload(t *testing.T) {
	r, _, dir := testSetup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.CartNamespace+".json"), []byte("{broken"), 0o644))

	rec := do(r, http.MethodGet, "/cart")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 0, resp.Count, "corrupt storage serves as an empty cart")
}

func TestDeleteCartItem(t *testing.T) {
	r, store, _ := testSetup(t)
	require.NoError(t, store.Add(entry(1, 850)))
	require.NoError(t, store.Add(entry(2, 500)))

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/cart/0").Code)
	require.Len(t, store.List(), 1)
	assert.Equal(t, 2, store.List()[0].ProductID)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/cart/5").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, "/cart/abc").Code)
}

func TestClearCart(t *testing.T) {
	r, store, _ := testSetup(t)
	require.NoError(t, store.Add(entry(1, 850)))

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/cart").Code)
	assert.Empty(t, store.List())
}
