package wishlistcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishitrebant/SoleConnect/models"
	"github.com/rishitrebant/SoleConnect/storage"
)

func testSetup(t *testing.T) (*gin.Engine, *storage.WishlistStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	store := storage.NewWishlistStore(kv)

	r := gin.New()
	r.GET("/wishlist", GetWishlist(store))
	r.DELETE("/wishlist/:product_id/:size", DeleteWishlistEntry(store))
	return r, store
}

func do(r *gin.Engine, method, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetWishlist(t *testing.T) {
	r, store := testSetup(t)
	require.NoError(t, store.Add(models.WishlistEntry{
		ProductSnapshot: models.ProductSnapshot{ProductID: 1, Brand: "Nike", Name: "AJ1"},
		Size:            9,
	}))

	rec := do(r, http.MethodGet, "/wishlist")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int `json:"count"`
		Entries []struct {
			ProductID int `json:"product_id"`
			Size      int `json:"size"`
		} `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 9, resp.Entries[0].Size)
}

func TestDeleteWishlistEntry(t *testing.T) {
	r, store := testSetup(t)
	require.NoError(t, store.Add(models.WishlistEntry{
		ProductSnapshot: models.ProductSnapshot{ProductID: 1, Brand: "Nike", Name: "AJ1"},
		Size:            9,
	}))

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/wishlist/1/10").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, "/wishlist/abc/9").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, "/wishlist/1/big").Code)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/wishlist/1/9").Code)
	assert.False(t, store.Contains(1, 9))
}
