package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()

	CatalogHandler(catalog.Default())(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp CatalogResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "TWD", resp.Currency)
	assert.NotEmpty(t, resp.Catalog)
	assert.NotEmpty(t, resp.Shipping)
	assert.NotEmpty(t, resp.Payments)

	var found bool
	for _, s := range resp.Shipping {
		if s.ID == "S-711" {
			found = true
			assert.Equal(t, int64(60), s.Price)
		}
	}
	assert.True(t, found, "S-711 missing from shipping options")
}
