package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, `{
		"currency": "JPY",
		"products": [
			{"id": "M-01", "name": "Matcha Ceremonial", "price": 3200},
			{"id": "M-02", "name": "Genmaicha", "price": 1100}
		],
		"shipping": [{"id": "S-EMS", "name": "EMS", "price": 900}],
		"payments": [{"id": "P-CARD", "name": "Credit Card"}]
	}`)

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "JPY", c.Currency())
	assert.Len(t, c.Products(), 2)

	p, ok := c.ProductByID("M-01")
	require.True(t, ok)
	assert.Equal(t, int64(3200), p.Price)

	s, ok := c.ShippingByID("S-EMS")
	require.True(t, ok)
	assert.Equal(t, int64(900), s.Price)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog file")
}

func TestLoadFileBadJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"currency": "TWD", "products": [`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog file")
}

func TestLoadFileInvalidCatalog(t *testing.T) {
	path := writeCatalogFile(t, `{
		"currency": "TWD",
		"products": [
			{"id": "A01", "name": "Oolong", "price": 100},
			{"id": "A01", "name": "Oolong Again", "price": 200}
		]
	}`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id")
}
