package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

type catalogFile struct {
	Currency string           `json:"currency"`
	Products []Product        `json:"products"`
	Shipping []ShippingOption `json:"shipping"`
	Payments []PaymentOption  `json:"payments"`
}

// LoadFile reads a catalog from a JSON file. The file replaces the built-in
// tables entirely; it is validated the same way.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	c, err := New(f.Currency, f.Products, f.Shipping, f.Payments)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
