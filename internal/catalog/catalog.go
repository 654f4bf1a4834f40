// Package catalog holds the server-side product, shipping and payment tables.
// The catalog is the only source of prices; nothing submitted by a client is
// ever read as a price.
package catalog

import (
	"fmt"

	"golang.org/x/text/currency"
)

type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type ShippingOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type PaymentOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is immutable after construction. Prices are integer minor units of
// the catalog currency.
type Catalog struct {
	currency    string
	products    []Product
	shipping    []ShippingOption
	payments    []PaymentOption
	productIdx  map[string]int
	shippingIdx map[string]int
	paymentIdx  map[string]int
}

func New(currencyCode string, products []Product, shipping []ShippingOption, payments []PaymentOption) (*Catalog, error) {
	if _, err := currency.ParseISO(currencyCode); err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}

	c := &Catalog{
		currency:    currencyCode,
		products:    append([]Product(nil), products...),
		shipping:    append([]ShippingOption(nil), shipping...),
		payments:    append([]PaymentOption(nil), payments...),
		productIdx:  make(map[string]int, len(products)),
		shippingIdx: make(map[string]int, len(shipping)),
		paymentIdx:  make(map[string]int, len(payments)),
	}

	for i, p := range c.products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("product %d: id and name are required", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %s: negative price", p.ID)
		}
		if _, dup := c.productIdx[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		c.productIdx[p.ID] = i
	}
	for i, s := range c.shipping {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("shipping option %d: id and name are required", i)
		}
		if s.Price < 0 {
			return nil, fmt.Errorf("shipping option %s: negative price", s.ID)
		}
		if _, dup := c.shippingIdx[s.ID]; dup {
			return nil, fmt.Errorf("duplicate shipping id %s", s.ID)
		}
		c.shippingIdx[s.ID] = i
	}
	for i, p := range c.payments {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("payment option %d: id and name are required", i)
		}
		if _, dup := c.paymentIdx[p.ID]; dup {
			return nil, fmt.Errorf("duplicate payment id %s", p.ID)
		}
		c.paymentIdx[p.ID] = i
	}

	return c, nil
}

func (c *Catalog) Currency() string {
	return c.currency
}

func (c *Catalog) Products() []Product {
	return c.products
}

func (c *Catalog) ShippingOptions() []ShippingOption {
	return c.shipping
}

func (c *Catalog) PaymentOptions() []PaymentOption {
	return c.payments
}

func (c *Catalog) ProductByID(id string) (Product, bool) {
	i, ok := c.productIdx[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) ShippingByID(id string) (ShippingOption, bool) {
	i, ok := c.shippingIdx[id]
	if !ok {
		return ShippingOption{}, false
	}
	return c.shipping[i], true
}

func (c *Catalog) PaymentByID(id string) (PaymentOption, bool) {
	i, ok := c.paymentIdx[id]
	if !ok {
		return PaymentOption{}, false
	}
	return c.payments[i], true
}
