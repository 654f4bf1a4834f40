package routes

import (
	"net/http"

	"storefront/internal/catalog"
)

type CatalogResponse struct {
	Catalog  []catalog.Product        `json:"catalog"`
	Shipping []catalog.ShippingOption `json:"shipping"`
	Payments []catalog.PaymentOption  `json:"payments"`
	Currency string                   `json:"currency"`
}

func CatalogHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CatalogResponse{
			Catalog:  cat.Products(),
			Shipping: cat.ShippingOptions(),
			Payments: cat.PaymentOptions(),
			Currency: cat.Currency(),
		})
	}
}
