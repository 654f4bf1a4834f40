package routes

import (
	"net/http"

	"storefront/web"
)

// PageHandler serves the embedded storefront page. It is the only non-JSON
// route.
func PageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(web.IndexHTML)
	}
}
