package middleware

import (
	"encoding/json"
	"net/http"

	"storefront/internal/logging"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := r.Context()
				logging.Error(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)

				span := trace.SpanFromContext(ctx)
				if span.IsRecording() {
					if err, ok := rec.(error); ok {
						span.RecordError(err)
					}
					span.SetStatus(codes.Error, "panic recovered")
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"ok":      false,
					"message": "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
