package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/checkout"
	"storefront/internal/logging"
	"storefront/internal/mailer"
	"storefront/internal/money"
	"storefront/internal/notify"
)

type OrderRequest struct {
	Items      []checkout.CartLine `json:"items"`
	ShippingID string              `json:"shippingId"`
	PaymentID  string              `json:"paymentId"`
	Buyer      checkout.Buyer      `json:"buyer"`
}

type OrderResponse struct {
	OK         bool   `json:"ok"`
	OrderID    string `json:"orderId"`
	GrandTotal int64  `json:"grandTotal"`
}

type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type OrderDeps struct {
	Engine   *checkout.Engine
	Sender   mailer.Sender
	Currency money.Currency
	MailFrom string
	MailTo   string
}

// OrderHandler accepts a cart submission, reprices it server-side and emails
// the result to the shop owner. The response only ever reveals the recomputed
// totals; SMTP details stay in the logs.
func OrderHandler(deps OrderDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if strings.TrimSpace(req.Buyer.Name) == "" || strings.TrimSpace(req.Buyer.Email) == "" {
			writeError(w, http.StatusBadRequest, "name and email are required")
			return
		}

		order, err := deps.Engine.BuildOrder(r.Context(), req.Items, req.ShippingID, req.PaymentID)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart):
				writeError(w, http.StatusBadRequest, "your cart is empty")
			case errors.Is(err, checkout.ErrNoValidItems):
				writeError(w, http.StatusBadRequest, "no valid items in your cart")
			default:
				logging.Error(r.Context(), "order build failed", "error", err)
				writeError(w, http.StatusInternalServerError, "could not submit your order, please try again later")
			}
			return
		}

		notification, err := notify.Format(order, req.Buyer, deps.Currency, order.CreatedAt)
		if err != nil {
			logging.Error(r.Context(), "order format failed", "error", err, "orderId", order.ID)
			writeError(w, http.StatusInternalServerError, "could not submit your order, please try again later")
			return
		}

		// A client disconnect must not abort the delivery; the trace context
		// still carries through.
		sendCtx := context.WithoutCancel(r.Context())
		err = deps.Sender.Send(sendCtx, mailer.Message{
			From:    deps.MailFrom,
			To:      deps.MailTo,
			Subject: notification.Subject,
			Text:    notification.Text,
			HTML:    notification.HTML,
		})
		if err != nil {
			logging.Error(r.Context(), "order mail delivery failed", "error", err, "orderId", order.ID)
			writeError(w, http.StatusInternalServerError, "could not submit your order, please try again later")
			return
		}

		logging.Info(r.Context(), "order accepted",
			"orderId", order.ID,
			"lines", len(order.Lines),
			"grandTotal", order.GrandTotal,
		)

		writeJSON(w, http.StatusOK, OrderResponse{
			OK:         true,
			OrderID:    order.ID,
			GrandTotal: order.GrandTotal,
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{OK: false, Message: message})
}
