// Package checkout recomputes an order from untrusted cart input. Only product
// ids and quantities are taken from the client; every price comes from the
// catalog.
package checkout

import (
	"context"
	"errors"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNoValidItems = errors.New("no valid items in cart")
)

type CartLine struct {
	ID  string `json:"id"`
	Qty any    `json:"qty"`
}

type Buyer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

type OrderLine struct {
	ProductID string
	Name      string
	UnitPrice int64
	Qty       int
	LineTotal int64
}

type Order struct {
	ID          string
	Lines       []OrderLine
	Shipping    *catalog.ShippingOption
	Payment     *catalog.PaymentOption
	ItemsTotal  int64
	ShippingFee int64
	GrandTotal  int64
	CreatedAt   time.Time
}

type Engine struct {
	Catalog *catalog.Catalog
	Tracer  trace.Tracer
	Metrics *telemetry.CheckoutMetrics
}

// BuildOrder prices a submitted cart against the catalog. Unknown product ids
// are dropped silently; unknown shipping or payment ids mean no option and a
// zero fee, never an error.
func (e *Engine) BuildOrder(ctx context.Context, lines []CartLine, shippingID, paymentID string) (*Order, error) {
	ctx, span := e.Tracer.Start(ctx, "checkout build_order")
	defer span.End()

	span.SetAttributes(attribute.Int("checkout.lines_submitted", len(lines)))

	if len(lines) == 0 {
		span.SetStatus(codes.Error, "empty cart")
		if e.Metrics != nil {
			e.Metrics.OrdersRejected.Add(ctx, 1, telemetry.WithRejectReason("empty_cart"))
		}
		return nil, ErrEmptyCart
	}

	orderLines, dropped := resolveLines(e.Catalog, lines)
	if dropped > 0 {
		span.SetAttributes(attribute.Int("checkout.lines_dropped", dropped))
		if e.Metrics != nil {
			e.Metrics.LinesDropped.Add(ctx, int64(dropped))
		}
	}

	if len(orderLines) == 0 {
		span.SetStatus(codes.Error, "no valid items")
		if e.Metrics != nil {
			e.Metrics.OrdersRejected.Add(ctx, 1, telemetry.WithRejectReason("no_valid_items"))
		}
		return nil, ErrNoValidItems
	}

	var itemsTotal int64
	for _, l := range orderLines {
		itemsTotal += l.LineTotal
	}

	var shippingOpt *catalog.ShippingOption
	var shippingFee int64
	if s, ok := e.Catalog.ShippingByID(shippingID); ok {
		shippingOpt = &s
		shippingFee = s.Price
	}

	var paymentOpt *catalog.PaymentOption
	if p, ok := e.Catalog.PaymentByID(paymentID); ok {
		paymentOpt = &p
	}

	order := &Order{
		ID:          newOrderID(),
		Lines:       orderLines,
		Shipping:    shippingOpt,
		Payment:     paymentOpt,
		ItemsTotal:  itemsTotal,
		ShippingFee: shippingFee,
		GrandTotal:  itemsTotal + shippingFee,
		CreatedAt:   time.Now(),
	}

	span.SetAttributes(
		attribute.String("checkout.order_id", order.ID),
		attribute.Int("checkout.lines_kept", len(orderLines)),
		attribute.Int64("checkout.items_total", order.ItemsTotal),
		attribute.Int64("checkout.shipping_fee", order.ShippingFee),
		attribute.Int64("checkout.grand_total", order.GrandTotal),
	)

	if e.Metrics != nil {
		e.Metrics.OrdersAccepted.Add(ctx, 1)
		e.Metrics.OrderValue.Record(ctx, float64(order.GrandTotal))
		e.Metrics.OrderLines.Record(ctx, float64(len(orderLines)))
	}

	return order, nil
}
