// Package notify renders an order into the email that gets sent to the shop
// owner. The HTML body escapes every buyer-supplied field and every catalog
// name; the plain-text body is left unescaped.
package notify

import (
	"bytes"
	"fmt"
	"time"

	"storefront/internal/checkout"
	"storefront/internal/money"
)

type Notification struct {
	Subject string
	Text    string
	HTML    string
}

type lineView struct {
	Name      string
	Qty       int
	UnitPrice string
	LineTotal string
}

type orderView struct {
	ID           string
	PlacedAt     string
	Lines        []lineView
	ItemsTotal   string
	ShippingName string
	ShippingFee  string
	PaymentName  string
	GrandTotal   string
	Buyer        checkout.Buyer
}

// Format is pure; the submission instant is passed in so callers and tests
// control it. All money reaches the templates pre-rendered as strings.
func Format(order *checkout.Order, buyer checkout.Buyer, cur money.Currency, at time.Time) (Notification, error) {
	view := orderView{
		ID:          order.ID,
		PlacedAt:    at.Format("2006-01-02 15:04:05 MST"),
		ItemsTotal:  cur.Format(order.ItemsTotal),
		ShippingFee: cur.Format(order.ShippingFee),
		GrandTotal:  cur.Format(order.GrandTotal),
		Buyer:       buyer,
	}
	if order.Shipping != nil {
		view.ShippingName = order.Shipping.Name
	}
	if order.Payment != nil {
		view.PaymentName = order.Payment.Name
	}
	for _, l := range order.Lines {
		view.Lines = append(view.Lines, lineView{
			Name:      l.Name,
			Qty:       l.Qty,
			UnitPrice: cur.Format(l.UnitPrice),
			LineTotal: cur.Format(l.LineTotal),
		})
	}

	var text bytes.Buffer
	if err := textTmpl.Execute(&text, view); err != nil {
		return Notification{}, fmt.Errorf("render text body: %w", err)
	}

	var html bytes.Buffer
	if err := htmlTmpl.Execute(&html, view); err != nil {
		return Notification{}, fmt.Errorf("render html body: %w", err)
	}

	return Notification{
		Subject: "New order " + order.ID + " (" + cur.Format(order.GrandTotal) + ")",
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
