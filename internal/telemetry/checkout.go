package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type CheckoutMetrics struct {
	OrdersAccepted   metric.Int64Counter
	OrdersRejected   metric.Int64Counter
	LinesDropped     metric.Int64Counter
	OrderValue       metric.Float64Histogram
	OrderLines       metric.Float64Histogram
	MailSendDuration metric.Float64Histogram
	MailSendErrors   metric.Int64Counter
}

func NewCheckoutMetrics(m metric.Meter) (*CheckoutMetrics, error) {
	ordersAccepted, err := m.Int64Counter("checkout.orders.accepted",
		metric.WithUnit("{order}"),
		metric.WithDescription("Orders that passed validation and pricing"),
	)
	if err != nil {
		return nil, err
	}

	ordersRejected, err := m.Int64Counter("checkout.orders.rejected",
		metric.WithUnit("{order}"),
		metric.WithDescription("Orders rejected during validation"),
	)
	if err != nil {
		return nil, err
	}

	linesDropped, err := m.Int64Counter("checkout.lines.dropped",
		metric.WithUnit("{line}"),
		metric.WithDescription("Cart lines dropped for unknown product ids"),
	)
	if err != nil {
		return nil, err
	}

	orderValue, err := m.Float64Histogram("checkout.order.value",
		metric.WithUnit("{minor_unit}"),
		metric.WithDescription("Grand total per accepted order in minor currency units"),
	)
	if err != nil {
		return nil, err
	}

	orderLines, err := m.Float64Histogram("checkout.order.lines",
		metric.WithUnit("{line}"),
		metric.WithDescription("Number of priced lines per accepted order"),
	)
	if err != nil {
		return nil, err
	}

	mailSendDuration, err := m.Float64Histogram("mail.send.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Wall-clock duration of SMTP delivery"),
		metric.WithExplicitBucketBoundaries(0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, err
	}

	mailSendErrors, err := m.Int64Counter("mail.send.errors",
		metric.WithUnit("{error}"),
		metric.WithDescription("Failed SMTP deliveries"),
	)
	if err != nil {
		return nil, err
	}

	return &CheckoutMetrics{
		OrdersAccepted:   ordersAccepted,
		OrdersRejected:   ordersRejected,
		LinesDropped:     linesDropped,
		OrderValue:       orderValue,
		OrderLines:       orderLines,
		MailSendDuration: mailSendDuration,
		MailSendErrors:   mailSendErrors,
	}, nil
}

func WithRejectReason(reason string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("checkout.reject_reason", reason))
}
