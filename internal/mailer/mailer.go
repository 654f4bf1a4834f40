// Package mailer delivers order notifications over SMTP. Delivery is awaited;
// the caller learns whether the shop owner will actually receive the order.
package mailer

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/telemetry"

	"github.com/wneessen/go-mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Options struct {
	Host     string
	Port     int
	Username string
	Password string
}

type SMTPSender struct {
	Host    string
	Port    int
	Tracer  trace.Tracer
	Metrics *telemetry.CheckoutMetrics

	client *mail.Client
}

// NewSMTPSender builds the client without dialing. Missing credentials leave
// the client unauthenticated; a server that requires auth rejects the first
// delivery, not startup.
func NewSMTPSender(opts Options, tracer trace.Tracer, metrics *telemetry.CheckoutMetrics) (*SMTPSender, error) {
	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPSender{
		Host:    opts.Host,
		Port:    opts.Port,
		Tracer:  tracer,
		Metrics: metrics,
		client:  client,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	start := time.Now()

	ctx, span := s.Tracer.Start(ctx, "smtp send")
	defer span.End()

	span.SetAttributes(
		attribute.String("server.address", s.Host),
		attribute.Int("server.port", s.Port),
		attribute.String("mail.subject", msg.Subject),
	)

	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	err := s.client.DialAndSendWithContext(ctx, m)
	duration := time.Since(start).Seconds()

	if s.Metrics != nil {
		s.Metrics.MailSendDuration.Record(ctx, duration)
	}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("error.type", fmt.Sprintf("%T", err)))
		if s.Metrics != nil {
			s.Metrics.MailSendErrors.Add(ctx, 1)
		}
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
