package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func testTracer() trace.Tracer {
	return sdktrace.NewTracerProvider().Tracer("test")
}

func TestNewSMTPSenderWithoutCredentials(t *testing.T) {
	s, err := NewSMTPSender(Options{Host: "localhost", Port: 2525}, testTracer(), nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost", s.Host)
	assert.Equal(t, 2525, s.Port)
}

func TestNewSMTPSenderWithCredentials(t *testing.T) {
	_, err := NewSMTPSender(Options{
		Host:     "mail.example.net",
		Port:     587,
		Username: "shopkeeper",
		Password: "secret",
	}, testTracer(), nil)
	require.NoError(t, err)
}

func TestSendRejectsInvalidFromAddress(t *testing.T) {
	s, err := NewSMTPSender(Options{Host: "localhost", Port: 2525}, testTracer(), nil)
	require.NoError(t, err)

	err = s.Send(context.Background(), Message{
		From:    "not an address",
		To:      "orders@example.com",
		Subject: "x",
		Text:    "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestSendRejectsInvalidToAddress(t *testing.T) {
	s, err := NewSMTPSender(Options{Host: "localhost", Port: 2525}, testTracer(), nil)
	require.NoError(t, err)

	err = s.Send(context.Background(), Message{
		From:    "storefront@example.com",
		To:      "nope",
		Subject: "x",
		Text:    "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid to address")
}
