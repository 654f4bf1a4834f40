package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	Environment     string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	MailFrom        string
	MailTo          string
	CatalogPath     string
	OTelServiceName string
	OTelEndpoint    string
}

func Load() *Config {
	return &Config{
		Port:            envOr("APP_PORT", "8080"),
		Environment:     envOr("ENVIRONMENT", "development"),
		SMTPHost:        envOr("SMTP_HOST", "localhost"),
		SMTPPort:        envOrInt("SMTP_PORT", 587),
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		MailFrom:        envOr("MAIL_FROM", "storefront@example.com"),
		MailTo:          envOr("MAIL_TO", "orders@example.com"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		OTelServiceName: envOr("OTEL_SERVICE_NAME", "storefront"),
		OTelEndpoint:    envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
