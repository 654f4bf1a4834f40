package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Empty(t, cfg.SMTPUsername)
	assert.Empty(t, cfg.SMTPPassword)
	assert.Equal(t, "storefront@example.com", cfg.MailFrom)
	assert.Equal(t, "orders@example.com", cfg.MailTo)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, "storefront", cfg.OTelServiceName)
	assert.Equal(t, "http://localhost:4318", cfg.OTelEndpoint)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SMTP_HOST", "mail.example.net")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USERNAME", "shopkeeper")
	t.Setenv("MAIL_TO", "owner@example.net")
	t.Setenv("CATALOG_PATH", "/etc/storefront/catalog.json")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mail.example.net", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "shopkeeper", cfg.SMTPUsername)
	assert.Equal(t, "owner@example.net", cfg.MailTo)
	assert.Equal(t, "/etc/storefront/catalog.json", cfg.CatalogPath)
}

func TestInvalidNumericFallsBackToDefault(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := Load()

	assert.Equal(t, 587, cfg.SMTPPort)
}
