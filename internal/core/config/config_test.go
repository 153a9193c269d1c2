package config

import (
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequired sets the required WooCommerce variables for the duration of the test.
func setRequired(t *testing.T) {
	t.Setenv("WC_URL", "https://shop.test/")
	t.Setenv("WC_CONSUMER_KEY", "ck_default")
	t.Setenv("WC_CONSUMER_SECRET", "cs_default")
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("WP_URL")
	setRequired(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "bacs", cfg.WooCommerce.PaymentMethod)
	assert.Equal(t, time.Second, cfg.Checkout.ShippingDebounce)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 5, cfg.HTTP.BreakerFailures)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

// TestLoad_WordPressFallsBackToStore verifies WP_URL defaults to the trimmed store URL.
func TestLoad_WordPressFallsBackToStore(t *testing.T) {
	os.Unsetenv("WP_URL")
	setRequired(t)

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "https://shop.test", cfg.WooCommerce.URL)
	assert.Equal(t, "https://shop.test", cfg.WordPress.URL)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WP_URL", "https://blog.test")
	t.Setenv("SHIPPING_DEBOUNCE", "250ms")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_HOSTNAME", "proxy.test")
	t.Setenv("PROXY_PORT", "3128")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://blog.test", cfg.WordPress.URL)
	assert.Equal(t, "ck_default", cfg.WooCommerce.ConsumerKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Checkout.ShippingDebounce)
	assert.Equal(t, "http://proxy.test:3128", cfg.HTTP.Proxy.URL())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
WC_URL=https://staging.example.com
WC_CONSUMER_KEY=ck_staging
WC_CONSUMER_SECRET=cs_staging
CART_TTL=24h
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.Checkout.CartTTL)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("WC_URL")
	os.Unsetenv("WC_CONSUMER_KEY")
	os.Unsetenv("WC_CONSUMER_SECRET")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}

// TestProxyConfig_URL covers the credential and disabled cases.
func TestProxyConfig_URL(t *testing.T) {
	assert.Equal(t, "", ProxyConfig{Hostname: "p", Port: 1}.URL())
	assert.Equal(t, "http://u:s@p:1", ProxyConfig{Enabled: true, Hostname: "p", Port: 1, Username: "u", Password: "s"}.URL())

	raw := ProxyConfig{Enabled: true, Hostname: "proxy.test", Port: 3128, Username: "user", Password: "p@ss:w/rd"}.URL()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "proxy.test:3128", parsed.Host)
	password, ok := parsed.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss:w/rd", password)
}
