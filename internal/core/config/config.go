package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// AllowedOrigins is the comma separated CORS allow list for the storefront SPA.
	AllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS" default:"*"`
	// InboundRateLimit is the number of requests per second allowed per client IP.
	InboundRateLimit float64 `mapstructure:"INBOUND_RATE_LIMIT" default:"20"`

	// WooCommerce holds the WooCommerce API configuration.
	WooCommerce WooCommerceConfig `mapstructure:",squash"`

	// WordPress holds the WordPress auth endpoints configuration.
	WordPress WordPressConfig `mapstructure:",squash"`

	// Redis holds the connection used for carts, tokens and the catalog cache.
	Redis RedisConfig `mapstructure:",squash"`

	// HTTP tunes the outbound HTTP clients.
	HTTP HTTPConfig `mapstructure:",squash"`

	// Checkout tunes the cart and checkout flow.
	Checkout CheckoutConfig `mapstructure:",squash"`
}

// WooCommerceConfig holds the credentials for the WooCommerce Store.
type WooCommerceConfig struct {
	// URL is the base URL of the WooCommerce store.
	URL string `mapstructure:"WC_URL" required:"true"`
	// ConsumerKey is the public key for API access.
	ConsumerKey string `mapstructure:"WC_CONSUMER_KEY" required:"true"`
	// ConsumerSecret is the secret key for API access.
	ConsumerSecret string `mapstructure:"WC_CONSUMER_SECRET" required:"true"`
	// NonceFallbackPath mints a Store API nonce when the cart response does not expose one.
	NonceFallbackPath string `mapstructure:"WC_NONCE_FALLBACK_PATH" default:"/wp-admin/admin-ajax.php?action=storefront_nonce"`
	// PaymentMethod is the offline payment gateway id used for every order.
	PaymentMethod string `mapstructure:"WC_PAYMENT_METHOD" default:"bacs"`
	// PaymentMethodTitle is the display name stored with the order.
	PaymentMethodTitle string `mapstructure:"WC_PAYMENT_METHOD_TITLE" default:"Transferencia bancaria directa"`
}

// WordPressConfig holds the WordPress site used for login and registration.
type WordPressConfig struct {
	// URL is the base URL of the WordPress site. Defaults to WC_URL.
	URL string `mapstructure:"WP_URL"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is in the format redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// HTTPConfig holds outbound client settings.
type HTTPConfig struct {
	// Timeout bounds every outbound request.
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT" default:"10s"`
	// RateLimit is the maximum outbound requests per second across all sessions.
	RateLimit float64 `mapstructure:"HTTP_RATE_LIMIT" default:"25"`
	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures int `mapstructure:"HTTP_BREAKER_FAILURES" default:"5"`
	// BreakerCooldown is how long the breaker stays open before probing again.
	BreakerCooldown time.Duration `mapstructure:"HTTP_BREAKER_COOLDOWN" default:"30s"`

	// Proxy routes outbound requests through an HTTP proxy when enabled.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// ProxyConfig contains outbound proxy configuration.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// HasProxy returns true if proxy is enabled and configured.
func (p ProxyConfig) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// URL returns the full proxy URL with credentials, or "" when disabled.
func (p ProxyConfig) URL() string {
	if !p.HasProxy() {
		return ""
	}
	u := url.URL{Scheme: "http", Host: net.JoinHostPort(p.Hostname, strconv.Itoa(p.Port))}
	if p.Username != "" && p.Password != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u.String()
}

// CheckoutConfig holds cart and checkout timings.
type CheckoutConfig struct {
	// ShippingDebounce is the quiet period after the last address edit before rates are requested.
	ShippingDebounce time.Duration `mapstructure:"SHIPPING_DEBOUNCE" default:"1s"`
	// IdleTTL evicts checkout sessions that saw no activity for this long.
	IdleTTL time.Duration `mapstructure:"CHECKOUT_IDLE_TTL" default:"2h"`
	// CartTTL is how long a shopper cart survives in Redis. 0 keeps it forever.
	CartTTL time.Duration `mapstructure:"CART_TTL" default:"720h"`
	// CatalogTTL is how long product listings are cached.
	CatalogTTL time.Duration `mapstructure:"CATALOG_TTL" default:"5m"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	config.WooCommerce.URL = strings.TrimRight(config.WooCommerce.URL, "/")
	if config.WordPress.URL == "" {
		config.WordPress.URL = config.WooCommerce.URL
	}
	config.WordPress.URL = strings.TrimRight(config.WordPress.URL, "/")

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
