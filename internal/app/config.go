package app

import (
	"os"
	"slices"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/order"
)

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds the complete application configuration, loadable from
// environment variables (ORDERS_ prefix), flags, or YAML config files.
type Config struct {
	Addr        string `default:"0.0.0.0:8080" usage:"API server listen address"`
	Store       string `default:"postgres" usage:"Storage driver: postgres or memory"`
	DatabaseURL string `usage:"PostgreSQL connection URL (ORDERS_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	Auth        AuthConfig
	Payment     PaymentConfig
	Shipping    ShippingConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Graceful    GracefulConfig
}

// AuthConfig configures bearer token verification.
type AuthConfig struct {
	Secret string `usage:"HS256 secret for bearer tokens (ORDERS_AUTH_SECRET)" flag:"auth-secret"`
	Issuer string `default:"" usage:"Expected token issuer, empty to skip the check" flag:"auth-issuer"`
}

// PaymentConfig configures the payment gateway. Razorpay needs a key id and
// secret; the in-process sandbox gateway must be enabled explicitly and
// still signs with KeySecret.
type PaymentConfig struct {
	KeyID       string `usage:"Gateway key id" flag:"payment-key-id"`
	KeySecret   string `usage:"Gateway key secret, also the signature secret" flag:"payment-key-secret"`
	Sandbox     bool   `default:"false" usage:"Use the in-process sandbox gateway, for local development only" flag:"payment-sandbox"`
	Currency    string `default:"INR" usage:"Settlement currency"`
	AutoCapture bool   `default:"false" usage:"Gateway captures payments on its own" flag:"payment-auto-capture"`
}

// Validate rejects configs that would take payments without a way to verify
// them. Either Razorpay credentials or the sandbox opt-in must be given.
func (c PaymentConfig) Validate() error {
	switch {
	case c.Sandbox && c.KeyID != "":
		return errors.New("payment sandbox cannot be combined with a gateway key id")
	case !c.Sandbox && c.KeyID == "":
		return errors.New("payment gateway key id is required: set ORDERS_PAYMENT_KEY_ID, or payment.sandbox: true for local development")
	case c.KeySecret == "":
		return errors.New("payment key secret is required: set ORDERS_PAYMENT_KEY_SECRET")
	}
	return nil
}

// ShippingConfig sets the flat shipping policy.
type ShippingConfig struct {
	FreeThreshold string `default:"500" usage:"Discounted subtotal from which shipping is free" flag:"shipping-free-threshold"`
	FlatCharge    string `default:"50" usage:"Shipping charge below the threshold" flag:"shipping-flat-charge"`
}

// Policy parses the configured amounts.
func (c ShippingConfig) Policy() (order.ShippingPolicy, error) {
	threshold, err := decimal.NewFromString(c.FreeThreshold)
	if err != nil {
		return order.ShippingPolicy{}, errors.Wrap(err, "shipping free threshold")
	}
	charge, err := decimal.NewFromString(c.FlatCharge)
	if err != nil {
		return order.ShippingPolicy{}, errors.Wrap(err, "shipping flat charge")
	}
	if threshold.IsNegative() || charge.IsNegative() {
		return order.ShippingPolicy{}, errors.New("shipping amounts must not be negative")
	}
	return order.ShippingPolicy{FreeThreshold: threshold, FlatCharge: charge}, nil
}

// RateLimitConfig controls the per-client rate limiter. With RedisAddr set
// the window is shared between replicas.
type RateLimitConfig struct {
	Max       int           `default:"100" usage:"Max requests per window"`
	Window    time.Duration `default:"1m"  usage:"Rate limit window duration"`
	RedisAddr string        `default:"" usage:"Redis address for a shared limiter" flag:"ratelimit-redis-addr"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string      `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool          `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
	MaxAge           time.Duration `default:"24h" usage:"How long browsers may cache a preflight" flag:"cors-max-age"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config files,
// and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "ORDERS",
		Files:     []string{"config.yaml", "/etc/orderflow/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database URL is required: set ORDERS_DATABASE_URL or DATABASE_URL")
		}
	case StoreMemory:
	default:
		return errors.Errorf("unknown store %q", c.Store)
	}
	if c.Auth.Secret == "" {
		return errors.New("auth secret is required: set ORDERS_AUTH_SECRET")
	}
	if err := c.Payment.Validate(); err != nil {
		return err
	}
	if c.CORS.AllowCredentials && (len(c.CORS.Origins) == 0 || slices.Contains(c.CORS.Origins, "*")) {
		return errors.New("CORS credentials need explicit origins, not *")
	}
	if _, err := c.Shipping.Policy(); err != nil {
		return err
	}
	return nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT to the
// application's ORDERS_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
