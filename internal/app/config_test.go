package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Addr:        "0.0.0.0:8080",
		Store:       StorePostgres,
		DatabaseURL: "postgres://localhost/orders",
		Auth:        AuthConfig{Secret: "s3cret"},
		Payment:     PaymentConfig{KeyID: "rzp_test_x", KeySecret: "rzp_secret", Currency: "INR"},
		CORS:        CORSConfig{Origins: []string{"*"}},
		Shipping:    ShippingConfig{FreeThreshold: "500", FlatCharge: "50"},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "memory store needs no database", mutate: func(c *Config) {
			c.Store = StoreMemory
			c.DatabaseURL = ""
		}},
		{name: "missing database", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "database URL is required"},
		{name: "unknown store", mutate: func(c *Config) { c.Store = "mongo" }, wantErr: `unknown store "mongo"`},
		{name: "missing auth secret", mutate: func(c *Config) { c.Auth.Secret = "" }, wantErr: "auth secret is required"},
		{name: "key id without secret", mutate: func(c *Config) { c.Payment.KeySecret = "" }, wantErr: "payment key secret is required"},
		{name: "no gateway and no sandbox opt-in", mutate: func(c *Config) {
			c.Payment = PaymentConfig{}
		}, wantErr: "payment.sandbox: true"},
		{name: "secret alone does not enable the sandbox", mutate: func(c *Config) {
			c.Payment.KeyID = ""
		}, wantErr: "payment gateway key id is required"},
		{name: "sandbox opt-in", mutate: func(c *Config) {
			c.Payment = PaymentConfig{Sandbox: true, KeySecret: "local-secret"}
		}},
		{name: "sandbox without secret", mutate: func(c *Config) {
			c.Payment = PaymentConfig{Sandbox: true}
		}, wantErr: "payment key secret is required"},
		{name: "sandbox with live key", mutate: func(c *Config) { c.Payment.Sandbox = true }, wantErr: "cannot be combined"},
		{name: "credentials with wildcard origin", mutate: func(c *Config) { c.CORS.AllowCredentials = true }, wantErr: "CORS credentials need explicit origins"},
		{name: "credentials with listed origin", mutate: func(c *Config) {
			c.CORS = CORSConfig{Origins: []string{"https://shop.example"}, AllowCredentials: true}
		}},
		{name: "bad shipping amount", mutate: func(c *Config) { c.Shipping.FlatCharge = "fifty" }, wantErr: "shipping flat charge"},
		{name: "negative shipping amount", mutate: func(c *Config) { c.Shipping.FreeThreshold = "-1" }, wantErr: "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShippingPolicy(t *testing.T) {
	p, err := ShippingConfig{FreeThreshold: "999.50", FlatCharge: "40"}.Policy()
	require.NoError(t, err)
	assert.True(t, p.Charge(decimal.NewFromInt(999)).Equal(decimal.NewFromInt(40)))
	assert.True(t, p.Charge(decimal.RequireFromString("999.50")).IsZero())
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("PORT", "9000")

	cfg := Config{Addr: "0.0.0.0:8080"}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)

	explicit := Config{Addr: "127.0.0.1:7000", DatabaseURL: "postgres://explicit/db"}
	explicit.applyPlatformDefaults()
	assert.Equal(t, "postgres://explicit/db", explicit.DatabaseURL)
	assert.Equal(t, "127.0.0.1:7000", explicit.Addr)
}
