package token

import (
	"errors"
	"time"
)

// DefaultIssuer is the "iss" claim stamped into every issued token.
const DefaultIssuer = "live attendance system"

// Config configures the token codec. The secret keys an HMAC-SHA256
// signature; there is a single shared secret, so every verifier trusts
// every issuer.
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret string `mapstructure:"secret"`

	// Issuer is the "iss" claim (default: "live attendance system").
	Issuer string `mapstructure:"issuer"`

	// AccessTokenTTL is the lifetime of access tokens (default: 24h).
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`

	// RefreshTokenTTL is the lifetime of refresh tokens (default: 360h).
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Issuer == "" {
		c.Issuer = DefaultIssuer
	}
	if c.AccessTokenTTL == 0 {
		c.AccessTokenTTL = 24 * time.Hour
	}
	if c.RefreshTokenTTL == 0 {
		c.RefreshTokenTTL = 15 * 24 * time.Hour
	}
}

// Validate checks required fields. An empty secret is a configuration error
// caught at startup, not on first use.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("token: signing secret is required")
	}
	return nil
}
