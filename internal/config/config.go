// Package config loads service configuration from an optional YAML file, an
// optional .env file, and environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ashishshah/live-attendance/internal/database"
	"github.com/ashishshah/live-attendance/internal/logger"
	"github.com/ashishshah/live-attendance/internal/observability"
	"github.com/ashishshah/live-attendance/internal/password"
	"github.com/ashishshah/live-attendance/internal/server"
	"github.com/ashishshah/live-attendance/internal/token"
)

// envPrefix namespaces environment overrides, e.g. ATTENDANCE_SERVER_PORT.
const envPrefix = "ATTENDANCE"

// Config is the root service configuration.
type Config struct {
	Environment   string               `mapstructure:"environment"`
	Server        server.Config        `mapstructure:"server"`
	Database      database.Config      `mapstructure:"database"`
	Token         token.Config         `mapstructure:"token"`
	Password      password.Config      `mapstructure:"password"`
	Logging       logger.Config        `mapstructure:"logging"`
	Observability observability.Config `mapstructure:"observability"`
}

// ApplyDefaults sets defaults on all sub-configurations.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Token.ApplyDefaults()
	c.Password.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Observability.ApplyDefaults()

	// Cookies go Secure everywhere except local development.
	if c.Environment != "development" {
		c.Server.SecureCookies = true
	}
}

// Validate checks all sub-configurations. A missing signing secret fails
// here, at startup, rather than on the first signing attempt.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Token.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads configuration. configFile may be empty, in which case only env
// variables and defaults apply. A .env file in the working directory is
// loaded first if present.
func Load(configFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("config: load .env: %w", err)
		}
	}

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	// The signing secret is commonly supplied as a bare JWT_SECRET variable.
	if cfg.Token.Secret == "" {
		cfg.Token.Secret = os.Getenv("JWT_SECRET")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindEnvVars maps ATTENDANCE_* environment variables onto nested viper keys.
// Viper's AutomaticEnv does not surface unknown keys to Unmarshal, so each
// variable is set explicitly under every plausible nesting: for example
// ATTENDANCE_TOKEN_ACCESS_TOKEN_TTL yields token.access_token_ttl among
// others. Keys that match nothing in the config struct are ignored.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], envPrefix+"_") {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], envPrefix+"_"))
		for _, variant := range keyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

// keyVariants turns "token_access_token_ttl" into every split where a dot
// replaces one prefix of the underscores: token.access_token_ttl,
// token_access.token_ttl, and so on, plus the fully dotted form.
func keyVariants(key string) []string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return []string{key}
	}
	variants := []string{key, strings.ReplaceAll(key, "_", ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}
