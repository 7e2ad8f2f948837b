package core

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// ProductionURL is the StakeCube v2 REST API root.
	ProductionURL = "https://stakecube.io/api/v2"
	// DefaultUserAgent identifies this library to the API.
	DefaultUserAgent = "stakecube-go/2"
)

// Credentials holds API authentication credentials for an exchange.
type Credentials struct {
	// APIKey is the public API key, sent in the X-API-KEY header.
	APIKey string `json:"api_key" validate:"required"`
	// SecretKey is the private API key used for signing requests.
	SecretKey string `json:"secret_key" validate:"required"`
}

// String returns the credentials with both keys masked.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s, SecretKey:%s}", maskKey(c.APIKey), maskKey(c.SecretKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains all configuration options for a client.
type Config struct {
	Exchange    string       `json:"exchange" validate:"required"`
	BaseURL     string       `json:"base_url" validate:"required,url"`
	UserAgent   string       `json:"user_agent" validate:"required"`
	Credentials *Credentials `json:"credentials,omitempty" validate:"-"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config pointing at the production API.
// Default values: 10s timeout, info log level, no credentials.
func DefaultConfig() *Config {
	return &Config{
		Exchange:  "stakecube",
		BaseURL:   ProductionURL,
		UserAgent: DefaultUserAgent,
		Timeout:   10 * time.Second,
		LogLevel:  "info",
	}
}

var validate = validator.New()

// Validate checks the config fields. Missing credentials are reported as a
// configuration error so callers can tell them apart from bad tuning values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return NewExchangeError(c.Exchange, ErrorTypeConfiguration, 0, err.Error()).
			WithCode(ErrCodeInvalidConfig).
			Wrap(err)
	}
	if c.Credentials == nil {
		return NewExchangeError(c.Exchange, ErrorTypeConfiguration, 0, ErrNoCredentials.Error()).
			WithCode(ErrCodeNoCredentials).
			Wrap(ErrNoCredentials)
	}
	if err := validate.Struct(c.Credentials); err != nil {
		return NewExchangeError(c.Exchange, ErrorTypeConfiguration, 0, "public & private key must be non-empty").
			WithCode(ErrCodeNoCredentials).
			Wrap(ErrNoCredentials)
	}
	return nil
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL overrides the API root and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithUserAgent sets the User-Agent header value and returns the config for chaining.
func (c *Config) WithUserAgent(ua string) *Config {
	c.UserAgent = ua
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
