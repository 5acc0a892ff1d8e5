package chert

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// DefaultEndpoint is the public mainnet RPC endpoint used when no endpoint
// is configured.
const DefaultEndpoint = "https://api.chert.com"

// Config holds the client configuration. It is immutable once a client
// session starts. Fields can be populated from the environment, a YAML file,
// or directly in code.
type Config struct {
	// Endpoint is the base URL all requests are resolved against.
	Endpoint string `env:"CHERT_ENDPOINT" yaml:"endpoint" env-default:"https://api.chert.com" validate:"required,url"`
	// Network tags which chain the client targets.
	Network Network `env:"CHERT_NETWORK" yaml:"network" env-default:"mainnet" validate:"oneof=mainnet testnet devnet"`
	// Timeout bounds each individual request.
	Timeout time.Duration `env:"CHERT_TIMEOUT" yaml:"timeout" env-default:"30s" validate:"gt=0"`
	// APIKey, when set, is sent as a bearer credential on every request.
	APIKey string `env:"CHERT_API_KEY" yaml:"api_key"`
	// Headers are extra headers attached to every request. They override
	// built-in headers on name collision.
	Headers map[string]string `env:"CHERT_HEADERS" yaml:"headers"`
}

// DefaultConfig returns a configuration targeting the public mainnet endpoint.
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Network:  NetworkMainnet,
		Timeout:  30 * time.Second,
	}
}

// ConfigFromEnv builds a configuration from environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, NewConfigError("failed to read environment", errors.Wrap(err, "cleanenv"))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a configuration from a YAML file, with environment
// variables overriding file values.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, NewConfigError("failed to read config file", errors.Wrapf(err, "path %s", path))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var configValidator = validator.New()

// Validate checks the configuration and returns a CONFIG_ERROR describing the
// first invalid field.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return NewConfigError("invalid client configuration", err)
	}
	return nil
}
