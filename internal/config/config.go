package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/machinetranslation/internal/translator"
)

const (
	KeyAPIKey            = "apikey"
	KeyURL               = "url"
	KeyProvider          = "provider"
	KeyTimeout           = "timeout"
	KeyGoogleCredentials = "google_credentials"

	DefaultProvider = "ibm"
)

// ConfigurationError reports a required setting that is missing at startup.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration %q", e.Key)
}

// Config is read once at process start and not mutated afterwards.
type Config struct {
	Provider string
	Service  translator.ServiceConfig
}

// String never includes the API key.
func (c Config) String() string {
	return fmt.Sprintf("provider=%s url=%s timeout=%s", c.Provider, c.Service.URL, c.Service.Timeout)
}

// Load seeds the environment from envFile (a missing file is not an error),
// then reads settings from v. Existing environment variables take precedence
// over the file.
func Load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	bind(v)

	cfg := &Config{
		Provider: v.GetString(KeyProvider),
		Service: translator.ServiceConfig{
			APIKey:      v.GetString(KeyAPIKey),
			URL:         v.GetString(KeyURL),
			Credentials: v.GetString(KeyGoogleCredentials),
			Timeout:     v.GetDuration(KeyTimeout),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bind(v *viper.Viper) {
	v.SetDefault(KeyProvider, DefaultProvider)
	v.SetDefault(KeyTimeout, time.Duration(0))

	// Lower-case names are the ones the service credentials file uses.
	_ = v.BindEnv(KeyAPIKey, "apikey", "APIKEY")
	_ = v.BindEnv(KeyURL, "url", "URL")
	_ = v.BindEnv(KeyProvider, "provider", "PROVIDER")
	_ = v.BindEnv(KeyTimeout, "timeout", "TIMEOUT")
	_ = v.BindEnv(KeyGoogleCredentials, "GOOGLE_APPLICATION_CREDENTIALS")
}

// Validate checks the settings the selected provider needs.
func (c *Config) Validate() error {
	switch c.Provider {
	case "ibm":
		if c.Service.APIKey == "" {
			return &ConfigurationError{Key: KeyAPIKey}
		}
		if c.Service.URL == "" {
			return &ConfigurationError{Key: KeyURL}
		}
	case "google":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	if c.Service.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Service.Timeout)
	}
	return nil
}
