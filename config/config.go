package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EndpointEnv = "CONTENT_MODERATOR_ENDPOINT"
	KeyEnv      = "CONTENT_MODERATOR_KEY"
)

// Config holds the location and credentials of the moderation service.
type Config struct {
	// Endpoint is the base URL of the service, e.g.
	// https://westus.api.cognitive.microsoft.com
	Endpoint string `validate:"required,url"`

	// Key is the subscription key sent with every request.
	Key string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration from the environment. The given .env files,
// or .env in the working directory when none are given, are loaded first if
// present. Variables already set in the environment take precedence.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	cfg := &Config{
		Endpoint: strings.TrimSpace(os.Getenv(EndpointEnv)),
		Key:      strings.TrimSpace(os.Getenv(KeyEnv)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the endpoint is a URL and a key is present.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Errorf("invalid config: %s failed %q check", fe.Field(), fe.Tag())
		}
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
