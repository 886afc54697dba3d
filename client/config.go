package client

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config describes where the backend lives. The zero value of any field falls
// back to DefaultConfig. Queue tuning (ECHO_TUTOR_QUEUE_SIZE,
// ECHO_TUTOR_QUEUE_MAX_ATTEMPTS, ...) is read separately when the client is
// built.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL"     default:"http://localhost:8000"`
	APIPrefix   string        `envconfig:"API_PREFIX"   default:"/api/v1"`
	AudioPrefix string        `envconfig:"AUDIO_PREFIX" default:"/audio"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// DefaultConfig points at a backend on localhost:8000.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "http://localhost:8000",
		APIPrefix:   "/api/v1",
		AudioPrefix: "/audio",
		HTTPTimeout: 30 * time.Second,
	}
}

// LoadConfig populates Config from environment variables (prefix ECHO_TUTOR_),
// e.g. ECHO_TUTOR_BASE_URL=http://tutor.internal:8000 .
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("ECHO_TUTOR", &c)
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.APIPrefix == "" {
		c.APIPrefix = d.APIPrefix
	}
	if c.AudioPrefix == "" {
		c.AudioPrefix = d.AudioPrefix
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = d.HTTPTimeout
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return c
}

func (c Config) apiBaseURL() string { return c.BaseURL + c.APIPrefix }
