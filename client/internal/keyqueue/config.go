package keyqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups all tunables. LoadConfig reads them from environment
// variables prefixed ECHO_TUTOR_QUEUE_, e.g. ECHO_TUTOR_QUEUE_MAX_ATTEMPTS=3 .
type Config struct {
	// QueueSize bounds how many jobs may wait behind the running one for a
	// single key.
	QueueSize int `envconfig:"SIZE" default:"1000"`

	// MaxAttempts bounds how often a failing job is run. 1 disables retries.
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"1"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"20s"`

	// ErrorHandler is called after a job settles with an error.
	ErrorHandler func(error) `envconfig:"-"`
}

// LoadConfig populates Config from the environment.
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("ECHO_TUTOR_QUEUE", &c)
}
