package analytics

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the dispatcher tunables. Values are taken from environment
// variables with the prefix "AGEGATE_ANALYTICS".
// Example: AGEGATE_ANALYTICS_QUEUE_SIZE=256 .
type Config struct {
	QueueSize   int           `envconfig:"QUEUE_SIZE"   default:"64"`
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"4"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"200ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"5s"`
	SendTimeout time.Duration `envconfig:"SEND_TIMEOUT" default:"10s"`
}

// LoadConfig populates Config from environment variables.
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("AGEGATE_ANALYTICS", &c)
}
