package agegate

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the environment-driven SDK settings. Values are taken from
// environment variables with the prefix "AGEGATE".
// Example: AGEGATE_ENV=sandbox AGEGATE_HTTP_TIMEOUT=10s .
type Config struct {
	// Env scopes local storage keys so sandbox and production state never
	// mix on one device. Accepted values: "sandbox", "production".
	Env string `envconfig:"ENV" default:"production"`

	AgeGateURL string `envconfig:"AGE_GATE_URL" default:"https://age-api.privsafe.io/api/v1/age-gate"`
	AuthURL    string `envconfig:"AUTH_URL"     default:"https://api.privsafe.io/api/v1/authentication"`
	HelperURL  string `envconfig:"HELPER_URL"   default:"https://helper.privsafe.io/api/v1"`
	PublicURL  string `envconfig:"PUBLIC_URL"   default:"https://age.privsafe.io"`

	// StorePath, when set, opens a durable badger store there; otherwise
	// state lives in memory for the process lifetime.
	StorePath string `envconfig:"STORE_PATH"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// LoadConfig populates Config from environment variables (prefix AGEGATE).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("AGEGATE", &c)
}
