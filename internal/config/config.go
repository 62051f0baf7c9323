// Package config resolves runtime configuration from the environment.
//
// The service deliberately has a single knob: the listening port. Everything
// else about a deployment (replica count, image tag, namespace) lives in the
// Helm chart values and never reaches the process.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is unset. 5000 is avoided on purpose: it is
// reserved by unrelated host services in common developer environments.
const DefaultPort = "8080"

// Config carries the resolved runtime settings.
type Config struct {
	// Port is the TCP port the HTTP server binds, as a decimal string.
	Port string
}

// Load resolves configuration, seeding the environment from a .env file in
// the working directory when one exists. Real environment variables always
// take precedence over .env entries.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom behaves like Load but reads the given dotenv file instead.
func LoadFrom(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				return nil, fmt.Errorf("loading %s: %w", dotenvPath, err)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	if err := validatePort(port); err != nil {
		return nil, err
	}

	return &Config{Port: port}, nil
}

// Addr returns the listen address in the form net/http expects.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid PORT %q: not a number", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("invalid PORT %q: out of range 1-65535", port)
	}
	return nil
}
