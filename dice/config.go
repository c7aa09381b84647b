package dice

import "github.com/louisbranch/dieroller/internal/platform/config"

// Config holds environment-driven defaults for building dice.
type Config struct {
	DefaultSides int `env:"DIEROLLER_DEFAULT_SIDES" envDefault:"6"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// New creates a die with the configured default side count. The count is
// validated like any other.
func (c Config) New(opts ...Option) (*Die, error) {
	return New(c.DefaultSides, opts...)
}
