package link

import (
	"flag"

	env "github.com/sensorlink/seglink.go/pkg/device/env/device"
)

// Config defines the configurations for the link controller.
type Config struct {
	// Position is the initial wiper position of the potentiometer.
	Position float64
}

var defaultConfig = Config{
	Position: 0,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.Position, "pot", defaultConfig.Position, "Initial potentiometer position (0..1).")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewController creates a controller using the config.
func (c *Config) NewController(e *env.Env) *Controller {
	return MustNewController(e, c.Position)
}
