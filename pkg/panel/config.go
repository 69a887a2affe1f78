package panel

import "flag"

// Config represents configuration for the panel.
type Config struct {
	Addr string
}

var defaultConfig = Config{
	Addr: "localhost:8780",
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Addr, "panel-addr", defaultConfig.Addr, "HTTP listen address of the display panel")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a default config.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewPanel creates a Panel from config.
func (c *Config) NewPanel() *Panel {
	return NewPanel(c)
}
