// Package device sets up the runtime environment of a device process.
package device

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sensorlink/seglink.go/pkg/device"
	"github.com/sensorlink/seglink.go/pkg/device/comm"
	"github.com/sensorlink/seglink.go/pkg/device/comm/mqtt"
	"github.com/sensorlink/seglink.go/pkg/device/comm/stream"
	"github.com/sensorlink/seglink.go/pkg/device/env"
	fx "github.com/sensorlink/seglink.go/pkg/framework"
)

// Config provides common options to set up the env for devices.
type Config struct {
	Info device.Info

	// MQTTBrokerURL specifies the MQTT broker to register with.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string

	// ListenAddr, when non-empty, accepts direct TCP connections.
	ListenAddr string
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/seglink/",
}

func init() {
	if val := os.Getenv("SEGLINK_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	defaultConfig.Info.Ref.ID = env.MachineID()
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.Type, "type", defaultConfig.Info.Ref.Type, "Device type")
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Device ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.ListenAddr, "listen", defaultConfig.ListenAddr, "Direct TCP listen address")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// SetDeviceType should be called in init with basic info about the device.
func SetDeviceType(typ string, meta device.Meta) {
	defaultConfig.Info.Ref.Type = typ
	defaultConfig.Info.Meta = meta
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env is the runtime environment of a device.
type Env struct {
	Config       *Config
	RegistryURLs []string
	Registrar    *comm.RegistrarMux
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("device type and id must be specified")
	}
	e := &Env{
		Config:    c,
		Registrar: &comm.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %v", err)
		}
		e.Registrar.Add(reg)
		e.RegistryURLs = append(e.RegistryURLs, c.MQTTBrokerURL)
	}
	if c.ListenAddr != "" {
		srv := stream.NewServer(c.ListenAddr)
		if err := srv.Listen(); err != nil {
			return nil, fmt.Errorf("listen on %s error: %v", c.ListenAddr, err)
		}
		e.Registrar.Add(srv)
		e.RegistryURLs = append(e.RegistryURLs, "tcp://"+srv.ListenAddr().String())
	}
	if len(e.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	e, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// AddToLoop adds registrars and default command handling to loop.
func (e *Env) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&comm.UnsupportedCommands{})
}
