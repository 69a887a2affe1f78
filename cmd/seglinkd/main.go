package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/sensorlink/seglink.go/pkg/device"
	env "github.com/sensorlink/seglink.go/pkg/device/env/device"
	"github.com/sensorlink/seglink.go/pkg/framework"
	"github.com/sensorlink/seglink.go/pkg/link"
	"github.com/sensorlink/seglink.go/pkg/panel"
)

var panelEnabled bool

func init() {
	env.SetDeviceType("seglink", device.Meta{Description: "Simulated sensor link"})
	env.SetupFlags()
	link.SetupFlags()
	panel.SetupFlags()
	flag.BoolVar(&panelEnabled, "panel", true, "Serve the display panel over HTTP.")
}

func main() {
	flag.Parse()

	e := env.NewConfig().MustNewEnv()
	ctl := link.NewConfig().NewController(e)

	loop := framework.NewLoop().Add(e, ctl)
	if panelEnabled {
		p := panel.NewConfig().NewPanel()
		ctl.Panel = p
		loop.Add(p)
	}
	loop.RunOrFail()
}
