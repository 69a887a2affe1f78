package main

import (
	"github.com/sensorlink/seglink.go/pkg/cli/sh"
	env "github.com/sensorlink/seglink.go/pkg/device/env/connector"

	_ "github.com/sensorlink/seglink.go/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
