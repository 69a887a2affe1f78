// Package all imports all shell command providers.
package all

import (
	_ "github.com/sensorlink/seglink.go/pkg/cli/cmds/link"
)
