// Package link provides shell commands for sensor link devices.
package link

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/sensorlink/seglink.go/pkg/cli/sh"
	"github.com/sensorlink/seglink.go/pkg/device/msgs"
)

var (
	// PotSetCmd exposes the PotSet command.
	PotSetCmd = ishell.Cmd{
		Name:    "pot",
		Aliases: []string{"p"},
		Help:    "POSITION (0..1)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("POSITION required"))
				return
			}
			val, err := strconv.ParseFloat(c.Args[0], 32)
			if err != nil {
				c.Err(fmt.Errorf("Invalid POSITION: %v", err))
				return
			}
			if val < 0 || val > 1 {
				c.Err(fmt.Errorf("POSITION must be within 0..1"))
				return
			}
			msg := &msgs.PotSet{}
			msg.Position = float32(val)
			sh.DoCommand(c, msg)
		}),
	}

	// StatsCmd exposes the StatsQuery command.
	StatsCmd = ishell.Cmd{
		Name:    "stats",
		Aliases: []string{"s"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.StatsQuery{})
		}),
	}

	// WatchCmd prints display change events.
	WatchCmd = ishell.Cmd{
		Name:    "watch",
		Aliases: []string{"w"},
		Help:    "[SECONDS]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			dur := 10 * time.Second
			if len(c.Args) > 0 {
				secs, err := strconv.Atoi(c.Args[0])
				if err != nil || secs <= 0 {
					c.Err(fmt.Errorf("Invalid SECONDS"))
					return
				}
				dur = time.Duration(secs) * time.Second
			}
			loop := sh.ShellFrom(c).Loop
			deadline := time.After(dur)
			for {
				select {
				case msg := <-loop.Events:
					if ev, ok := msg.(*msgs.DisplayChanged); ok {
						c.Printf("digit=%d sample=%d pattern=%#02x\n",
							ev.Digit, ev.Sample, ev.Pattern)
					}
				case <-deadline:
					return
				case <-loop.Ctx.Done():
					return
				}
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&PotSetCmd,
		&StatsCmd,
		&WatchCmd,
	)
}
