// Package link assembles the full simulated sensor link inside one
// device process: the potentiometer feeds the transmitter firmware, the
// wire carries frames to the receiver firmware, and the receiver's pin
// latch drives the display decoder.
package link

import (
	"context"
	"log"

	"github.com/golang/glog"

	"github.com/sensorlink/seglink.go/pkg/device"
	env "github.com/sensorlink/seglink.go/pkg/device/env/device"
	"github.com/sensorlink/seglink.go/pkg/device/msgs"
	"github.com/sensorlink/seglink.go/pkg/firmware/display"
	"github.com/sensorlink/seglink.go/pkg/firmware/rx"
	"github.com/sensorlink/seglink.go/pkg/firmware/tx"
	fx "github.com/sensorlink/seglink.go/pkg/framework"
	"github.com/sensorlink/seglink.go/pkg/hal/simboard"
	"github.com/sensorlink/seglink.go/pkg/panel"
	"github.com/sensorlink/seglink.go/pkg/sim"
)

// Controller runs the simulated link and exposes it as a device.
type Controller struct {
	Env   *env.Env
	Panel *panel.Panel

	pot  *sim.Pot
	wire *simboard.Wire
	pins *simboard.Pins

	txWatchdog *simboard.Watchdog
	rxWatchdog *simboard.Watchdog

	transmitter *tx.Transmitter
	receiver    *rx.Receiver

	lineCh chan byte

	lines        byte
	haveLines    bool
	linesChanged bool
}

// NewController creates a Controller and brings up both firmware sides.
func NewController(e *env.Env, position float64) (*Controller, error) {
	c := &Controller{
		Env:        e,
		pot:        sim.NewPot(position),
		wire:       simboard.NewWire(),
		pins:       simboard.NewPins(),
		txWatchdog: simboard.NewWatchdog(),
		rxWatchdog: simboard.NewWatchdog(),
		lineCh:     make(chan byte, 4),
	}
	c.transmitter = tx.New(tx.Config{
		ADC:      simboard.ADCFunc(c.pot.Reading),
		Master:   c.wire.Master(),
		Watchdog: c.txWatchdog,
	})
	c.receiver = rx.New(rx.Config{
		Slave:    c.wire.Slave(),
		Watchdog: c.rxWatchdog,
		Pins:     c.pins,
	})
	c.pins.Observe(func(lines byte) {
		select {
		case c.lineCh <- lines:
		default:
		}
	})
	if err := c.receiver.Init(); err != nil {
		return nil, err
	}
	if err := c.transmitter.Init(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewController creates a Controller and fails on error.
func MustNewController(e *env.Env, position float64) *Controller {
	c, err := NewController(e, position)
	if err != nil {
		log.Fatalln(err)
	}
	return c
}

// Pot exposes the simulated potentiometer.
func (c *Controller) Pot() *sim.Pot {
	return c.pot
}

// Receiver exposes the receiver firmware for inspection.
func (c *Controller) Receiver() *rx.Receiver {
	return c.receiver
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(c.wire.Slave())
	loop.AddRunnable(c.txWatchdog)
	loop.AddRunnable(c.rxWatchdog)
	loop.AddRunnable(c.transmitter)
	loop.AddRunnable(c.receiver)
	loop.AddRunnable(c)
	loop.AddController(fx.PhControl, c)
	loop.AddController(fx.PhPostProc, fx.ControlFunc(c.notifyDisplayChange))
}

// Run implements Runnable: it forwards pin latch changes into the loop.
func (c *Controller) Run(ctx context.Context) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case lines := <-c.lineCh:
			loopCtl.PostMessage(&linesMsg{lines: lines})
			loopCtl.TriggerNext()
		}
	}
}

// Control implements Controller: it handles device commands and latch
// change messages.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *device.CommandMsg:
			switch m := msg.Command.Msg().(type) {
			case *msgs.PotSet:
				mctx.MessageTaken()
				pos := c.pot.Set(float64(m.Position))
				if glog.V(1) {
					glog.Infof("pot -> %.3f", pos)
				}
				msg.Command.Done(msgs.NewCommandOK())
			case *msgs.StatsQuery:
				mctx.MessageTaken()
				msg.Command.Done(c.stats())
			}
		case *linesMsg:
			mctx.MessageTaken()
			if !c.haveLines || c.lines != msg.lines {
				c.lines, c.haveLines = msg.lines, true
				c.linesChanged = true
			}
		}
	}))
	return nil
}

func (c *Controller) stats() *msgs.Stats {
	stats := &msgs.Stats{}
	stats.Sample = uint32(c.receiver.Sample())
	stats.Frames = c.receiver.Frames()
	stats.Digit = uint32(c.receiver.Digit())
	return stats
}

func (c *Controller) notifyDisplayChange(cc fx.ControlContext) error {
	changed := c.linesChanged
	c.linesChanged = false
	if !changed {
		return nil
	}
	ev := &msgs.DisplayChanged{}
	ev.Digit = uint32(display.Digit(c.lines & display.LineMask))
	ev.Sample = uint32(c.receiver.Sample())
	ev.Pattern = uint32(c.lines & display.LineMask)
	if c.Panel != nil {
		c.Panel.Notify(panel.State{
			Digit:   int(ev.Digit),
			Sample:  ev.Sample,
			Frames:  c.receiver.Frames(),
			Pattern: ev.Pattern,
		})
	}
	return c.Env.Registrar.SendEvent(cc.Context(), ev)
}

type linesMsg struct {
	lines byte
}

func (m *linesMsg) NewMessage() fx.Message { return &linesMsg{} }
