// Package rx implements the receiver-side firmware: it latches samples
// arriving over the synchronous serial link and periodically refreshes
// the four decoder lines from the most recent sample.
package rx

import (
	"context"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/sensorlink/seglink.go/pkg/firmware/display"
	"github.com/sensorlink/seglink.go/pkg/hal"
)

// Serial link parameters shared with the transmitter.
const (
	// BitRateDivisor divides the sub-main clock for the serial bit rate.
	BitRateDivisor uint16 = 32
	// FrameBits is the number of data bits per serial frame.
	FrameBits = 8
	// TickDivisor divides the sub-main clock for the refresh interval.
	TickDivisor uint32 = 32768
)

// Config assembles the peripherals the receiver runs on.
type Config struct {
	Slave    hal.SlavePort
	Watchdog hal.Watchdog
	Pins     hal.PinGroup
}

// Receiver is the receiver firmware. The frame handler and the tick
// handler share exactly one mutable cell, the last received sample; it
// is accessed atomically so neither side ever observes a torn value.
type Receiver struct {
	config Config

	sample uint32 // low byte holds the last received sample
	frames uint64 // diagnostic count of received frames
}

// New creates a Receiver on the given peripherals.
func New(config Config) *Receiver {
	return &Receiver{config: config}
}

// Init brings up the peripherals: the watchdog reset behavior is
// stopped first, then the serial port is configured as a clocked slave,
// the watchdog is re-armed as the refresh interval timer, and the
// decoder lines are driven low to show digit 0.
func (r *Receiver) Init() error {
	r.config.Watchdog.Hold()

	err := r.config.Slave.Configure(hal.SlaveConfig{
		Source:      hal.ClockSubMain,
		Divisor:     BitRateDivisor,
		CaptureEdge: hal.EdgeRising,
		LSBFirst:    true,
		FrameBits:   FrameBits,
	})
	if err != nil {
		return err
	}
	r.config.Slave.HandleFrame(r.onFrame)
	if err = r.config.Slave.Enable(); err != nil {
		return err
	}

	r.config.Watchdog.HandleTick(r.onTick)
	err = r.config.Watchdog.StartInterval(hal.TimerConfig{
		Source:  hal.ClockSubMain,
		Divisor: TickDivisor,
	})
	if err != nil {
		return err
	}

	r.config.Pins.ConfigureOutput(display.LineMask)
	r.config.Pins.Update(0, display.LineMask)
	return nil
}

// onFrame is the serial receive handler: latch the byte, count it.
func (r *Receiver) onFrame(b byte) {
	atomic.StoreUint32(&r.sample, uint32(b))
	atomic.AddUint64(&r.frames, 1)
	if glog.V(4) {
		glog.Infof("frame %#02x", b)
	}
}

// onTick is the interval handler: re-derive the line pattern from the
// latched sample and apply it in one read-modify-write.
func (r *Receiver) onTick() {
	pattern := display.DigitOf(r.Sample()).Pattern()
	r.config.Pins.Update(pattern, ^pattern&display.LineMask)
}

// Sample reports the last received sample.
func (r *Receiver) Sample() byte {
	return byte(atomic.LoadUint32(&r.sample))
}

// Frames reports the total number of received frames.
func (r *Receiver) Frames() uint64 {
	return atomic.LoadUint64(&r.frames)
}

// Digit reports the digit derived from the last received sample.
func (r *Receiver) Digit() display.Digit {
	return display.DigitOf(r.Sample())
}

// Run implements Runnable. All work happens in the frame and tick
// handlers; Run is the low-power wait the main program parks in.
func (r *Receiver) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
