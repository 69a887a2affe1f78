// Package tx implements the transmitter-side firmware: on each interval
// tick it samples the potentiometer through the ADC and clocks the raw
// reading out as one serial frame.
package tx

import (
	"context"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/sensorlink/seglink.go/pkg/firmware/rx"
	"github.com/sensorlink/seglink.go/pkg/hal"
)

// Config assembles the peripherals the transmitter runs on.
type Config struct {
	ADC      hal.ADC
	Master   hal.MasterPort
	Watchdog hal.Watchdog
}

// Transmitter is the transmitter firmware.
type Transmitter struct {
	config Config

	frames uint64 // diagnostic count of transmitted frames
}

// New creates a Transmitter on the given peripherals.
func New(config Config) *Transmitter {
	return &Transmitter{config: config}
}

// Init brings up the peripherals. The serial timing mirrors the
// receiver's slave configuration; both sides derive it from the same
// sub-main clock and divisor.
func (t *Transmitter) Init() error {
	t.config.Watchdog.Hold()

	err := t.config.Master.Configure(hal.MasterConfig{
		Source:      hal.ClockSubMain,
		Divisor:     rx.BitRateDivisor,
		CaptureEdge: hal.EdgeRising,
		LSBFirst:    true,
		FrameBits:   rx.FrameBits,
	})
	if err != nil {
		return err
	}

	t.config.Watchdog.HandleTick(t.onTick)
	return t.config.Watchdog.StartInterval(hal.TimerConfig{
		Source:  hal.ClockSubMain,
		Divisor: rx.TickDivisor,
	})
}

// onTick samples the ADC and sends the conversion as one frame.
func (t *Transmitter) onTick() {
	v, err := t.config.ADC.Sample()
	if err != nil {
		glog.Errorf("ADC sample error: %v", err)
		return
	}
	if err = t.config.Master.WriteFrame(v); err != nil {
		glog.Errorf("write frame error: %v", err)
		return
	}
	atomic.AddUint64(&t.frames, 1)
}

// Frames reports the total number of transmitted frames.
func (t *Transmitter) Frames() uint64 {
	return atomic.LoadUint64(&t.frames)
}

// Run implements Runnable, parking until the context ends.
func (t *Transmitter) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
