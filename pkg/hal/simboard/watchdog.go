package simboard

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/sensorlink/seglink.go/pkg/hal"
)

// Watchdog simulates a watchdog peripheral re-armed as an interval
// timer. The reset-on-timeout behavior itself is not simulated: Hold
// records the held state and StartInterval switches to interval mode,
// which is the only mode this system ever runs the peripheral in.
type Watchdog struct {
	held    bool
	period  time.Duration
	handler func()
	lock    sync.Mutex
}

// NewWatchdog creates a held watchdog.
func NewWatchdog() *Watchdog {
	return &Watchdog{held: true}
}

// Hold implements Watchdog.
func (w *Watchdog) Hold() {
	w.lock.Lock()
	w.held, w.period = true, 0
	w.lock.Unlock()
}

// StartInterval implements Watchdog.
func (w *Watchdog) StartInterval(config hal.TimerConfig) error {
	if config.Divisor == 0 {
		return hal.ErrBadDivisor
	}
	period := time.Duration(config.Divisor) * time.Second / time.Duration(config.Source.Rate())
	if period <= 0 {
		period = time.Nanosecond
	}
	w.lock.Lock()
	w.held, w.period = false, period
	w.lock.Unlock()
	if glog.V(2) {
		glog.Infof("watchdog interval mode, period %v", period)
	}
	return nil
}

// HandleTick implements Watchdog.
func (w *Watchdog) HandleTick(handler func()) {
	w.lock.Lock()
	w.handler = handler
	w.lock.Unlock()
}

// Period reports the configured interval, zero when held.
func (w *Watchdog) Period() time.Duration {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.held {
		return 0
	}
	return w.period
}

// Fire invokes the tick handler once, regardless of the timer state.
// Intended for tests driving ticks deterministically.
func (w *Watchdog) Fire() {
	w.lock.Lock()
	handler := w.handler
	w.lock.Unlock()
	if handler != nil {
		handler()
	}
}

// Run implements Runnable: it fires ticks at the configured cadence
// until the context is cancelled. StartInterval must be called before
// Run; once armed, the timer runs for the lifetime of the context.
func (w *Watchdog) Run(ctx context.Context) error {
	period := w.Period()
	if period == 0 {
		return hal.ErrNotConfigured
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.lock.Lock()
			handler, held := w.handler, w.held
			w.lock.Unlock()
			if !held && handler != nil {
				handler()
			}
		}
	}
}
