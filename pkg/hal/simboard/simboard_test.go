package simboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sensorlink/seglink.go/pkg/hal"
)

func slaveConfig() hal.SlaveConfig {
	return hal.SlaveConfig{
		Source:      hal.ClockSubMain,
		Divisor:     32,
		CaptureEdge: hal.EdgeRising,
		LSBFirst:    true,
		FrameBits:   8,
	}
}

func TestWireDelivery(t *testing.T) {
	wire := NewWireDepth(16)
	require.NoError(t, wire.Master().Configure(hal.MasterConfig{Divisor: 32}))

	var lock sync.Mutex
	var frames []byte
	done := make(chan struct{}, 1)
	slave := wire.Slave()
	require.NoError(t, slave.Configure(slaveConfig()))
	slave.HandleFrame(func(b byte) {
		lock.Lock()
		frames = append(frames, b)
		if len(frames) == 3 {
			done <- struct{}{}
		}
		lock.Unlock()
	})
	require.NoError(t, slave.Enable())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go slave.Run(ctx)

	for _, b := range []byte{0x01, 0x80, 0xff} {
		require.NoError(t, wire.Master().WriteFrame(b))
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("frames not delivered")
	}
	lock.Lock()
	defer lock.Unlock()
	require.Equal(t, []byte{0x01, 0x80, 0xff}, frames)
}

func TestWireUnconfigured(t *testing.T) {
	wire := NewWire()
	require.Equal(t, hal.ErrNotConfigured, wire.Master().WriteFrame(1))
	require.Equal(t, hal.ErrNotConfigured, wire.Slave().Enable())
}

func TestWireBadDivisor(t *testing.T) {
	wire := NewWire()
	require.Equal(t, hal.ErrBadDivisor, wire.Master().Configure(hal.MasterConfig{}))
	require.Equal(t, hal.ErrBadDivisor, wire.Slave().Configure(hal.SlaveConfig{}))
}

func TestPinsLatch(t *testing.T) {
	pins := NewPins()
	pins.ConfigureOutput(0x0f)

	var observed []byte
	pins.Observe(func(lines byte) {
		observed = append(observed, lines)
	})

	pins.Update(0x05, 0x0a)
	require.Equal(t, byte(0x05), pins.Lines())
	// bits outside the output mask are ignored
	pins.Update(0xf0, 0x00)
	require.Equal(t, byte(0x05), pins.Lines())
	// unchanged updates do not notify
	pins.Update(0x05, 0x0a)
	pins.Update(0x08, 0x07)
	require.Equal(t, byte(0x08), pins.Lines())
	require.Equal(t, []byte{0x05, 0x08}, observed)
}

func TestWatchdogInterval(t *testing.T) {
	wdt := NewWatchdog()
	require.Equal(t, time.Duration(0), wdt.Period())

	err := wdt.StartInterval(hal.TimerConfig{Source: hal.ClockSubMain, Divisor: 32768})
	require.NoError(t, err)
	// 32768 cycles of the 8MHz sub-main clock
	require.Equal(t, 4096*time.Microsecond, wdt.Period())

	var ticks int
	wdt.HandleTick(func() { ticks++ })
	wdt.Fire()
	wdt.Fire()
	require.Equal(t, 2, ticks)

	wdt.Hold()
	require.Equal(t, time.Duration(0), wdt.Period())
}

func TestWatchdogBadConfig(t *testing.T) {
	wdt := NewWatchdog()
	require.Equal(t, hal.ErrBadDivisor, wdt.StartInterval(hal.TimerConfig{}))
	require.Equal(t, hal.ErrNotConfigured, wdt.Run(context.Background()))
}

func TestWatchdogRun(t *testing.T) {
	wdt := NewWatchdog()
	require.NoError(t, wdt.StartInterval(hal.TimerConfig{Source: hal.ClockAux, Divisor: 64}))

	tickCh := make(chan struct{}, 8)
	wdt.HandleTick(func() {
		select {
		case tickCh <- struct{}{}:
		default:
		}
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go wdt.Run(ctx)
	for i := 0; i < 3; i++ {
		select {
		case <-tickCh:
		case <-time.After(time.Second):
			t.Fatal("tick timeout")
		}
	}
}
