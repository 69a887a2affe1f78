package rx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sensorlink/seglink.go/pkg/firmware/display"
	"github.com/sensorlink/seglink.go/pkg/hal"
)

// fakeSlave captures the frame handler so tests can inject frames
// synchronously, the way the receive interrupt would run them.
type fakeSlave struct {
	config  hal.SlaveConfig
	handler func(byte)
	enabled bool
}

func (s *fakeSlave) Configure(config hal.SlaveConfig) error {
	s.config = config
	return nil
}

func (s *fakeSlave) HandleFrame(handler func(byte)) { s.handler = handler }

func (s *fakeSlave) Enable() error {
	if s.handler == nil {
		return hal.ErrNotConfigured
	}
	s.enabled = true
	return nil
}

type fakeWatchdog struct {
	held    bool
	config  hal.TimerConfig
	started bool
	handler func()
}

func (w *fakeWatchdog) Hold() { w.held = true }

func (w *fakeWatchdog) StartInterval(config hal.TimerConfig) error {
	w.config, w.started = config, true
	return nil
}

func (w *fakeWatchdog) HandleTick(handler func()) { w.handler = handler }

type fakePins struct {
	outMask byte
	latch   byte
	updates int
}

func (p *fakePins) ConfigureOutput(mask byte) { p.outMask |= mask }

func (p *fakePins) Update(set, clear byte) {
	p.latch = (p.latch | (set & p.outMask)) &^ (clear & p.outMask)
	p.updates++
}

func (p *fakePins) Lines() byte { return p.latch }

type receiverTestCtx struct {
	slave *fakeSlave
	wdt   *fakeWatchdog
	pins  *fakePins
	rx    *Receiver
}

func newReceiverTestCtx(t *testing.T) *receiverTestCtx {
	tctx := &receiverTestCtx{
		slave: &fakeSlave{},
		wdt:   &fakeWatchdog{},
		pins:  &fakePins{},
	}
	tctx.rx = New(Config{Slave: tctx.slave, Watchdog: tctx.wdt, Pins: tctx.pins})
	require.NoError(t, tctx.rx.Init())
	return tctx
}

func TestInit(t *testing.T) {
	tctx := newReceiverTestCtx(t)

	require.True(t, tctx.wdt.held)
	require.True(t, tctx.wdt.started)
	require.Equal(t, hal.TimerConfig{Source: hal.ClockSubMain, Divisor: 32768}, tctx.wdt.config)

	require.True(t, tctx.slave.enabled)
	require.Equal(t, hal.SlaveConfig{
		Source:      hal.ClockSubMain,
		Divisor:     32,
		CaptureEdge: hal.EdgeRising,
		LSBFirst:    true,
		FrameBits:   8,
	}, tctx.slave.config)

	require.Equal(t, display.LineMask, tctx.pins.outMask)

	// before any frame: sample zero, digit 0, all lines low
	require.Equal(t, byte(0), tctx.rx.Sample())
	require.Equal(t, uint64(0), tctx.rx.Frames())
	require.Equal(t, display.Digit(0), tctx.rx.Digit())
	require.Equal(t, byte(0), tctx.pins.Lines())
}

func TestFrameLatching(t *testing.T) {
	tctx := newReceiverTestCtx(t)
	values := []byte{0x00, 0x1b, 0x1c, 0xff, 0x80, 0x80}
	for n, v := range values {
		tctx.slave.handler(v)
		require.Equal(t, v, tctx.rx.Sample())
		require.Equal(t, uint64(n+1), tctx.rx.Frames())
	}
	require.Equal(t, values[len(values)-1], tctx.rx.Sample())
}

func TestTickDrivesDecoder(t *testing.T) {
	testCases := []struct {
		sample  byte
		pattern byte
	}{
		{0, 0x00},
		{27, 0x00},
		{28, 0x01},
		{100, 0x03},
		{150, 0x05},
		{223, 0x07},
		{224, 0x08},
		{255, 0x08},
	}
	tctx := newReceiverTestCtx(t)
	for _, tc := range testCases {
		tctx.slave.handler(tc.sample)
		tctx.wdt.handler()
		require.Equalf(t, tc.pattern, tctx.pins.Lines(), "sample %d", tc.sample)
	}
}

func TestTickIdempotent(t *testing.T) {
	tctx := newReceiverTestCtx(t)
	tctx.slave.handler(140)
	tctx.wdt.handler()
	lines := tctx.pins.Lines()
	tctx.wdt.handler()
	require.Equal(t, lines, tctx.pins.Lines())
}

func TestTickSingleUpdate(t *testing.T) {
	tctx := newReceiverTestCtx(t)
	before := tctx.pins.updates
	tctx.wdt.handler()
	// one read-modify-write per tick, no intermediate pattern
	require.Equal(t, before+1, tctx.pins.updates)
}
