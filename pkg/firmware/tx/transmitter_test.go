package tx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sensorlink/seglink.go/pkg/hal"
)

type fakeMaster struct {
	config hal.MasterConfig
	frames []byte
	err    error
}

func (m *fakeMaster) Configure(config hal.MasterConfig) error {
	m.config = config
	return nil
}

func (m *fakeMaster) WriteFrame(b byte) error {
	if m.err != nil {
		return m.err
	}
	m.frames = append(m.frames, b)
	return nil
}

type fakeWatchdog struct {
	held    bool
	config  hal.TimerConfig
	handler func()
}

func (w *fakeWatchdog) Hold() { w.held = true }

func (w *fakeWatchdog) StartInterval(config hal.TimerConfig) error {
	w.config = config
	return nil
}

func (w *fakeWatchdog) HandleTick(handler func()) { w.handler = handler }

func TestTransmit(t *testing.T) {
	var reading byte
	master := &fakeMaster{}
	wdt := &fakeWatchdog{}
	tx := New(Config{
		ADC: adcFunc(func() (byte, error) {
			return reading, nil
		}),
		Master:   master,
		Watchdog: wdt,
	})
	require.NoError(t, tx.Init())
	require.True(t, wdt.held)
	require.Equal(t, hal.TimerConfig{Source: hal.ClockSubMain, Divisor: 32768}, wdt.config)
	require.Equal(t, uint16(32), master.config.Divisor)
	require.True(t, master.config.LSBFirst)

	for _, v := range []byte{0, 28, 255} {
		reading = v
		wdt.handler()
	}
	require.Equal(t, []byte{0, 28, 255}, master.frames)
	require.Equal(t, uint64(3), tx.Frames())
}

func TestTransmitErrors(t *testing.T) {
	master := &fakeMaster{err: errors.New("wire stuck")}
	wdt := &fakeWatchdog{}
	tx := New(Config{
		ADC:      adcFunc(func() (byte, error) { return 1, nil }),
		Master:   master,
		Watchdog: wdt,
	})
	require.NoError(t, tx.Init())
	wdt.handler()
	require.Equal(t, uint64(0), tx.Frames())

	badADC := New(Config{
		ADC:      adcFunc(func() (byte, error) { return 0, errors.New("open channel") }),
		Master:   &fakeMaster{},
		Watchdog: wdt,
	})
	require.NoError(t, badADC.Init())
	wdt.handler()
	require.Equal(t, uint64(0), badADC.Frames())
}

type adcFunc func() (byte, error)

func (f adcFunc) Sample() (byte, error) { return f() }
