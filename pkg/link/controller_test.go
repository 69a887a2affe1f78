package link

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sensorlink/seglink.go/pkg/device/comm"
	env "github.com/sensorlink/seglink.go/pkg/device/env/device"
)

func testEnv() *env.Env {
	return &env.Env{
		Config:    env.NewConfig(),
		Registrar: &comm.RegistrarMux{},
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestEndToEnd(t *testing.T) {
	c, err := NewController(testEnv(), 0.5)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.wire.Slave().Run(ctx)

	// one transmit tick carries the conversion over the wire
	c.txWatchdog.Fire()
	waitFor(t, func() bool { return c.receiver.Frames() == 1 })
	require.Equal(t, byte(128), c.receiver.Sample())

	// one refresh tick latches the bucketed digit onto the lines
	c.rxWatchdog.Fire()
	require.Equal(t, byte(4), c.pins.Lines())

	select {
	case lines := <-c.lineCh:
		require.Equal(t, byte(4), lines)
	case <-time.After(time.Second):
		t.Fatal("no latch change observed")
	}
}

func TestPotTravelsFullScale(t *testing.T) {
	c, err := NewController(testEnv(), 0)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.wire.Slave().Run(ctx)

	positions := []struct {
		pos   float64
		lines byte
	}{
		{0, 0},
		{0.2, 1},
		{1, 8},
	}
	frames := uint64(0)
	for _, p := range positions {
		c.pot.Set(p.pos)
		c.txWatchdog.Fire()
		frames++
		want := frames
		waitFor(t, func() bool { return c.receiver.Frames() == want })
		c.rxWatchdog.Fire()
		require.Equal(t, p.lines, c.pins.Lines(), "position %v", p.pos)
	}
}

func TestStats(t *testing.T) {
	c, err := NewController(testEnv(), 1)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.wire.Slave().Run(ctx)

	c.txWatchdog.Fire()
	waitFor(t, func() bool { return c.receiver.Frames() == 1 })

	stats := c.stats()
	require.Equal(t, uint32(255), stats.Sample)
	require.Equal(t, uint64(1), stats.Frames)
	require.Equal(t, uint32(8), stats.Digit)
}
