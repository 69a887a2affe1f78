package panel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifyCurrent(t *testing.T) {
	p := NewConfig().NewPanel()
	_, ok := p.Current()
	require.False(t, ok)
	p.Notify(State{Digit: 8, Sample: 250, Frames: 3, Pattern: 8})
	state, ok := p.Current()
	require.True(t, ok)
	require.Equal(t, 8, state.Digit)
	require.Equal(t, "abcdefg", state.Segments)
}

func TestViewerStream(t *testing.T) {
	p := NewConfig().NewPanel()
	p.Notify(State{Digit: 1, Pattern: 1})
	ch := p.subscribe()
	defer p.unsubscribe(ch)

	// a new viewer receives the current state first
	state := <-ch
	require.Equal(t, 1, state.Digit)
	require.Equal(t, "bc", state.Segments)

	p.Notify(State{Digit: 4, Pattern: 4})
	state = <-ch
	require.Equal(t, 4, state.Digit)
	require.Equal(t, "bcfg", state.Segments)
}

func TestSlowViewerSkips(t *testing.T) {
	p := NewConfig().NewPanel()
	ch := p.subscribe()
	defer p.unsubscribe(ch)
	for i := 0; i < 16; i++ {
		p.Notify(State{Digit: i % 9})
	}
	// channel buffers a few states and drops the rest
	require.True(t, len(ch) <= cap(ch))
}

func TestStateJSON(t *testing.T) {
	encoded, err := json.Marshal(&State{Digit: 2, Sample: 60, Frames: 7, Pattern: 2, Segments: "abdeg"})
	require.NoError(t, err)
	require.JSONEq(t,
		`{"digit":2,"sample":60,"frames":7,"pattern":2,"segments":"abdeg"}`,
		string(encoded))
}
