package framework

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type testMsg struct {
	val int
}

func (m *testMsg) NewMessage() Message { return &testMsg{} }

func TestPhaseOrder(t *testing.T) {
	l := NewLoop()
	var phases []int
	record := func(cc ControlContext) error {
		phases = append(phases, cc.Phase())
		return nil
	}
	l.AddController(PhIdle, ControlFunc(record))
	l.AddController(PhFirst, ControlFunc(record))
	l.AddController(PhControl, ControlFunc(record))
	l.runIteration(context.Background())
	require.Equal(t, []int{PhFirst, PhControl, PhIdle}, phases)
}

func TestMessageDelivery(t *testing.T) {
	l := NewLoop()
	var got []int
	l.AddController(PhControl, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			if msg, ok := mc.CurrentMessage().(*testMsg); ok {
				mc.MessageTaken()
				got = append(got, msg.val)
			}
		}))
		return nil
	}))
	l.PostMessage(&testMsg{val: 1})
	l.PostMessage(&testMsg{val: 2})
	l.runIteration(context.Background())
	require.Equal(t, []int{1, 2}, got)

	// taken messages never reappear
	l.runIteration(context.Background())
	require.Equal(t, []int{1, 2}, got)
}

func TestMessageLeftUntaken(t *testing.T) {
	l := NewLoop()
	var seenAtIdle int
	l.AddController(PhControl, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			// peek without taking
		}))
		return nil
	}))
	l.AddController(PhIdle, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			if _, ok := mc.CurrentMessage().(*testMsg); ok {
				mc.MessageTaken()
				seenAtIdle++
			}
		}))
		return nil
	}))
	l.PostMessage(&testMsg{})
	l.runIteration(context.Background())
	require.Equal(t, 1, seenAtIdle)
}

func TestOneShotHooks(t *testing.T) {
	l := NewLoop()
	var runs int
	l.PostRunAt(PhControl, ControlFunc(func(cc ControlContext) error {
		runs++
		return nil
	}))
	l.runIteration(context.Background())
	l.runIteration(context.Background())
	require.Equal(t, 1, runs)
}

func TestLoopCtlFromContext(t *testing.T) {
	l := NewLoop()
	var fromCtx LoopControl
	l.AddController(PhSense, ControlFunc(func(cc ControlContext) error {
		fromCtx = LoopCtlFrom(cc.Context())
		return nil
	}))
	l.runIteration(context.Background())
	require.NotNil(t, fromCtx)
}
