package comm

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sensorlink/seglink.go/pkg/device/msgs"
	fx "github.com/sensorlink/seglink.go/pkg/framework"
)

// chanReadWriter is an in-memory PacketReadWriter for tests.
type chanReadWriter struct {
	in  chan []byte
	out chan []byte
}

func newChanReadWriter() *chanReadWriter {
	return &chanReadWriter{
		in:  make(chan []byte, 4),
		out: make(chan []byte, 4),
	}
}

func (rw *chanReadWriter) ReadPacket() ([]byte, error) {
	pkt, ok := <-rw.in
	if !ok {
		return nil, io.EOF
	}
	return pkt, nil
}

func (rw *chanReadWriter) WritePacket(pkt []byte) error {
	rw.out <- pkt
	return nil
}

func (rw *chanReadWriter) sent(t *testing.T) *msgs.Typed {
	t.Helper()
	select {
	case pkt := <-rw.out:
		typed, err := msgs.DecodeTyped(pkt)
		require.NoError(t, err)
		return typed
	case <-time.After(time.Second):
		t.Fatal("no packet sent")
		return nil
	}
}

func TestPipeSendEvent(t *testing.T) {
	rw := newChanReadWriter()
	p := NewPipe(rw)
	ev := &msgs.DisplayChanged{}
	ev.Digit, ev.Sample, ev.Pattern = 3, 100, 3
	require.NoError(t, p.SendEventMsg(ev))

	typed := rw.sent(t)
	require.Equal(t, msgs.DisplayChangedTypeID, typed.TypeId)
	msg, err := typed.Decode()
	require.NoError(t, err)
	require.Equal(t, uint32(3), msg.(*msgs.DisplayChanged).Digit)
}

func TestPipeSendKindMismatch(t *testing.T) {
	p := NewPipe(newChanReadWriter())
	require.Panics(t, func() { p.SendEventMsg(&msgs.StatsQuery{}) })
	require.Panics(t, func() { p.SendCommandMsg(&msgs.DisplayChanged{}, 1) })
}

func TestPipeDispatch(t *testing.T) {
	rw := newChanReadWriter()
	p := NewPipe(rw)
	received := make(chan fx.Message, 1)
	p.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		require.Equal(t, uint32(7), typed.Sequence)
		received <- msg
		return nil
	})

	cmd := &msgs.PotSet{}
	cmd.Position = 0.25
	typed, err := msgs.TypedFrom(cmd)
	require.NoError(t, err)
	typed.Sequence = 7
	pkt, err := typed.Encode()
	require.NoError(t, err)
	rw.in <- pkt

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	select {
	case msg := <-received:
		require.Equal(t, float32(0.25), msg.(*msgs.PotSet).Position)
	case <-time.After(time.Second):
		t.Fatal("message not dispatched")
	}

	close(rw.in)
	require.Equal(t, io.EOF, <-done)
}

func TestPipeRepliesErrOnBadCommand(t *testing.T) {
	rw := newChanReadWriter()
	p := NewPipe(rw)

	bad := &msgs.Typed{}
	bad.TypeId = msgs.GroupCustom | 0x0001 // unknown command type
	bad.Sequence = 9
	pkt, err := bad.Encode()
	require.NoError(t, err)
	rw.in <- pkt
	close(rw.in)

	go p.Run(context.Background())

	reply := rw.sent(t)
	require.Equal(t, msgs.CommandErrTypeID, reply.TypeId)
	require.Equal(t, uint32(9), reply.Sequence)
}
