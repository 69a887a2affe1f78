package stream

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte{0x01, 0x02, 0x03}))
	require.NoError(t, rw.WritePacket(nil))
	require.NoError(t, rw.WritePacket([]byte{0xff}))

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Empty(t, pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, pkt)

	_, err = rw.ReadPacket()
	require.Equal(t, io.EOF, err)
}

func TestPacketTooLarge(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(MaxPacketSize+1)))
	_, err := New(&buf).ReadPacket()
	require.Equal(t, ErrPacketTooLarge, err)
}

func TestPacketTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(4)))
	buf.Write([]byte{0x01, 0x02})
	_, err := New(&buf).ReadPacket()
	require.Equal(t, io.ErrUnexpectedEOF, err)
}
