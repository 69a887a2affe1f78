// Package websocket adapts websocket connections to packet streams.
package websocket

import (
	"net/http"

	"golang.org/x/net/websocket"
)

// ReadWriter implements PacketReadWriter over a websocket connection.
// Each binary websocket message carries exactly one packet.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close closes the underlying connection.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

// Handler builds an http.Handler which serves each websocket connection
// with serve. The connection is closed when serve returns.
func Handler(serve func(*ReadWriter)) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		serve(New(conn))
	})
}
