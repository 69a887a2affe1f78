package stream

import (
	"context"
	"net"

	"github.com/sensorlink/seglink.go/pkg/device"
	"github.com/sensorlink/seglink.go/pkg/device/comm"
)

// Connector implements device.Connector over a direct TCP connection.
// There is no registry behind a plain stream, so Discover reports the
// single endpoint the Connector was built for.
type Connector struct {
	Addr string
	Ref  device.Ref
}

// NewConnector creates a Connector dialing addr.
func NewConnector(addr string, ref device.Ref) *Connector {
	return &Connector{Addr: addr, Ref: ref}
}

// Discover implements Connector.
func (c *Connector) Discover(ctx context.Context) ([]device.Info, error) {
	return []device.Info{{Ref: c.Ref}}, nil
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref device.Ref) (device.Conn, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	conn := &Conn{netConn: nc}
	conn.Init(New(nc))
	return conn, nil
}

// Conn implements device.Conn over TCP.
type Conn struct {
	comm.Conn
	netConn net.Conn
}

// Close implements io.Closer.
func (c *Conn) Close() error {
	return c.netConn.Close()
}
