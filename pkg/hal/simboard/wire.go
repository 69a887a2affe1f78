package simboard

import (
	"context"
	"sync"

	"github.com/golang/glog"

	"github.com/sensorlink/seglink.go/pkg/hal"
)

// Wire is a simulated synchronous serial link between two boards. The
// master end clocks frames in, the slave end delivers each frame to the
// registered handler from its Run loop. There is no framing, addressing
// or verification on the wire, matching the physical link.
type Wire struct {
	frameCh chan byte

	master Master
	slave  Slave
}

// DefaultWireDepth is the default in-flight frame capacity of a wire.
// A real link holds at most one frame in the shift register; a little
// slack keeps the simulated transmitter from stalling on scheduling.
const DefaultWireDepth = 1

// NewWire creates a wire with default capacity.
func NewWire() *Wire {
	return NewWireDepth(DefaultWireDepth)
}

// NewWireDepth creates a wire holding up to depth in-flight frames.
func NewWireDepth(depth int) *Wire {
	if depth < 1 {
		depth = 1
	}
	w := &Wire{frameCh: make(chan byte, depth)}
	w.master.wire = w
	w.slave.wire = w
	return w
}

// Master returns the transmitting end of the wire.
func (w *Wire) Master() *Master {
	return &w.master
}

// Slave returns the receiving end of the wire.
func (w *Wire) Slave() *Slave {
	return &w.slave
}

// Master implements hal.MasterPort over a wire.
type Master struct {
	wire   *Wire
	config hal.MasterConfig
	ready  bool
	lock   sync.Mutex
}

// Configure implements MasterPort.
func (m *Master) Configure(config hal.MasterConfig) error {
	if config.Divisor == 0 {
		return hal.ErrBadDivisor
	}
	m.lock.Lock()
	m.config, m.ready = config, true
	m.lock.Unlock()
	return nil
}

// WriteFrame implements MasterPort.
func (m *Master) WriteFrame(b byte) error {
	m.lock.Lock()
	ready := m.ready
	m.lock.Unlock()
	if !ready {
		return hal.ErrNotConfigured
	}
	m.wire.frameCh <- b
	return nil
}

// Slave implements hal.SlavePort over a wire. Its Run loop is the
// simulated counterpart of the receive interrupt dispatch.
type Slave struct {
	wire    *Wire
	config  hal.SlaveConfig
	handler func(byte)
	ready   bool
	enabled bool
	lock    sync.Mutex
}

// Configure implements SlavePort.
func (s *Slave) Configure(config hal.SlaveConfig) error {
	if config.Divisor == 0 {
		return hal.ErrBadDivisor
	}
	s.lock.Lock()
	s.config, s.ready = config, true
	s.enabled = false
	s.lock.Unlock()
	return nil
}

// HandleFrame implements SlavePort.
func (s *Slave) HandleFrame(handler func(byte)) {
	s.lock.Lock()
	s.handler = handler
	s.lock.Unlock()
}

// Enable implements SlavePort.
func (s *Slave) Enable() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.ready {
		return hal.ErrNotConfigured
	}
	s.enabled = true
	return nil
}

// Run implements Runnable. It delivers frames until the context is
// cancelled. Frames arriving while the port is disabled are dropped, as
// a held peripheral would drop them.
func (s *Slave) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b := <-s.wire.frameCh:
			s.lock.Lock()
			handler, enabled := s.handler, s.enabled
			s.lock.Unlock()
			if !enabled || handler == nil {
				if glog.V(3) {
					glog.Infof("slave disabled, frame %#02x dropped", b)
				}
				continue
			}
			handler(b)
		}
	}
}
