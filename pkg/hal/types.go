package hal

import "errors"

// ClockSource selects the clock input of a peripheral.
type ClockSource int

// Clock sources
const (
	// ClockSubMain is the sub-main clock (SMCLK-like), nominally 8MHz.
	ClockSubMain ClockSource = iota
	// ClockAux is the auxiliary low-frequency clock, nominally 32768Hz.
	ClockAux
)

// Rate returns the nominal frequency of the clock source in Hz.
func (s ClockSource) Rate() uint32 {
	if s == ClockAux {
		return 32768
	}
	return 8000000
}

// Edge identifies a clock edge.
type Edge int

// Edges
const (
	// EdgeRising captures data on the rising clock edge.
	EdgeRising Edge = iota
	// EdgeFalling captures data on the falling clock edge.
	EdgeFalling
)

var (
	// ErrNotConfigured indicates the peripheral was used before Configure.
	ErrNotConfigured = errors.New("peripheral not configured")
	// ErrBadDivisor indicates a zero clock divisor.
	ErrBadDivisor = errors.New("clock divisor must not be zero")
)

// SlaveConfig configures a synchronous serial port in slave role.
type SlaveConfig struct {
	// Source is the clock the bit-rate divisor applies to.
	Source ClockSource
	// Divisor is the bit-rate divisor relative to Source.
	Divisor uint16
	// CaptureEdge is the clock edge data is captured on.
	CaptureEdge Edge
	// LSBFirst shifts frames least-significant-bit first.
	LSBFirst bool
	// FrameBits is the number of data bits per frame.
	FrameBits int
}

// SlavePort is a synchronous serial port in slave role. A frame handler
// registered with HandleFrame plays the role of the receive interrupt:
// it is invoked once per completed frame with the latched byte and must
// be short and non-blocking.
type SlavePort interface {
	Configure(SlaveConfig) error
	HandleFrame(func(byte))
	// Enable releases the port from its reset state. The frame handler
	// must be registered before Enable.
	Enable() error
}

// MasterConfig configures a synchronous serial port in master role.
type MasterConfig struct {
	Source      ClockSource
	Divisor     uint16
	CaptureEdge Edge
	LSBFirst    bool
	FrameBits   int
}

// MasterPort is the transmitting end of a synchronous serial link.
type MasterPort interface {
	Configure(MasterConfig) error
	// WriteFrame clocks one frame out on the wire.
	WriteFrame(byte) error
}

// TimerConfig configures an interval timer.
type TimerConfig struct {
	Source  ClockSource
	Divisor uint32
}

// Watchdog is a watchdog peripheral which can be repurposed as a
// free-running interval timer.
type Watchdog interface {
	// Hold stops the watchdog's reset-on-timeout behavior.
	Hold()
	// StartInterval clears the counter and re-arms the watchdog in
	// interval mode: a tick fires every Divisor cycles of Source.
	StartInterval(TimerConfig) error
	// HandleTick registers the interval interrupt handler.
	HandleTick(func())
}

// PinGroup is a group of GPIO lines sharing one output latch.
type PinGroup interface {
	// ConfigureOutput switches the masked lines to output direction.
	ConfigureOutput(mask byte)
	// Update sets and clears lines in a single read-modify-write, so no
	// transient mix of old and new bits is observable on the latch.
	Update(set, clear byte)
	// Lines reads the current state of the output latch.
	Lines() byte
}

// ADC is an analog-to-digital converter channel scaled to 8 bits.
type ADC interface {
	Sample() (byte, error)
}
