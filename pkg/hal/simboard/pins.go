package simboard

import "sync"

// Pins simulates a GPIO output latch. An optional observer is notified
// whenever the latch changes; it stands in for whatever is wired to the
// lines, e.g. the decoder inputs.
type Pins struct {
	outMask  byte
	latch    byte
	observer func(byte)
	lock     sync.Mutex
}

// NewPins creates an unconfigured pin group.
func NewPins() *Pins {
	return &Pins{}
}

// Observe registers the latch observer. The observer runs with the
// complete new latch value after each change, never a partial update.
func (p *Pins) Observe(fn func(byte)) {
	p.lock.Lock()
	p.observer = fn
	p.lock.Unlock()
}

// ConfigureOutput implements PinGroup.
func (p *Pins) ConfigureOutput(mask byte) {
	p.lock.Lock()
	p.outMask |= mask
	p.lock.Unlock()
}

// Update implements PinGroup. Bits outside the output mask are ignored.
func (p *Pins) Update(set, clear byte) {
	p.lock.Lock()
	old := p.latch
	p.latch = (p.latch | (set & p.outMask)) &^ (clear & p.outMask)
	changed := p.latch != old
	observer, latch := p.observer, p.latch
	p.lock.Unlock()
	if changed && observer != nil {
		observer(latch)
	}
}

// Lines implements PinGroup.
func (p *Pins) Lines() byte {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.latch
}
