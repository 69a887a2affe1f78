// Package sim models the external electronics around the two
// microcontrollers: the potentiometer divider feeding the transmitter's
// ADC and the BCD-to-7-segment decoder driven by the receiver's pins.
package sim

import (
	"math"
	"sync"
)

// Pot models a potentiometer in a voltage divider. Its wiper position
// ranges 0..1 and quantizes to the full 8-bit ADC scale.
type Pot struct {
	position float64
	lock     sync.Mutex
}

// NewPot creates a Pot at the given wiper position.
func NewPot(position float64) *Pot {
	p := &Pot{}
	p.Set(position)
	return p
}

// Set moves the wiper, clamping to 0..1, and returns the effective
// position.
func (p *Pot) Set(position float64) float64 {
	if position < 0 || math.IsNaN(position) {
		position = 0
	} else if position > 1 {
		position = 1
	}
	p.lock.Lock()
	p.position = position
	p.lock.Unlock()
	return position
}

// Position reports the current wiper position.
func (p *Pot) Position() float64 {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.position
}

// Reading converts the wiper voltage to an 8-bit ADC conversion.
func (p *Pot) Reading() byte {
	return byte(math.Round(p.Position() * 255))
}
