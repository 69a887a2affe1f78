package simboard

import "github.com/sensorlink/seglink.go/pkg/hal"

// ADCFunc adapts a sampling func to hal.ADC. The simulated converter
// is ideal: no noise, no conversion error.
type ADCFunc func() byte

// Sample implements ADC.
func (f ADCFunc) Sample() (byte, error) {
	return f(), nil
}

var _ hal.ADC = ADCFunc(nil)
