//go:build rp2040 || rp2350

package sampler

import (
	"machine"

	"github.com/harveysanders/picokeypad/keypad"
)

// ADC reads one analog input pin of the Pico.
type ADC struct {
	adc machine.ADC
}

// NewADC returns a reader for pin. Configure must be called before the
// first Read.
func NewADC(pin machine.Pin) *ADC {
	return &ADC{adc: machine.ADC{Pin: pin}}
}

// Configure powers up the ADC block and sets the pin to high impedance.
// It is safe to call once at startup only.
func (a *ADC) Configure() {
	machine.InitADC()
	a.adc.Configure(machine.ADCConfig{})
}

func (a *ADC) Read() keypad.Sample {
	return To12Bit(a.adc.Get())
}
