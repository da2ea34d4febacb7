// Package sampler reads the keypad's analog line.
//
// The hardware reader only builds for RP2040/RP2350 targets; the fakes in
// this file build everywhere so the rest of the pipeline can be exercised
// on a host.
package sampler

import "github.com/harveysanders/picokeypad/keypad"

// Reader performs one blocking read of an analog channel.
type Reader interface {
	Read() keypad.Sample
}

// To12Bit scales a TinyGo ADC value to 12 bits. machine.ADC.Get always
// returns a left-aligned 16-bit value regardless of the converter's real
// resolution.
func To12Bit(v uint16) keypad.Sample {
	return keypad.Sample(v >> 4)
}

// Fixed returns the same sample on every read.
type Fixed keypad.Sample

func (f Fixed) Read() keypad.Sample { return keypad.Sample(f) }

// Script replays Samples in order and then keeps returning the last one.
// An empty Script reads as 0.
type Script struct {
	Samples []keypad.Sample
	next    int
}

func (s *Script) Read() keypad.Sample {
	if len(s.Samples) == 0 {
		return 0
	}
	v := s.Samples[s.next]
	if s.next < len(s.Samples)-1 {
		s.next++
	}
	return v
}

// Sweep walks the full ADC range in Step increments, wrapping back to 0
// after keypad.MaxSample. A zero Step is treated as 1.
type Sweep struct {
	Step keypad.Sample
	cur  int
}

func (s *Sweep) Read() keypad.Sample {
	v := keypad.Sample(s.cur)
	step := int(s.Step)
	if step == 0 {
		step = 1
	}
	s.cur += step
	if s.cur > int(keypad.MaxSample) {
		s.cur = 0
	}
	return v
}
