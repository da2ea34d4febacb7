// Package keypad maps raw ADC samples from a resistor-ladder keypad
// (the common 16x2 "LCD keypad shield") to the button being pressed.
//
// Every button pulls the shared analog line to a different voltage, so
// a single ADC channel is enough to tell them apart. Classification is
// an ordered scan over a small threshold table expressed in raw 12-bit
// ADC units.
package keypad

import (
	"errors"
	"strconv"
	"strings"
)

// MaxSample is the largest value a 12-bit ADC can produce.
const MaxSample Sample = 4095

// fullScale is the number of ADC steps (2^12).
const fullScale = 4096

var (
	ErrEmptyTable   = errors.New("keypad: empty threshold table")
	ErrNotAscending = errors.New("keypad: thresholds not strictly ascending")
	ErrOutOfRange   = errors.New("keypad: threshold above ADC range")
	ErrBadButton    = errors.New("keypad: unknown button in table")
)

// Sample is a raw 12-bit ADC reading in [0, 4095].
type Sample uint16

// Button identifies a key on the keypad.
type Button uint8

const (
	None Button = iota
	Right
	Up
	Down
	Left
	Select
)

var names = [...]string{
	None:   "None",
	Right:  "Right",
	Up:     "Up",
	Down:   "Down",
	Left:   "Left",
	Select: "Select",
}

// Labels are padded to LabelWidth so a shorter name fully overwrites a
// longer one already on the LCD.
var labels = [...]string{
	None:   "None  ",
	Right:  "Right ",
	Up:     "Up    ",
	Down:   "Down  ",
	Left:   "Left  ",
	Select: "Select",
}

// LabelWidth is the fixed width of every Button.Label.
const LabelWidth = 6

// Buttons lists every Button value, None last.
var Buttons = [...]Button{Right, Up, Down, Left, Select, None}

func (b Button) String() string {
	if int(b) < len(names) {
		return names[b]
	}
	return "Button(" + strconv.Itoa(int(b)) + ")"
}

// Label returns the button name space-padded to LabelWidth.
func (b Button) Label() string {
	if int(b) < len(labels) {
		return labels[b]
	}
	return "??????"
}

// ParseButton is the inverse of String and Label. Surrounding whitespace
// is ignored.
func ParseButton(s string) (Button, bool) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if n == s {
			return Button(i), true
		}
	}
	return None, false
}

// Threshold assigns Button to every sample strictly below Below that an
// earlier entry has not already claimed.
type Threshold struct {
	Below  Sample
	Button Button
}

// Table is an ordered set of thresholds, ascending by Below. Samples at or
// above the last bound classify as None.
type Table []Threshold

// DefaultTable holds the bounds of the reference keypad shield when read
// through a 3.3V 12-bit ADC.
var DefaultTable = Table{
	{Below: 50, Button: Right},
	{Below: 250, Button: Up},
	{Below: 450, Button: Down},
	{Below: 600, Button: Left},
	{Below: 920, Button: Select},
}

// Classify returns the button of the first threshold whose bound strictly
// exceeds raw. A sample equal to a bound belongs to the next entry.
func (t Table) Classify(raw Sample) Button {
	for _, th := range t {
		if raw < th.Below {
			return th.Button
		}
	}
	return None
}

// Validate reports whether t is usable: non-empty, strictly ascending,
// within the ADC range and naming only known buttons.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	var prev Sample
	for i, th := range t {
		if int(th.Button) >= len(names) {
			return ErrBadButton
		}
		if th.Below > MaxSample+1 {
			return ErrOutOfRange
		}
		if i > 0 && th.Below <= prev {
			return ErrNotAscending
		}
		prev = th.Below
	}
	return nil
}

// Classify uses DefaultTable.
func Classify(raw Sample) Button {
	return DefaultTable.Classify(raw)
}

// Voltage converts raw to volts for an ADC whose full scale is vref.
func Voltage(raw Sample, vref float32) float32 {
	return float32(raw) * (vref / fullScale)
}

// Reading is one classified sample, as shown on the LCD and logged.
type Reading struct {
	Raw     Sample
	Voltage float32
	Button  Button
}

// Read classifies raw against t and derives its voltage.
func (t Table) Read(raw Sample, vref float32) Reading {
	return Reading{
		Raw:     raw,
		Voltage: Voltage(raw, vref),
		Button:  t.Classify(raw),
	}
}
