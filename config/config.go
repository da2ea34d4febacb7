// Package config holds the board constants of the keypad demo and the
// settings shared with the host tools.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/harveysanders/picokeypad/display"
	"github.com/harveysanders/picokeypad/keypad"
)

const (
	// Vref is the ADC full-scale voltage. The Pico runs at 3.3VDC.
	Vref float32 = 3.3
	// Interval is the pause between samples.
	Interval = 250 * time.Millisecond
	// BaudRate of the host side of the USB serial link.
	BaudRate = 115200
)

var ErrUnknownButton = errors.New("config: unknown button")

// Config represents the keypad configuration.
type Config struct {
	Serial     SerialConfig      `yaml:"serial"`
	ADC        ADCConfig         `yaml:"adc"`
	Display    DisplayConfig     `yaml:"display"`
	Interval   time.Duration     `yaml:"interval"`
	Thresholds []ThresholdConfig `yaml:"thresholds"`
	Splash     SplashConfig      `yaml:"splash"`
}

// SerialConfig contains serial port configuration for the monitor.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

type ADCConfig struct {
	Vref float32 `yaml:"vref"`
}

type DisplayConfig struct {
	Columns   uint8 `yaml:"columns"`
	Rows      uint8 `yaml:"rows"`
	Cursor    bool  `yaml:"cursor"`
	Precision int   `yaml:"precision"`
}

// ThresholdConfig is one keypad.Threshold; Button is the button name.
type ThresholdConfig struct {
	Below  uint16 `yaml:"below"`
	Button string `yaml:"button"`
}

type SplashConfig struct {
	Line1 string `yaml:"line1"`
	Line2 string `yaml:"line2"`
}

// Default returns the configuration of the reference board.
func Default() *Config {
	c := &Config{
		Serial: SerialConfig{
			Port:     "/dev/ttyACM0",
			BaudRate: BaudRate,
		},
		ADC: ADCConfig{Vref: Vref},
		Display: DisplayConfig{
			Columns:   display.DefaultLayout.Columns,
			Rows:      display.DefaultLayout.Rows,
			Precision: display.DefaultLayout.Precision,
		},
		Interval: Interval,
		Splash: SplashConfig{
			Line1: "BlueCatSystems",
			Line2: "Press a key...",
		},
	}
	c.Thresholds = thresholdsFrom(keypad.DefaultTable)
	return c
}

func thresholdsFrom(t keypad.Table) []ThresholdConfig {
	out := make([]ThresholdConfig, len(t))
	for i, th := range t {
		out[i] = ThresholdConfig{Below: uint16(th.Below), Button: th.Button.String()}
	}
	return out
}

// Table converts Thresholds and validates the result.
func (c *Config) Table() (keypad.Table, error) {
	t := make(keypad.Table, len(c.Thresholds))
	for i, th := range c.Thresholds {
		b, ok := keypad.ParseButton(th.Button)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownButton, th.Button)
		}
		t[i] = keypad.Threshold{Below: keypad.Sample(th.Below), Button: b}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Layout returns the display settings as a display.Layout.
func (c *Config) Layout() display.Layout {
	return display.Layout{
		Columns:   c.Display.Columns,
		Rows:      c.Display.Rows,
		Cursor:    c.Display.Cursor,
		Precision: c.Display.Precision,
	}
}

// SplashMessage returns the boot banner.
func (c *Config) SplashMessage() display.Message {
	return display.Message{
		Line1: []byte(c.Splash.Line1),
		Line2: []byte(c.Splash.Line2),
	}
}

// ensureDefaults fills zero fields from Default.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}
	if c.ADC.Vref == 0 {
		c.ADC.Vref = def.ADC.Vref
	}
	if c.Display.Columns == 0 {
		c.Display.Columns = def.Display.Columns
	}
	if c.Display.Rows == 0 {
		c.Display.Rows = def.Display.Rows
	}
	// Precision -1 (display.WholeVolts) is kept.
	if c.Display.Precision == 0 {
		c.Display.Precision = def.Display.Precision
	}
	if c.Interval == 0 {
		c.Interval = def.Interval
	}
	if len(c.Thresholds) == 0 {
		c.Thresholds = def.Thresholds
	}
}
