//go:build rp2040 || rp2350

// Command lcdkeypad shows the button pressed on a resistor-ladder keypad
// (ADC0) on a 16x2 HD44780 LCD behind an I2C backpack, and logs every
// sample to USB serial.
//
//	tinygo flash -target=pico ./lcdkeypad
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picokeypad/config"
	"github.com/harveysanders/picokeypad/display"
	"github.com/harveysanders/picokeypad/keypad"
	"github.com/harveysanders/picokeypad/loop"
	"github.com/harveysanders/picokeypad/sampler"
)

const (
	keypadPin = machine.ADC0 // GP26
	lcdSDA    = machine.GP4
	lcdSCL    = machine.GP5
	debugLED  = machine.GP21
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(100 * time.Millisecond)
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	cfg := config.Default()

	led := debugLED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// Setup LCD display over I2C
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: lcdSDA,
		SCL: lcdSCL,
	})
	if err != nil {
		printErrForever(logger, "configure I2C", slog.Any("reason", err))
	}

	layout := cfg.Layout()
	lcd, err := display.ConfigureLCD(machine.I2C0, display.DefaultAddrs, layout, logger)
	if err != nil {
		printErrForever(logger, "configure LCD", slog.Any("reason", err))
	}

	adc := sampler.NewADC(keypadPin)
	adc.Configure()

	p := display.NewPresenter(lcd, machine.Serial, layout)
	p.Splash(cfg.SplashMessage())
	logger.Info("keypad demo started",
		slog.Float64("vref", float64(config.Vref)),
		slog.Duration("interval", cfg.Interval),
	)

	r := &loop.Runner{
		Sampler:   adc,
		Table:     keypad.DefaultTable,
		Vref:      config.Vref,
		Presenter: p,
		Interval:  cfg.Interval,
		Activity:  func() { led.Set(!led.Get()) },
	}
	r.Run(0)
}

// printErrForever logs msg to serial @ 1hz, in case the serial monitor is
// not ready before the initial messages. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
