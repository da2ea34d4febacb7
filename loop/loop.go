// Package loop drives the sample, classify, present cycle.
package loop

import (
	"time"

	"github.com/harveysanders/picokeypad/keypad"
	"github.com/harveysanders/picokeypad/sampler"
)

// Presenter shows one reading.
type Presenter interface {
	Present(r keypad.Reading)
}

// Runner wires the pipeline. Sampler, Table and Presenter are required.
type Runner struct {
	Sampler   sampler.Reader
	Table     keypad.Table
	Vref      float32
	Presenter Presenter
	// Interval is the pause after each step.
	Interval time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
	// Activity, if set, runs after every step; the firmware toggles an LED.
	Activity func()
}

// Step runs a single iteration and returns what was presented.
func (r *Runner) Step() keypad.Reading {
	reading := r.Table.Read(r.Sampler.Read(), r.Vref)
	r.Presenter.Present(reading)
	return reading
}

// Run steps the pipeline iterations times, pausing Interval after each.
// iterations <= 0 never returns.
func (r *Runner) Run(iterations int) {
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for i := 0; iterations <= 0 || i < iterations; i++ {
		r.Step()
		if r.Activity != nil {
			r.Activity()
		}
		sleep(r.Interval)
	}
}
