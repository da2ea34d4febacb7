// Package monitor follows the keypad firmware's serial debug output on a
// host and checks every reported button against the classifier.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/harveysanders/picokeypad/keypad"
)

var ErrBadLine = errors.New("not a keypad reading")

// voltageTolerance covers the 3 decimals the firmware prints.
const voltageTolerance = 0.0015

// ParseLine parses one debug line of the firmware.
// Format: Raw: 0x<hex>, Voltage: <volts>V, Button: <label>
// Example: Raw: 0x2bc, Voltage: 0.564V, Button: Select
func ParseLine(line string) (keypad.Reading, error) {
	line = strings.TrimRight(line, "\r\n")
	rest, ok := strings.CutPrefix(line, "Raw: 0x")
	if !ok {
		return keypad.Reading{}, fmt.Errorf("%w: missing raw prefix", ErrBadLine)
	}
	hexStr, rest, ok := strings.Cut(rest, ", Voltage: ")
	if !ok {
		return keypad.Reading{}, fmt.Errorf("%w: missing voltage field", ErrBadLine)
	}
	vStr, label, ok := strings.Cut(rest, "V, Button: ")
	if !ok {
		return keypad.Reading{}, fmt.Errorf("%w: missing button field", ErrBadLine)
	}

	raw, err := strconv.ParseUint(hexStr, 16, 16)
	if err != nil {
		return keypad.Reading{}, fmt.Errorf("%w: invalid raw: %w", ErrBadLine, err)
	}
	if raw > uint64(keypad.MaxSample) {
		return keypad.Reading{}, fmt.Errorf("%w: raw out of range: %d (max %d)", ErrBadLine, raw, keypad.MaxSample)
	}

	v, err := strconv.ParseFloat(vStr, 32)
	if err != nil {
		return keypad.Reading{}, fmt.Errorf("%w: invalid voltage: %w", ErrBadLine, err)
	}

	b, ok := keypad.ParseButton(label)
	if !ok {
		return keypad.Reading{}, fmt.Errorf("%w: unknown button %q", ErrBadLine, label)
	}

	return keypad.Reading{
		Raw:     keypad.Sample(raw),
		Voltage: float32(v),
		Button:  b,
	}, nil
}

// Event is one reported reading with the host's verdict on it.
type Event struct {
	Reading keypad.Reading
	// Expected is the button the host classifier assigns to Reading.Raw.
	Expected keypad.Button
	// VoltageOK is false when the reported voltage does not match Raw.
	VoltageOK bool
	// Changed is set when the button differs from the previous reading.
	Changed bool
}

// Agrees reports whether the firmware and the host agree on the reading.
func (e Event) Agrees() bool {
	return e.Reading.Button == e.Expected && e.VoltageOK
}

// Monitor checks readings against a threshold table.
type Monitor struct {
	Table  keypad.Table
	Vref   float32
	Logger *slog.Logger

	last keypad.Button
	seen bool
}

// Observe evaluates r and remembers its button for change detection.
func (m *Monitor) Observe(r keypad.Reading) Event {
	want := keypad.Voltage(r.Raw, m.Vref)
	ev := Event{
		Reading:   r,
		Expected:  m.Table.Classify(r.Raw),
		VoltageOK: math.Abs(float64(r.Voltage-want)) <= voltageTolerance,
		Changed:   !m.seen || r.Button != m.last,
	}
	m.last, m.seen = r.Button, true
	return ev
}

// Run reads lines from r until EOF or ctx is done, handing every parsed
// reading to handle. Lines that are not readings, such as the firmware's
// boot log, are skipped. Cancelling ctx does not interrupt a blocked read;
// close r to unblock it.
func (m *Monitor) Run(ctx context.Context, r io.Reader, handle func(Event)) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		reading, err := ParseLine(line)
		if err != nil {
			logger.Debug("skipping line", slog.String("line", line), slog.Any("reason", err))
			continue
		}
		ev := m.Observe(reading)
		if !ev.Agrees() {
			logger.Warn("firmware disagrees with host",
				slog.Uint64("raw", uint64(reading.Raw)),
				slog.String("reported", reading.Button.String()),
				slog.String("expected", ev.Expected.String()),
				slog.Bool("voltageOK", ev.VoltageOK),
			)
		}
		handle(ev)
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to read serial stream: %w", err)
	}
	return nil
}
