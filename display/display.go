// Package display renders keypad readings on a character LCD and the
// serial debug log.
//
// Example usage:
//
//	p := display.NewPresenter(lcd, machine.Serial, display.DefaultLayout)
//	p.Splash(display.Message{Line1: []byte("Hello"), Line2: []byte("Press a key")})
//	for {
//		p.Present(keypad.DefaultTable.Read(adc.Read(), 3.3))
//		time.Sleep(250 * time.Millisecond)
//	}
package display

import (
	"errors"
	"io"

	"github.com/harveysanders/picokeypad/keypad"
)

var ErrNoLCD = errors.New("LCD not found")

// Driver is a stateful character LCD addressed by column and row. Print
// writes left to right from the cursor; the caller keeps text within the
// row. *hd44780i2c.Device satisfies it.
type Driver interface {
	ClearDisplay()
	CursorOn(on bool)
	SetCursor(col, row uint8)
	Print(data []byte)
}

// Layout describes the panel and how values are rendered on it.
type Layout struct {
	Columns uint8
	Rows    uint8
	// Cursor shows the underline cursor after Splash.
	Cursor bool
	// Precision is the number of decimals of the voltage on the LCD. Zero
	// selects DefaultLayout's precision; use WholeVolts for no decimals.
	Precision int
}

// WholeVolts as Layout.Precision renders the voltage without decimals.
const WholeVolts = -1

var DefaultLayout = Layout{
	Columns:   16,
	Rows:      2,
	Precision: 2,
}

// Message represents a two-line LCD message.
type Message struct {
	Line1 []byte
	Line2 []byte
}

const (
	voltagePrefix = "Voltage: "
	buttonPrefix  = "Button: "
	logPrecision  = 3
)

// Presenter owns an LCD and a log sink and writes one Reading to both.
// Buffers are allocated once so the render loop does not touch the heap.
type Presenter struct {
	drv    Driver
	log    io.Writer
	layout Layout
	line   []byte
	logBuf []byte
}

// WithDefaults fills zero sizes and precision from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	if l.Columns == 0 {
		l.Columns = DefaultLayout.Columns
	}
	if l.Rows == 0 {
		l.Rows = DefaultLayout.Rows
	}
	if l.Precision == 0 || l.Precision < WholeVolts {
		l.Precision = DefaultLayout.Precision
	}
	return l
}

// decimals is the voltage precision to render.
func (l Layout) decimals() int {
	if l.Precision == WholeVolts {
		return 0
	}
	return l.Precision
}

// NewPresenter creates a Presenter. A nil log discards debug lines.
func NewPresenter(drv Driver, log io.Writer, layout Layout) *Presenter {
	layout = layout.WithDefaults()
	if log == nil {
		log = io.Discard
	}
	return &Presenter{
		drv:    drv,
		log:    log,
		layout: layout,
		line:   make([]byte, 0, 2*int(layout.Columns)),
		logBuf: make([]byte, 0, 64),
	}
}

// Splash clears the LCD and shows msg. The cursor is left as configured
// by the Layout.
func (p *Presenter) Splash(msg Message) {
	p.drv.ClearDisplay()
	p.drv.CursorOn(p.layout.Cursor)
	p.line = append(p.line[:0], msg.Line1...)
	p.show(0)
	if p.layout.Rows > 1 {
		p.line = append(p.line[:0], msg.Line2...)
		p.show(1)
	}
}

// Present overwrites both LCD rows with r and logs it. Rows are padded
// to the full width so shorter text replaces longer text without a clear.
func (p *Presenter) Present(r keypad.Reading) {
	p.line = VoltageLine(p.line[:0], r.Voltage, p.layout.decimals())
	p.show(0)

	if p.layout.Rows > 1 {
		p.line = ButtonLine(p.line[:0], r.Button)
		p.show(1)
	}

	p.logBuf = AppendLogLine(p.logBuf[:0], r)
	p.log.Write(p.logBuf) //nolint:errcheck
}

// show prints the line buffer on row, fitted to the panel width.
func (p *Presenter) show(row uint8) {
	p.line = Fit(p.line, int(p.layout.Columns))
	p.drv.SetCursor(0, row)
	p.drv.Print(p.line)
}

// Fit truncates or space pads line to exactly width bytes.
func Fit(line []byte, width int) []byte {
	if len(line) > width {
		return line[:width]
	}
	for len(line) < width {
		line = append(line, ' ')
	}
	return line
}
