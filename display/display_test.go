package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harveysanders/picokeypad/keypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendVoltageRounding(t *testing.T) {
	tests := []struct {
		v    float32
		prec int
		want string
	}{
		{0, 2, "0.00"},
		{1.004999, 2, "1.00"},
		// float32(3.295) is 3.2950000762939453, above the half.
		{3.295, 2, "3.30"},
		// float32(0.125) is exact; ties round to even.
		{0.125, 2, "0.12"},
		{0.375, 2, "0.38"},
		{keypad.Voltage(keypad.MaxSample, 3.3), 2, "3.30"},
		{keypad.Voltage(keypad.MaxSample, 3.3), 3, "3.299"},
		{0, 3, "0.000"},
	}
	for _, tt := range tests {
		got := string(AppendVoltage(nil, tt.v, tt.prec))
		assert.Equal(t, tt.want, got, "v=%v prec=%d", tt.v, tt.prec)
	}
}

func TestAppendHex(t *testing.T) {
	assert.Equal(t, "000", string(AppendHex(nil, 0, 3)))
	assert.Equal(t, "00f", string(AppendHex(nil, 15, 3)))
	assert.Equal(t, "fff", string(AppendHex(nil, 4095, 3)))
	assert.Equal(t, "1000", string(AppendHex(nil, 4096, 3)))
	assert.Equal(t, "x19a", string(AppendHex([]byte("x"), 0x19a, 3)))
}

func TestAppendLogLine(t *testing.T) {
	got := AppendLogLine(nil, keypad.DefaultTable.Read(0, 3.3))
	assert.Equal(t, "Raw: 0x000, Voltage: 0.000V, Button: Right \n", string(got))

	got = AppendLogLine(nil, keypad.DefaultTable.Read(keypad.MaxSample, 3.3))
	assert.Equal(t, "Raw: 0xfff, Voltage: 3.299V, Button: None  \n", string(got))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", string(Fit([]byte("ab"), 4)))
	assert.Equal(t, "abcd", string(Fit([]byte("abcdef"), 4)))
	assert.Equal(t, "", string(Fit(nil, 0)))
}

func TestPresentScenarios(t *testing.T) {
	tests := []struct {
		name     string
		raw      keypad.Sample
		wantRow0 string
		wantRow1 string
		wantLog  string
	}{
		{
			name:     "zero",
			raw:      0,
			wantRow0: "Voltage: 0.00V  ",
			wantRow1: "Button: Right   ",
			wantLog:  "Raw: 0x000, Voltage: 0.000V, Button: Right \n",
		},
		{
			name:     "full scale",
			raw:      keypad.MaxSample,
			wantRow0: "Voltage: 3.30V  ",
			wantRow1: "Button: None    ",
			wantLog:  "Raw: 0xfff, Voltage: 3.299V, Button: None  \n",
		},
		{
			name:     "select",
			raw:      700,
			wantRow0: "Voltage: 0.56V  ",
			wantRow1: "Button: Select  ",
			wantLog:  "Raw: 0x2bc, Voltage: 0.564V, Button: Select\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid(16, 2)
			var log bytes.Buffer
			p := NewPresenter(grid, &log, DefaultLayout)

			p.Present(keypad.DefaultTable.Read(tt.raw, 3.3))

			assert.Equal(t, tt.wantRow0, grid.Row(0))
			assert.Equal(t, tt.wantRow1, grid.Row(1))
			assert.Equal(t, tt.wantLog, log.String())
			assert.Zero(t, grid.Clears(), "Present must overwrite, not clear")
		})
	}
}

func TestPresentOverwritesLongerContent(t *testing.T) {
	grid := NewGrid(16, 2)
	p := NewPresenter(grid, nil, DefaultLayout)

	p.Splash(Message{
		Line1: []byte("BlueCatSystems.com"),
		Line2: []byte("Press a key....."),
	})
	require.Equal(t, "BlueCatSystems.c", grid.Row(0))

	p.Present(keypad.DefaultTable.Read(100, 3.3))
	assert.Equal(t, "Voltage: 0.08V  ", grid.Row(0))
	assert.Equal(t, "Button: Up      ", grid.Row(1))

	p.Present(keypad.DefaultTable.Read(650, 3.3))
	assert.Equal(t, "Button: Select  ", grid.Row(1))

	p.Present(keypad.DefaultTable.Read(10, 3.3))
	assert.Equal(t, "Button: Right   ", grid.Row(1))
}

func TestSplash(t *testing.T) {
	grid := NewGrid(16, 2)
	grid.Print([]byte("garbage"))
	layout := DefaultLayout
	layout.Cursor = true
	p := NewPresenter(grid, nil, layout)

	p.Splash(Message{Line1: []byte("Hello"), Line2: []byte("Press a key")})

	assert.Equal(t, 1, grid.Clears())
	assert.Equal(t, "Hello           ", grid.Row(0))
	assert.Equal(t, "Press a key     ", grid.Row(1))
	_, _, visible := grid.Cursor()
	assert.True(t, visible)
}

func TestPresentWideSingleRowPanel(t *testing.T) {
	grid := NewGrid(20, 1)
	p := NewPresenter(grid, nil, Layout{Columns: 20, Rows: 1, Precision: 3})

	p.Present(keypad.DefaultTable.Read(2048, 3.3))
	assert.Equal(t, "Voltage: 1.650V     ", grid.Row(0))
}

func TestPresentIsStable(t *testing.T) {
	grid := NewGrid(16, 2)
	var log bytes.Buffer
	p := NewPresenter(grid, &log, DefaultLayout)
	r := keypad.DefaultTable.Read(300, 3.3)

	p.Present(r)
	first := grid.String()
	line := log.String()
	for i := 0; i < 20; i++ {
		p.Present(r)
		require.Equal(t, first, grid.String())
	}
	assert.Equal(t, strings.Repeat(line, 21), log.String())
}

func TestGrid(t *testing.T) {
	g := NewGrid(4, 2)
	g.SetCursor(2, 1)
	g.Print([]byte("abcdef"))
	assert.Equal(t, "    ", g.Row(0))
	assert.Equal(t, "  ab", g.Row(1))

	g.SetCursor(9, 7)
	col, row, _ := g.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	g.ClearDisplay()
	assert.Equal(t, "    ", g.Row(1))
	assert.Equal(t, "+----+\n|    |\n|    |\n+----+\n", g.String())
}

func TestLayoutWithDefaults(t *testing.T) {
	l := Layout{}.WithDefaults()
	assert.Equal(t, uint8(16), l.Columns)
	assert.Equal(t, uint8(2), l.Rows)
	assert.Equal(t, 2, l.Precision)

	l = Layout{Columns: 20, Rows: 4, Precision: WholeVolts}.WithDefaults()
	assert.Equal(t, Layout{Columns: 20, Rows: 4, Precision: WholeVolts}, l)

	assert.Equal(t, 2, Layout{Precision: -7}.WithDefaults().Precision)
}

func TestPresentWholeVolts(t *testing.T) {
	grid := NewGrid(16, 2)
	p := NewPresenter(grid, nil, Layout{Precision: WholeVolts})

	p.Present(keypad.DefaultTable.Read(2048, 3.3))
	assert.Equal(t, "Voltage: 2V     ", grid.Row(0))
	assert.Equal(t, "Button: None    ", grid.Row(1))
}
