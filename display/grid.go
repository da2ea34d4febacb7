package display

import "strings"

// Grid is an in-memory HD44780: a rows x columns character RAM with a
// write cursor. Text printed past the last column is dropped. It backs
// the host simulator and the tests.
type Grid struct {
	cols, rows int
	cells      [][]byte
	col, row   int
	cursor     bool
	clears     int
}

// NewGrid returns a blank cols x rows grid.
func NewGrid(cols, rows uint8) *Grid {
	g := &Grid{cols: int(cols), rows: int(rows)}
	g.cells = make([][]byte, g.rows)
	for i := range g.cells {
		g.cells[i] = make([]byte, g.cols)
	}
	g.blank()
	return g
}

func (g *Grid) blank() {
	for _, row := range g.cells {
		for i := range row {
			row[i] = ' '
		}
	}
	g.col, g.row = 0, 0
}

func (g *Grid) ClearDisplay() {
	g.blank()
	g.clears++
}

func (g *Grid) CursorOn(on bool) { g.cursor = on }

// SetCursor moves the write position. Out of range coordinates fall back
// to 0, as the controller's address wraps.
func (g *Grid) SetCursor(col, row uint8) {
	g.col, g.row = int(col), int(row)
	if g.row >= g.rows {
		g.row = 0
	}
	if g.col >= g.cols {
		g.col = 0
	}
}

func (g *Grid) Print(data []byte) {
	for _, c := range data {
		if g.col < g.cols {
			g.cells[g.row][g.col] = c
		}
		g.col++
	}
}

// Row returns the contents of row i.
func (g *Grid) Row(i int) string { return string(g.cells[i]) }

// Cursor reports the write position and whether the cursor is shown.
func (g *Grid) Cursor() (col, row int, visible bool) { return g.col, g.row, g.cursor }

// Clears counts ClearDisplay calls.
func (g *Grid) Clears() int { return g.clears }

// String renders the grid framed by a border.
func (g *Grid) String() string {
	var b strings.Builder
	edge := "+" + strings.Repeat("-", g.cols) + "+\n"
	b.WriteString(edge)
	for _, row := range g.cells {
		b.WriteByte('|')
		b.Write(row)
		b.WriteString("|\n")
	}
	b.WriteString(edge)
	return b.String()
}
