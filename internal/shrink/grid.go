package shrink

import (
	"errors"
	"fmt"
)

// On is the foreground value written by this package and its callers.
const On uint8 = 255

// ErrShape is returned when pixel data cannot form a rectangular grid.
var ErrShape = errors.New("shrink: pixel data is not rectangular")

// Grid is a single-channel binary raster stored row-major.
// 0 is background; any nonzero value is foreground. Grids are expected to
// hold only 0 and one sentinel (normally On); other nonzero values are read
// as foreground and are otherwise not designed for.
type Grid struct {
	Rows int
	Cols int
	Pix  []uint8 // len = Rows*Cols
}

// NewGrid allocates a background-filled grid.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	return &Grid{
		Rows: rows,
		Cols: cols,
		Pix:  make([]uint8, rows*cols),
	}
}

// FromSlice wraps a copy of row-major pixel data with the given width.
// An empty slice yields an empty grid regardless of cols.
func FromSlice(pix []uint8, cols int) (*Grid, error) {
	if len(pix) == 0 {
		return NewGrid(0, 0), nil
	}
	if cols <= 0 {
		return nil, fmt.Errorf("shrink: width %d for %d pixels: %w", cols, len(pix), ErrShape)
	}
	if len(pix)%cols != 0 {
		return nil, fmt.Errorf("shrink: %d pixels not divisible by width %d: %w", len(pix), cols, ErrShape)
	}
	g := NewGrid(len(pix)/cols, cols)
	copy(g.Pix, pix)
	return g, nil
}

// Validate reports ErrShape when the dimensions are negative or Pix does not
// hold exactly Rows*Cols values.
func (g *Grid) Validate() error {
	if g.Rows < 0 || g.Cols < 0 || len(g.Pix) != g.Rows*g.Cols {
		return fmt.Errorf("shrink: %dx%d grid with %d pixels: %w", g.Rows, g.Cols, len(g.Pix), ErrShape)
	}
	return nil
}

// Empty reports whether the grid has no pixels.
func (g *Grid) Empty() bool {
	return g.Rows == 0 || g.Cols == 0
}

// At reports whether (row, col) is foreground. Out-of-bounds reads are background.
func (g *Grid) At(row, col int) bool {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return false
	}
	return g.Pix[row*g.Cols+col] != 0
}

// Set writes On or 0 at (row, col).
func (g *Grid) Set(row, col int, on bool) {
	if on {
		g.Pix[row*g.Cols+col] = On
	} else {
		g.Pix[row*g.Cols+col] = 0
	}
}

// Count returns the number of foreground pixels.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, Pix: make([]uint8, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Equal compares shape and foreground membership; the stored sentinel values
// may differ.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i := range g.Pix {
		if (g.Pix[i] != 0) != (o.Pix[i] != 0) {
			return false
		}
	}
	return true
}

// Bits returns the grid as 0/1 values, row-major.
func (g *Grid) Bits() []uint8 {
	out := make([]uint8, len(g.Pix))
	for i, v := range g.Pix {
		if v != 0 {
			out[i] = 1
		}
	}
	return out
}
