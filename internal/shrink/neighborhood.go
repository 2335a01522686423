package shrink

// Window is a literal 3×3 neighborhood in row-major order; index 4 is the centre.
type Window [9]bool

// Code packs the eight neighbours of a pixel, centre excluded.
// Bit k is set iff neighbour k is foreground, in the order
// NW, N, NE, W, E, SW, S, SE.
type Code uint8

// Neighbour offsets in Code bit order.
var (
	dCol = [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
	dRow = [8]int{-1, -1, -1, 0, 0, 1, 1, 1}
)

// slotOf maps neighbour bit k to its Window index.
func slotOf(k int) int {
	if k < 4 {
		return k
	}
	return k + 1
}

// WindowAt snapshots the 3×3 neighborhood of (row, col).
// Positions outside the grid read as background.
func WindowAt(g *Grid, row, col int) Window {
	var w Window
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			w[i] = g.At(row+dr, col+dc)
			i++
		}
	}
	return w
}

// CodeAt packs the eight neighbours of (row, col).
func CodeAt(g *Grid, row, col int) Code {
	return packNeighbours(g.Pix, g.Rows, g.Cols, row, col)
}

// packNeighbours reads a flat row-major buffer where nonzero means set.
func packNeighbours(pix []uint8, rows, cols, row, col int) Code {
	var c Code
	for k := 0; k < 8; k++ {
		r := row + dRow[k]
		x := col + dCol[k]
		if r < 0 || r >= rows || x < 0 || x >= cols {
			continue
		}
		if pix[r*cols+x] != 0 {
			c |= 1 << k
		}
	}
	return c
}

// packMarks is packNeighbours over a boolean mark buffer.
func packMarks(marks []bool, rows, cols, row, col int) Code {
	var c Code
	for k := 0; k < 8; k++ {
		r := row + dRow[k]
		x := col + dCol[k]
		if r < 0 || r >= rows || x < 0 || x >= cols {
			continue
		}
		if marks[r*cols+x] {
			c |= 1 << k
		}
	}
	return c
}

// Code drops the centre and packs the neighbours.
func (w Window) Code() Code {
	var c Code
	for k := 0; k < 8; k++ {
		if w[slotOf(k)] {
			c |= 1 << k
		}
	}
	return c
}

// Centre reports whether the middle pixel is set.
func (w Window) Centre() bool {
	return w[4]
}

// Window expands the code into a literal window with the centre set.
func (c Code) Window() Window {
	var w Window
	w[4] = true
	for k := 0; k < 8; k++ {
		w[slotOf(k)] = c&(1<<k) != 0
	}
	return w
}
