// Package shrink reduces the foreground of a binary raster to a minimal set
// of representative pixels with hit-or-miss conditional and unconditional
// mark templates, preserving 8-connectivity.
//
// Each pass marks every foreground pixel whose 3×3 window is a removable
// boundary shape, then re-examines each mark against the mark image itself
// and keeps those whose removal would break the shape. The remaining marks
// are erased together and the pass repeats until nothing is erased.
//
// Classification uses two 256-bit tables indexed by the packed neighbour
// code. They are built once at init from the literal templates and are
// read-only afterwards, so independent grids can be shrunk concurrently.
package shrink

// Stats describes one shrink run.
type Stats struct {
	Iterations int // passes, including the last one that erased nothing
	Erased     int
	Before     int // foreground pixels in the input
	After      int // foreground pixels in the output
}

// Shrink returns a copy of g shrunk to its fixed point. g is not modified.
func Shrink(g *Grid) *Grid {
	out, _ := ShrinkStats(g)
	return out
}

// ShrinkStats is Shrink with run statistics.
// A grid with a zero dimension, or one that fails Validate, is returned as an
// unchanged copy without passes; callers building Grid literals should check
// Validate first.
func ShrinkStats(g *Grid) (*Grid, Stats) {
	cur := g.Clone()
	st := Stats{Before: cur.Count()}
	if cur.Empty() || cur.Validate() != nil {
		st.After = st.Before
		return cur, st
	}

	rows, cols := cur.Rows, cur.Cols
	next := make([]uint8, len(cur.Pix))
	marks := make([]bool, len(cur.Pix))
	logger := Logger()

	for {
		st.Iterations++

		// Conditional pass: candidates are judged against the current snapshot.
		candidates := markPass(cur.Pix, marks, rows, cols)

		// Unconditional pass: judged against the mark image, so neighbours
		// that are about to go still count as present.
		copy(next, cur.Pix)
		erased := 0
		for i, m := range marks {
			if !m {
				continue
			}
			if IsUnconditional(packMarks(marks, rows, cols, i/cols, i%cols)) {
				continue
			}
			next[i] = 0
			erased++
		}

		logger.Debug("shrink pass",
			"pass", st.Iterations,
			"candidates", candidates,
			"protected", candidates-erased,
			"erased", erased)

		if erased == 0 {
			break
		}
		cur.Pix, next = next, cur.Pix
		st.Erased += erased
	}

	st.After = st.Before - st.Erased
	return cur, st
}

// markPass fills marks with the conditional decision for every pixel and
// returns the number of candidates.
func markPass(pix []uint8, marks []bool, rows, cols int) int {
	n := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			marks[i] = false
			if pix[i] == 0 {
				continue // already background
			}
			if IsConditional(packNeighbours(pix, rows, cols, row, col)) {
				marks[i] = true
				n++
			}
		}
	}
	return n
}
