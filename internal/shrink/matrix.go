package shrink

import "gonum.org/v1/gonum/mat"

// FromMatrix builds a grid from a numeric mask; nonzero entries are foreground.
func FromMatrix(m mat.Matrix) *Grid {
	rows, cols := m.Dims()
	g := NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if m.At(r, c) != 0 {
				g.Pix[r*cols+c] = On
			}
		}
	}
	return g
}

// Dense returns the grid as a 0/1 matrix. Empty grids yield nil, since
// gonum does not allow zero-sized dense matrices.
func (g *Grid) Dense() *mat.Dense {
	if g.Empty() {
		return nil
	}
	data := make([]float64, len(g.Pix))
	for i, v := range g.Pix {
		if v != 0 {
			data[i] = 1
		}
	}
	return mat.NewDense(g.Rows, g.Cols, data)
}
