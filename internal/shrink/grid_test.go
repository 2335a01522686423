package shrink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromSlice(t *testing.T) {
	g, err := FromSlice([]uint8{0, On, On, 0, 0, On}, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.True(t, g.At(0, 1))
	assert.False(t, g.At(1, 0))
	assert.Equal(t, 3, g.Count())
}

func TestFromSliceCopies(t *testing.T) {
	pix := []uint8{On, On}
	g, err := FromSlice(pix, 2)
	require.NoError(t, err)

	pix[0] = 0
	assert.True(t, g.At(0, 0))
}

func TestFromSliceRejectsRagged(t *testing.T) {
	_, err := FromSlice([]uint8{1, 1, 1}, 2)
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromSlice([]uint8{1}, 0)
	assert.ErrorIs(t, err, ErrShape)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, NewGrid(2, 3).Validate())
	assert.NoError(t, NewGrid(0, 0).Validate())
	assert.NoError(t, (&Grid{Rows: 0, Cols: 5}).Validate())
	assert.ErrorIs(t, (&Grid{Rows: 3, Cols: 3}).Validate(), ErrShape)
}

func TestFromSliceEmpty(t *testing.T) {
	g, err := FromSlice(nil, 4)
	require.NoError(t, err)
	assert.True(t, g.Empty())
}

func TestAtOutOfBounds(t *testing.T) {
	g := mustGrid(t, []uint8{1}, 1)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		assert.False(t, g.At(p[0], p[1]), "At(%d, %d)", p[0], p[1])
	}
}

func TestEqualIgnoresSentinel(t *testing.T) {
	a, err := FromSlice([]uint8{1, 0}, 2)
	require.NoError(t, err)
	b, err := FromSlice([]uint8{On, 0}, 2)
	require.NoError(t, err)
	c, err := FromSlice([]uint8{On, 0}, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMatrixAdapter(t *testing.T) {
	ones := make([]float64, 9)
	for i := range ones {
		ones[i] = 1
	}
	g := FromMatrix(mat.NewDense(3, 3, ones))
	assert.Equal(t, 9, g.Count())

	got := Shrink(g).Dense()
	want := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	})
	assert.True(t, mat.Equal(want, got), "got %v", mat.Formatted(got))
}

func TestDenseEmpty(t *testing.T) {
	assert.Nil(t, NewGrid(0, 0).Dense())
}
