package shrink

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, bits []uint8, cols int) *Grid {
	t.Helper()
	pix := make([]uint8, len(bits))
	for i, b := range bits {
		if b != 0 {
			pix[i] = On
		}
	}
	g, err := FromSlice(pix, cols)
	require.NoError(t, err)
	return g
}

func TestShrinkFixtures(t *testing.T) {
	tests := []struct {
		name       string
		input      []uint8
		cols       int
		want       []uint8
		iterations int
	}{
		{name: "null", input: nil, cols: 0, want: []uint8{}, iterations: 0},
		{name: "1px", input: []uint8{1}, cols: 1, want: []uint8{1}, iterations: 1},
		{
			name: "4px",
			input: []uint8{
				1, 1,
				1, 1},
			cols: 2,
			want: []uint8{
				0, 0,
				0, 1},
			iterations: 2,
		},
		{
			name: "9px-1",
			input: []uint8{
				0, 0, 0,
				0, 1, 0,
				0, 0, 0},
			cols: 3,
			want: []uint8{
				0, 0, 0,
				0, 1, 0,
				0, 0, 0},
			iterations: 1,
		},
		{
			name: "9px-9",
			input: []uint8{
				1, 1, 1,
				1, 1, 1,
				1, 1, 1},
			cols: 3,
			want: []uint8{
				0, 0, 0,
				0, 1, 0,
				0, 0, 0},
			iterations: 2,
		},
		{
			name: "25px-25",
			input: []uint8{
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1},
			cols: 5,
			want: []uint8{
				0, 0, 0, 0, 0,
				0, 0, 0, 0, 0,
				0, 0, 1, 0, 0,
				0, 0, 0, 0, 0,
				0, 0, 0, 0, 0},
			iterations: 3,
		},
		{
			name: "25px-18",
			input: []uint8{
				1, 1, 0, 1, 1,
				1, 1, 0, 1, 1,
				0, 0, 0, 0, 0,
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1},
			cols: 5,
			want: []uint8{
				0, 0, 0, 0, 0,
				0, 1, 0, 0, 1,
				0, 0, 0, 0, 0,
				0, 0, 0, 0, 0,
				0, 0, 1, 0, 0},
			iterations: 4,
		},
		{
			name: "3x4 block",
			input: []uint8{
				1, 1, 1, 1,
				1, 1, 1, 1,
				1, 1, 1, 1},
			cols: 4,
			want: []uint8{
				0, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 0, 0},
			iterations: 3,
		},
		{
			name:       "horizontal line",
			input:      []uint8{1, 1, 1, 1, 1, 1},
			cols:       6,
			want:       []uint8{0, 0, 1, 0, 0, 0},
			iterations: 4,
		},
		{
			name: "plus",
			input: []uint8{
				0, 1, 0,
				1, 1, 1,
				0, 1, 0},
			cols: 3,
			want: []uint8{
				0, 0, 0,
				0, 1, 0,
				0, 0, 0},
			iterations: 2,
		},
		{
			name: "diagonal",
			input: []uint8{
				1, 0, 0,
				0, 1, 0,
				0, 0, 1},
			cols: 3,
			want: []uint8{
				0, 0, 0,
				0, 1, 0,
				0, 0, 0},
			iterations: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := mustGrid(t, tc.input, tc.cols)
			got, st := ShrinkStats(in)

			if diff := cmp.Diff(tc.want, got.Bits()); diff != "" {
				t.Errorf("Shrink mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.iterations, st.Iterations, "iterations")
			assert.Equal(t, in.Rows, got.Rows)
			assert.Equal(t, in.Cols, got.Cols)
			assert.Equal(t, components(in), components(got), "8-connected components")
		})
	}
}

func TestShrinkLeavesInputUntouched(t *testing.T) {
	in := mustGrid(t, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1}, 3)
	before := in.Clone()

	_ = Shrink(in)

	assert.Equal(t, before.Pix, in.Pix)
}

func TestShrinkKeepsCallerSentinel(t *testing.T) {
	in, err := FromSlice([]uint8{1, 1, 1, 1}, 2)
	require.NoError(t, err)

	got := Shrink(in)

	assert.Equal(t, []uint8{0, 0, 0, 1}, got.Pix)
}

func TestShrinkZeroDimension(t *testing.T) {
	in := NewGrid(0, 7)

	got, st := ShrinkStats(in)

	assert.True(t, got.Empty())
	assert.Equal(t, 0, got.Rows)
	assert.Equal(t, 7, got.Cols)
	assert.Equal(t, Stats{}, st)
}

func TestShrinkMalformedGrid(t *testing.T) {
	tests := []struct {
		name string
		in   *Grid
	}{
		{"nil pix", &Grid{Rows: 3, Cols: 3}},
		{"short pix", &Grid{Rows: 2, Cols: 2, Pix: []uint8{On, On, On}}},
		{"negative rows", &Grid{Rows: -1, Cols: 2, Pix: []uint8{On, On}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.in.Validate(), ErrShape)

			var got *Grid
			var st Stats
			require.NotPanics(t, func() { got, st = ShrinkStats(tt.in) })
			assert.Equal(t, tt.in.Rows, got.Rows)
			assert.Equal(t, tt.in.Cols, got.Cols)
			assert.Equal(t, len(tt.in.Pix), len(got.Pix))
			assert.Equal(t, 0, st.Iterations)
			assert.Equal(t, st.Before, st.After)
		})
	}
}

func TestShrinkProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 300; n++ {
		rows := 1 + rng.Intn(12)
		cols := 1 + rng.Intn(12)
		density := 0.3 + 0.6*rng.Float64()
		g := NewGrid(rows, cols)
		for i := range g.Pix {
			if rng.Float64() < density {
				g.Pix[i] = On
			}
		}

		once, st := ShrinkStats(g)
		require.Equal(t, rows, once.Rows)
		require.Equal(t, cols, once.Cols)
		require.LessOrEqual(t, once.Count(), g.Count())
		require.Equal(t, g.Count(), st.Before)
		require.Equal(t, once.Count(), st.After)
		require.Equal(t, st.Before-st.Erased, st.After)

		twice, st2 := ShrinkStats(once)
		require.True(t, once.Equal(twice), "shrink is not idempotent for %dx%d grid %v", rows, cols, g.Bits())
		require.Equal(t, 1, st2.Iterations)
		require.Zero(t, st2.Erased)

		// Shrinking never sets a pixel that was background.
		for i, v := range once.Pix {
			if v != 0 {
				require.NotZero(t, g.Pix[i])
			}
		}
	}
}

// components counts 8-connected foreground groups with a BFS flood fill.
func components(g *Grid) int {
	w, h := g.Cols, g.Rows
	seen := make([]bool, w*h)
	queue := make([]int, 0, 64)
	count := 0

	for start, v := range g.Pix {
		if v == 0 || seen[start] {
			continue
		}
		count++
		seen[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			cy, cx := curr/w, curr%w
			for d := 0; d < 8; d++ {
				ny, nx := cy+dRow[d], cx+dCol[d]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				ni := ny*w + nx
				if g.Pix[ni] != 0 && !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
	}
	return count
}
