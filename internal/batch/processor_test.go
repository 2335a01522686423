package batch

import (
	"os"
	"path/filepath"
	"testing"

	"binshrink/internal/imageio"
	"binshrink/internal/shrink"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBlock saves a 5×5 page with a 3×3 ink block in the middle.
func writeBlock(t *testing.T, path string) {
	t.Helper()
	g := shrink.NewGrid(5, 5)
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			g.Set(r, c, true)
		}
	}
	require.NoError(t, imageio.Save(path, imageio.Render(g, 1, false)))
}

func TestRunEndToEnd(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(in, "shrunk")
	writeBlock(t, filepath.Join(in, "block.png"))
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.png"), []byte("not an image"), 0644))

	files, err := imageio.Scan(in, out)
	require.NoError(t, err)
	require.Len(t, files, 2)

	cfg := Config{
		InputDir:  in,
		OutputDir: out,
		Format:    "png",
		Threshold: 128,
		Scale:     1,
		Workers:   2,
	}
	results := Run(cfg, files)
	require.Len(t, results, 2)

	block := results[0]
	require.True(t, block.Success, block.Error)
	assert.Equal(t, "block", block.Name)
	assert.Equal(t, filepath.Join(out, "block.png"), block.Output)
	assert.Equal(t, 5, block.Width)
	assert.Equal(t, 5, block.Height)
	assert.Equal(t, 9, block.Before)
	assert.Equal(t, 1, block.After)
	assert.Equal(t, 2, block.Iterations)

	img, err := imageio.Load(block.Output)
	require.NoError(t, err)
	want := []uint8{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, imageio.Binarize(img, 128, false).Bits()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	broken := results[1]
	assert.False(t, broken.Success)
	assert.Contains(t, broken.Error, "decode")
	assert.Empty(t, broken.Output)

	manifestPath := filepath.Join(out, "manifest.json")
	runID := NewRunID()
	require.NoError(t, WriteManifest(manifestPath, runID, cfg, results))

	m, err := ReadManifest(manifestPath)
	require.NoError(t, err)
	_, err = uuid.Parse(m.RunID)
	require.NoError(t, err)
	assert.Equal(t, runID, m.RunID)
	assert.Equal(t, "png", m.Format)
	require.Len(t, m.Images, 2)
	assert.Equal(t, "block.png", m.Images[0].Image)
	assert.Equal(t, 1, m.Images[0].After)
	assert.Empty(t, m.Images[1].Image)
}

func TestOutputPath(t *testing.T) {
	cfg := Config{InputDir: "/scans", OutputDir: "/out", Format: "webp"}

	got, err := OutputPath(cfg, filepath.Join("/scans", "pages", "p1.tif"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "pages", "p1.webp"), got)

	got, err = OutputPath(cfg, "/elsewhere/x.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "x.webp"), got)

	_, err = OutputPath(Config{Format: "bmp"}, "a.png")
	assert.ErrorIs(t, err, imageio.ErrFormat)
}

func TestRunBadFormat(t *testing.T) {
	results := Run(Config{Format: "gif", Workers: 1}, []string{"a.png"})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "unsupported output format")
}
