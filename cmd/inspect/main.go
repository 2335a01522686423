package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"binshrink/internal/imageio"
	"binshrink/internal/shrink"
)

// maxCols keeps the ASCII dump readable in a terminal.
const maxCols = 160

// maxDump bounds both dimensions for the -dump matrix view.
const maxDump = 40

func dump(g *shrink.Grid) {
	cols := g.Cols
	if cols > maxCols {
		cols = maxCols
	}
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		sb.Reset()
		for c := 0; c < cols; c++ {
			if g.At(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Printf("    %s\n", sb.String())
	}
	if cols < g.Cols {
		fmt.Printf("    (%d columns not shown)\n", g.Cols-cols)
	}
}

// matrixView renders g through its gonum form for the -dump flag.
func matrixView(g *shrink.Grid) string {
	d := g.Dense()
	switch {
	case d == nil:
		return "  Matrix: empty"
	case g.Rows > maxDump || g.Cols > maxDump:
		return fmt.Sprintf("  Matrix: skipped, %dx%d exceeds %dx%d", g.Cols, g.Rows, maxDump, maxDump)
	}
	return fmt.Sprintf("  Matrix:\n    %v", mat.Formatted(d, mat.Prefix("    "), mat.Squeeze()))
}

func main() {
	threshold := flag.Int("threshold", 128, "Luminance threshold 1-255")
	invert := flag.Bool("invert", false, "Treat light pixels as foreground")
	quiet := flag.Bool("q", false, "Print statistics only")
	dumpMat := flag.Bool("dump", false, "Print the shrunk grid as a 0/1 matrix (small images only)")
	flag.Parse()

	if flag.NArg() != 1 || *threshold < 1 || *threshold > 255 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-threshold N] [-invert] [-q] [-dump] image")
		os.Exit(2)
	}
	path := flag.Arg(0)

	img, err := imageio.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	grid := imageio.Binarize(img, uint8(*threshold), *invert)
	shrunk, st := shrink.ShrinkStats(grid)

	fmt.Printf("Image: %s (%dx%d)\n", path, grid.Cols, grid.Rows)
	fmt.Printf("  Foreground: %d → %d (%d erased)\n", st.Before, st.After, st.Erased)
	fmt.Printf("  Passes: %d\n", st.Iterations)

	if *dumpMat {
		fmt.Println(matrixView(shrunk))
	}

	if *quiet {
		return
	}

	fmt.Println("  Before:")
	dump(grid)
	fmt.Println("  After:")
	dump(shrunk)

	fmt.Println("  Survivors:")
	for r := 0; r < shrunk.Rows; r++ {
		for c := 0; c < shrunk.Cols; c++ {
			if shrunk.At(r, c) {
				fmt.Printf("    (%d, %d) code=0x%02x\n", r, c, uint8(shrink.CodeAt(grid, r, c)))
			}
		}
	}
}
