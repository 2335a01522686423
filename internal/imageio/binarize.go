package imageio

import (
	"image"
	"image/color"

	"binshrink/internal/shrink"

	"golang.org/x/image/draw"
)

// Binarize thresholds img into a shrink grid, one cell per pixel.
// By default a pixel is foreground when its luminance is below threshold
// (dark ink on a light page); invert selects light-on-dark instead.
// Fully transparent pixels are always background.
func Binarize(img image.Image, threshold uint8, invert bool) *shrink.Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	g := shrink.NewGrid(h, w)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+w]
			for x, v := range row {
				if isInk(v, threshold, invert) {
					g.Pix[y*w+x] = shrink.On
				}
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				if c.A == 0 {
					continue
				}
				// Judge the colour itself, not its blend with black.
				c.A = 255
				l := color.GrayModel.Convert(c).(color.Gray).Y
				if isInk(l, threshold, invert) {
					g.Pix[y*w+x] = shrink.On
				}
			}
		}
	}
	return g
}

func isInk(l, threshold uint8, invert bool) bool {
	if invert {
		return l >= threshold
	}
	return l < threshold
}

// Render draws a grid as a grayscale image, foreground black on white
// (white on black when invert is set), enlarged by an integer scale with
// nearest-neighbour sampling so single pixels stay crisp.
func Render(g *shrink.Grid, scale int, invert bool) *image.Gray {
	ink, paper := uint8(0), uint8(255)
	if invert {
		ink, paper = paper, ink
	}

	base := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for i, v := range g.Pix {
		if v != 0 {
			base.Pix[i] = ink
		} else {
			base.Pix[i] = paper
		}
	}

	if scale <= 1 || g.Empty() {
		return base
	}

	dst := image.NewGray(image.Rect(0, 0, g.Cols*scale, g.Rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)
	return dst
}
