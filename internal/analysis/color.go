package analysis

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HLSImage is a dense 3-channel image in the 8-bit HLS convention used by the
// segmentation thresholds:
//
//   - H: hue angle halved to fit a byte, 0-179, wrapping at 180
//   - L: lightness, 0-255
//   - S: saturation, 0-255
//
// Pixels are stored interleaved H,L,S in a flat contiguous buffer indexed by
// (y*Width+x)*3. The struct is produced once by ToHLS and read-only afterwards.
type HLSImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the H, L, S channels of the pixel at (x, y).
// Coordinates are 0-based with origin at the top-left corner.
func (p *HLSImage) At(x, y int) (h, l, s uint8) {
	i := (y*p.Width + x) * 3
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// ToHLS converts an image to the 8-bit HLS representation.
//
// The mapping is pixel-wise and independent, so rows are processed in
// parallel. Hue is computed in degrees and halved with round-to-nearest; a
// rounded value of 180 wraps back to 0, keeping the hue range strictly modular
// so that threshold bands near the red wrap are not shifted.
func ToHLS(img image.Image) *HLSImage {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	out := &HLSImage{Width: w, Height: h, Pix: make([]uint8, w*h*3)}

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				c := colorful.Color{
					R: float64(r>>8) / 255.0,
					G: float64(g>>8) / 255.0,
					B: float64(b>>8) / 255.0,
				}
				hue, sat, lig := c.Hsl()

				i := (y*w + x) * 3
				out.Pix[i] = uint8(int(math.Round(hue/2)) % 180)
				out.Pix[i+1] = clampChannel(math.Round(lig * 255))
				out.Pix[i+2] = clampChannel(math.Round(sat * 255))
			}
		}
	})

	return out
}

// clampChannel constrains a rounded channel value to the 0-255 byte range.
// Float error can push saturation fractionally outside [0, 1].
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
