package analysis

import (
	"image"

	"github.com/disintegration/imaging"
)

// ResizeBound caps the longer side of an image at maxDim pixels, preserving
// aspect ratio.
//
// Images whose longer side is already at or under the bound are returned
// unchanged (same value, same dimensions). Larger images are scaled by
// maxDim/max(h,w) with both new dimensions rounded down, using box
// (area-averaging) resampling; nearest-neighbor would introduce aliasing that
// shifts the color thresholds downstream. ResizeBound never upsamples and is
// deterministic: identical input and bound always produce identical output.
func ResizeBound(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	longest := w
	if h > longest {
		longest = h
	}
	if maxDim <= 0 || longest <= maxDim {
		return img
	}

	ratio := float64(maxDim) / float64(longest)
	newW := int(float64(w) * ratio)
	newH := int(float64(h) * ratio)
	return imaging.Resize(img, newW, newH, imaging.Box)
}
