package analysis

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// Overlay renders a review image with damaged-classified pixels tinted red.
//
// The input goes through the same decode, resize, and segmentation stages as
// Analyze, so the overlay matches the numbers an Analyze call on the same
// bytes would report. Damaged pixels are blended halfway toward pure red;
// everything else is left untouched. The result is PNG-encoded.
//
// Unlike Analyze, Overlay returns an error: it is a secondary visualization
// aid, not part of the metrics contract, so callers decide how to surface
// failures.
func (a *Analyzer) Overlay(data []byte) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}

	img = ResizeBound(img, a.cfg.MaxDim)
	hls := ToHLS(img)
	seg := Segment(hls, a.cfg.Thresholds)

	out := imaging.Clone(img)
	for y := 0; y < seg.Damaged.Height; y++ {
		for x := 0; x < seg.Damaged.Width; x++ {
			if !seg.Damaged.On(x, y) {
				continue
			}
			i := out.PixOffset(x, y)
			out.Pix[i] = uint8((int(out.Pix[i]) + 255) / 2)
			out.Pix[i+1] /= 2
			out.Pix[i+2] /= 2
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode overlay image: %w", err)
	}
	return buf.Bytes(), nil
}
