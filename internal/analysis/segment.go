package analysis

import "github.com/anthonynsimon/bild/parallel"

// Thresholds holds the fixed HLS ranges that drive segmentation. All ranges
// are inclusive. The values are passed explicitly into the pipeline rather
// than read from package globals so the segmenter stays a pure function.
type Thresholds struct {
	// Background classification: a pixel is background when its lightness is
	// below BackgroundMaxL, or its saturation is below BackgroundMinS or above
	// BackgroundMaxS. This covers shadow, glare, and neutral backdrop.
	BackgroundMaxL uint8
	BackgroundMinS uint8
	BackgroundMaxS uint8

	// Damaged tissue candidates sit in the yellow/brown hue band.
	DamagedHueMin uint8
	DamagedHueMax uint8

	// Healthy tissue candidates sit in the green hue band.
	HealthyHueMin uint8
	HealthyHueMax uint8

	// Tissue candidates of either class additionally require lightness at or
	// above TissueMinL and saturation at or above TissueMinS.
	TissueMinL uint8
	TissueMinS uint8
}

// DefaultThresholds returns the calibrated production thresholds.
//
// The hue gap between the damaged band (10-36) and the healthy band (39-89),
// and the wrap-around hues outside 10-89, are intentionally unclassified:
// transition-colored pixels contribute to neither class, trading recall for
// precision at the class boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BackgroundMaxL: 51,
		BackgroundMinS: 25,
		BackgroundMaxS: 242,
		DamagedHueMin:  10,
		DamagedHueMax:  36,
		HealthyHueMin:  39,
		HealthyHueMax:  89,
		TissueMinL:     51,
		TissueMinS:     25,
	}
}

// Segmentation holds the per-class masks produced from one HLS image.
// All four masks share the source image's dimensions. Damaged and Healthy are
// already restricted to foreground and never overlap under the default
// thresholds, so after segmentation every pixel is exactly one of background,
// healthy, damaged, or unclassified.
type Segmentation struct {
	Background *Mask
	Foreground *Mask
	Damaged    *Mask
	Healthy    *Mask
}

// Segment classifies every pixel of an HLS image against the thresholds.
//
// Candidate masks are computed pixel-wise (rows in parallel), then restricted
// to foreground with a mask AND:
//
//	foreground = NOT background
//	damaged    = damagedCandidate AND foreground
//	healthy    = healthyCandidate AND foreground
func Segment(img *HLSImage, t Thresholds) Segmentation {
	background := NewMask(img.Width, img.Height)
	damagedCand := NewMask(img.Width, img.Height)
	healthyCand := NewMask(img.Width, img.Height)

	parallel.Line(img.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < img.Width; x++ {
				h, l, s := img.At(x, y)

				if l < t.BackgroundMaxL || s < t.BackgroundMinS || s > t.BackgroundMaxS {
					background.Set(x, y, true)
				}
				if l >= t.TissueMinL && s >= t.TissueMinS {
					if h >= t.DamagedHueMin && h <= t.DamagedHueMax {
						damagedCand.Set(x, y, true)
					}
					if h >= t.HealthyHueMin && h <= t.HealthyHueMax {
						healthyCand.Set(x, y, true)
					}
				}
			}
		}
	})

	foreground := background.Not()
	return Segmentation{
		Background: background,
		Foreground: foreground,
		Damaged:    damagedCand.And(foreground),
		Healthy:    healthyCand.And(foreground),
	}
}
