package analysis

import (
	"errors"
	"math"
)

// ErrNoTissue indicates that segmentation found zero foreground pixels
// classified as either healthy or damaged tissue, e.g. a blank frame or pure
// backdrop. The message is the wire-facing Spanish error string.
var ErrNoTissue = errors.New("no se detectó tejido foliar")

// ComputeMetrics derives the output metrics from the healthy and damaged
// masks.
//
// The affected-area percentage is damaged/(healthy+damaged)*100, rounded to
// two decimals. Lesions are the maximal 4-connected regions of the damaged
// mask; the average lesion size is the arithmetic mean of their pixel areas
// (0 when there are no lesions). Returns ErrNoTissue when no pixel was
// classified as tissue at all, since the percentage is undefined then.
func ComputeMetrics(healthy, damaged *Mask) (Result, error) {
	healthyPixels := healthy.Count()
	damagedPixels := damaged.Count()

	total := healthyPixels + damagedPixels
	if total == 0 {
		return Result{}, ErrNoTissue
	}

	lesions := LabelComponents(damaged)
	avgSize := 0.0
	if len(lesions) > 0 {
		sum := 0
		for _, lesion := range lesions {
			sum += lesion.Area
		}
		avgSize = round2(float64(sum) / float64(len(lesions)))
	}

	return Result{
		Success:         true,
		AffectedAreaPct: round2(float64(damagedPixels) / float64(total) * 100),
		LesionCount:     len(lesions),
		AvgLesionSizePx: avgSize,
	}, nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
