package analysis

import "fmt"

// Result is the output record of one analysis call. JSON field names are the
// Spanish wire names consumed by the frontend.
//
// A Result is either a success (Success true, all numeric fields populated)
// or a failure (Success false, Error set, numeric fields zero and not
// trustworthy). It is never partially populated and never mutated after
// construction.
type Result struct {
	AffectedAreaPct float64 `json:"area_afectada_pct"`
	LesionCount     int     `json:"conteo_lesiones"`
	AvgLesionSizePx float64 `json:"tamanio_promedio_lesion_px"`
	Success         bool    `json:"procesamiento_exitoso"`
	Error           string  `json:"error,omitempty"`
}

// Config carries the tunable constants of the pipeline. A single immutable
// value is passed to New rather than read from globals, keeping the pipeline
// pure and independently testable.
type Config struct {
	// MaxDim bounds the longer image dimension before analysis.
	MaxDim int

	// Thresholds are the HLS segmentation ranges.
	Thresholds Thresholds
}

// DefaultConfig returns the production configuration: a 500-pixel resize
// bound and the default thresholds.
func DefaultConfig() Config {
	return Config{
		MaxDim:     500,
		Thresholds: DefaultThresholds(),
	}
}

// Analyzer runs the leaf analysis pipeline. It holds no per-call state, so a
// single Analyzer is safe for concurrent use by any number of goroutines.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer with the given configuration.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze runs the full pipeline on raw encoded image bytes.
//
// Analyze never fails past its own boundary: decode and no-tissue outcomes
// become failure Results with their sentinel messages, and any other internal
// fault is recovered and converted to a generic failure carrying the
// underlying message. Running Analyze twice on identical bytes yields
// identical Results.
func (a *Analyzer) Analyze(data []byte) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(fmt.Sprintf("error interno de procesamiento: %v", r))
		}
	}()

	img, err := Decode(data)
	if err != nil {
		return failure(err.Error())
	}

	img = ResizeBound(img, a.cfg.MaxDim)
	hls := ToHLS(img)
	seg := Segment(hls, a.cfg.Thresholds)

	res, err = ComputeMetrics(seg.Healthy, seg.Damaged)
	if err != nil {
		return failure(err.Error())
	}
	return res
}

func failure(msg string) Result {
	return Result{Error: msg}
}
