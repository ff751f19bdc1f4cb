// Package analysis implements the leaf disease quantification pipeline.
//
// Given the raw bytes of a leaf photograph, the pipeline separates leaf tissue
// from background, classifies tissue pixels as healthy or damaged by color, and
// reports the affected-area percentage together with lesion count and average
// lesion size. All measurements are in pixel units; no calibration against
// physical leaf area is attempted.
//
// # Pipeline Stages
//
// Data flows strictly forward through five stages:
//
//  1. Decode: raw PNG/JPEG/GIF bytes to an in-memory image
//  2. ResizeBound: cap the longer dimension (area-averaging downscale only)
//  3. ToHLS: per-pixel conversion to 8-bit hue/lightness/saturation
//  4. Segment: threshold classification into background/healthy/damaged masks
//  5. ComputeMetrics: area ratios plus 4-connected lesion statistics
//
// Analyzer.Analyze runs the whole chain and never lets an internal fault escape
// its boundary: every outcome is a Result, either fully populated on success or
// carrying only an error message on failure.
//
// # Color Convention
//
// HLS values follow the 8-bit convention common in vision tooling: hue is the
// color angle halved to fit a byte, wrapping at 180 (0 and 179 are adjacent
// reds); lightness and saturation are linear 0-255. Hue ranges are modular, so
// band boundaries must be compared on the wrapped value.
//
// # Concurrency
//
// The pipeline is a pure, stateless computation. Each call allocates its own
// buffers, so any number of analyses may run in parallel. Per-pixel stages
// parallelize across rows internally; there is no shared mutable state and no
// cancellation point inside the core.
package analysis
