// Package stress perturbs an already-decoded frame in fixed, named
// ways and records which perturbations still decode. The pass/fail
// pattern feeds the scannability score.
package stress

import (
	"image"
	"log/slog"

	"github.com/supernovae-ai/qrai-scanner/internal/decoder"
	"github.com/supernovae-ai/qrai-scanner/internal/imgproc"
	"github.com/supernovae-ai/qrai-scanner/internal/workpool"
)

// Results records the pass/fail bit per perturbation.
type Results struct {
	Original    bool
	Downscale50 bool
	Downscale25 bool
	BlurLight   bool
	BlurMedium  bool
	LowContrast bool
}

// perturbation is a named single-pass transformation of the original
// frame. Perturbed variants go straight to the decoder facade, never
// through the tiered pipeline: a stress test measures whether the raw
// variant decodes, not whether aggressive preprocessing could save it.
type perturbation struct {
	name  string
	set   func(*Results, bool)
	apply func(*image.NRGBA) *image.NRGBA
}

func identity(frame *image.NRGBA) *image.NRGBA { return frame }

var perturbations = []perturbation{
	{
		name:  "original",
		set:   func(r *Results, ok bool) { r.Original = ok },
		apply: identity,
	},
	{
		name:  "downscale_50",
		set:   func(r *Results, ok bool) { r.Downscale50 = ok },
		apply: func(f *image.NRGBA) *image.NRGBA { return imgproc.Downscale(f, 0.5) },
	},
	{
		name:  "downscale_25",
		set:   func(r *Results, ok bool) { r.Downscale25 = ok },
		apply: func(f *image.NRGBA) *image.NRGBA { return imgproc.Downscale(f, 0.25) },
	},
	{
		name:  "blur_light",
		set:   func(r *Results, ok bool) { r.BlurLight = ok },
		apply: func(f *image.NRGBA) *image.NRGBA { return imgproc.GaussianBlur(f, 1.0) },
	},
	{
		name:  "blur_medium",
		set:   func(r *Results, ok bool) { r.BlurMedium = ok },
		apply: func(f *image.NRGBA) *image.NRGBA { return imgproc.GaussianBlur(f, 2.0) },
	},
	{
		name:  "low_contrast",
		set:   func(r *Results, ok bool) { r.LowContrast = ok },
		apply: func(f *image.NRGBA) *image.NRGBA { return imgproc.AdjustContrastRGB(f, 0.5) },
	},
}

// fastSubset names the perturbations measured in fast validation.
var fastSubset = map[string]bool{
	"original":     true,
	"downscale_50": true,
	"blur_light":   true,
}

// Run evaluates all six perturbations in parallel and reports the
// results plus the maximum number of backends that succeeded on any
// single variant.
func Run(facade *decoder.Facade, frame *image.NRGBA) (Results, int) {
	return run(facade, frame, perturbations)
}

// RunFast evaluates only {original, downscale_50, blur_light}.
// Unmeasured perturbations stay false.
func RunFast(facade *decoder.Facade, frame *image.NRGBA) (Results, int) {
	subset := make([]perturbation, 0, len(fastSubset))
	for _, p := range perturbations {
		if fastSubset[p.name] {
			subset = append(subset, p)
		}
	}
	return run(facade, frame, subset)
}

type variantOutcome struct {
	ok       bool
	backends int
}

func run(facade *decoder.Facade, frame *image.NRGBA, tests []perturbation) (Results, int) {
	outcomes := workpool.Each(tests, func(p perturbation) variantOutcome {
		luma := imgproc.ToLuma(p.apply(frame))
		out := facade.AttemptBoth(luma)
		slog.Debug("stress test", "perturbation", p.name, "decoded", out.OK, "backends", len(out.Backends))
		return variantOutcome{ok: out.OK, backends: len(out.Backends)}
	})

	var results Results
	maxBackends := 0
	for i, o := range outcomes {
		tests[i].set(&results, o.ok)
		if o.backends > maxBackends {
			maxBackends = o.backends
		}
	}
	return results, maxBackends
}
