// Package pipeline implements the progressive, tiered QR decode
// strategy: four tiers of increasing preprocessing cost, each feeding
// candidate luma frames to the decoder facade, with immediate early
// exit on the first success.
package pipeline

import (
	"image"
	"log/slog"
	"time"

	"github.com/supernovae-ai/qrai-scanner/internal/bufpool"
	"github.com/supernovae-ai/qrai-scanner/internal/decoder"
	"github.com/supernovae-ai/qrai-scanner/internal/imgproc"
	"github.com/supernovae-ai/qrai-scanner/internal/workpool"
)

// Config holds the tier budgets and brute-force sample count.
type Config struct {
	Tier1Budget time.Duration
	Tier2Budget time.Duration
	Tier3Budget time.Duration
	Tier4Budget time.Duration

	// BruteForceSamples caps the Tier 4 parameter grid walk.
	BruteForceSamples int
}

// DefaultConfig returns the published tier budgets.
func DefaultConfig() Config {
	return Config{
		Tier1Budget:       100 * time.Millisecond,
		Tier2Budget:       150 * time.Millisecond,
		Tier3Budget:       700 * time.Millisecond,
		Tier4Budget:       2500 * time.Millisecond,
		BruteForceSamples: 256,
	}
}

// Pipeline decodes frames through the tiered strategy ladder.
type Pipeline struct {
	cfg    Config
	facade *decoder.Facade
}

// New builds a pipeline over the given facade.
func New(facade *decoder.Facade, cfg Config) *Pipeline {
	if cfg.BruteForceSamples <= 0 {
		cfg.BruteForceSamples = DefaultConfig().BruteForceSamples
	}
	return &Pipeline{cfg: cfg, facade: facade}
}

// Decode runs the four tiers against the frame and returns the first
// successful outcome. A failed outcome (OK=false) means every tier
// exhausted; there are no retries.
func (p *Pipeline) Decode(frame *image.NRGBA) decoder.Outcome {
	// Tier 1: raw luma of the original frame. The conversion is kept
	// and shared with Tier 2, which operates on the same luma.
	luma := imgproc.ToLuma(frame)
	if out := p.facade.Attempt(luma); out.OK {
		slog.Debug("decoded at tier 1")
		return out
	}

	if out, ok := p.runTier2(frame, luma); ok {
		return out
	}
	if out, ok := p.runTier3(frame, luma); ok {
		return out
	}
	return p.runTier4(frame)
}

// runTier2 attempts the quick trio sequentially in published order.
// Each strategy is cheap enough that parallel-launch overhead would
// dominate.
func (p *Pipeline) runTier2(frame *image.NRGBA, luma *image.Gray) (decoder.Outcome, bool) {
	deadline := time.Now().Add(p.cfg.Tier2Budget)
	for _, s := range tier2Strategies() {
		if out := p.facade.Attempt(s.Apply(frame, luma)); out.OK {
			slog.Debug("decoded at tier 2", "strategy", s.Name)
			return out, true
		}
		if time.Now().After(deadline) {
			break
		}
	}
	return decoder.Outcome{}, false
}

// runTier3 submits the full strategy pool to the shared workers. The
// first success wins; which equivalent-cost strategy wins is not
// guaranteed and not observable by callers.
func (p *Pipeline) runTier3(frame *image.NRGBA, luma *image.Gray) (decoder.Outcome, bool) {
	deadline := time.Now().Add(p.cfg.Tier3Budget)
	out, ok := workpool.FindAny(tier3Strategies(),
		func(s Strategy) (decoder.Outcome, bool) {
			o := p.facade.Attempt(s.Apply(frame, luma))
			return o, o.OK
		},
		func() bool { return time.Now().After(deadline) },
	)
	if ok {
		slog.Debug("decoded at tier 3")
	}
	return out, ok
}

// runTier4 walks the deterministic parameter grid sequentially so the
// published sample order is honoured, holding at most one intermediate
// frame at a time.
func (p *Pipeline) runTier4(frame *image.NRGBA) decoder.Outcome {
	deadline := time.Now().Add(p.cfg.Tier4Budget)
	samples := sampleGrid(p.cfg.BruteForceSamples)

	bounds := frame.Bounds()
	scratch := bufpool.GetBytes(bounds.Dx() * bounds.Dy())
	defer bufpool.PutBytes(scratch)

	for i, params := range samples {
		if time.Now().After(deadline) {
			slog.Debug("tier 4 budget exhausted", "samples_tried", i)
			break
		}
		candidate := applyParams(frame, params, scratch)
		if out := p.facade.Attempt(candidate); out.OK {
			slog.Debug("decoded at tier 4", "sample", i, "params", params.String())
			return out
		}
	}
	return decoder.Outcome{}
}
