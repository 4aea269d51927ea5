package stress

// Published stress-test weights. They sum to 100, so the score is a
// straight sum over passing tests with no normalisation; fast-mode
// scores count unmeasured tests as failed and are therefore never
// above full-mode scores for the same image.
const (
	WeightOriginal     = 20
	WeightDownscale50  = 15
	WeightDownscale25  = 10
	WeightBlurLight    = 15
	WeightBlurMedium   = 10
	WeightLowContrast  = 15
	WeightMultiDecoder = 15
)

// Score maps stress results plus the multi-decoder bonus to 0-100.
// The bonus applies when any single variant decoded under both
// backends.
func Score(r Results, multiDecoder bool) uint8 {
	score := 0
	if r.Original {
		score += WeightOriginal
	}
	if r.Downscale50 {
		score += WeightDownscale50
	}
	if r.Downscale25 {
		score += WeightDownscale25
	}
	if r.BlurLight {
		score += WeightBlurLight
	}
	if r.BlurMedium {
		score += WeightBlurMedium
	}
	if r.LowContrast {
		score += WeightLowContrast
	}
	if multiDecoder {
		score += WeightMultiDecoder
	}
	if score > 100 {
		score = 100
	}
	return uint8(score)
}
