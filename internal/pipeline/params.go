package pipeline

import (
	"fmt"
	"image"

	"github.com/supernovae-ai/qrai-scanner/internal/imgproc"
)

// Params bundles one brute-force preprocessing combination.
type Params struct {
	Resize     int     // target max dimension, 0 = no resize
	Contrast   float64 // midpoint contrast multiplier
	Brightness float64 // linear brightness multiplier
	Blur       float64 // Gaussian sigma, 0 = no blur
	ToLuma     bool    // convert to luma before adjustments
}

func (p Params) String() string {
	return fmt.Sprintf("resize=%d contrast=%.1f brightness=%.1f blur=%.1f luma=%t",
		p.Resize, p.Contrast, p.Brightness, p.Blur, p.ToLuma)
}

// The brute-force parameter grid. Loop order is fixed so a given image
// always walks the same sample sequence: resize ascending (no-resize
// first), then blur descending, then contrast ascending, then
// brightness ascending, then luma-first before color.
var (
	gridResize     = []int{0, 200, 250, 300, 350, 400}
	gridBlur       = []float64{1.5, 1.0, 0.5, 0.0}
	gridContrast   = []float64{1.0, 1.5, 2.0, 2.5, 3.0, 4.0}
	gridBrightness = []float64{0.8, 0.9, 1.0, 1.1, 1.2}
	gridToLuma     = []bool{true, false}
)

// sampleGrid returns the first n combinations of the parameter grid in
// the published iteration order.
func sampleGrid(n int) []Params {
	samples := make([]Params, 0, n)
	for _, resize := range gridResize {
		for _, blur := range gridBlur {
			for _, contrast := range gridContrast {
				for _, brightness := range gridBrightness {
					for _, toLuma := range gridToLuma {
						if len(samples) == n {
							return samples
						}
						samples = append(samples, Params{
							Resize:     resize,
							Contrast:   contrast,
							Brightness: brightness,
							Blur:       blur,
							ToLuma:     toLuma,
						})
					}
				}
			}
		}
	}
	return samples
}

// applyParams produces the luma frame for one parameter combination.
// Operations run resize, then optional luma conversion, then
// brightness, contrast and blur, mirroring the strategy the grid was
// tuned against. scratch must hold at least as many bytes as the frame
// has pixels; the returned frame may alias it.
func applyParams(frame *image.NRGBA, p Params, scratch []uint8) *image.Gray {
	current := frame
	if p.Resize > 0 {
		current = imgproc.ResizeToFit(frame, p.Resize)
	}

	if p.ToLuma {
		luma := imgproc.ToLumaInto(current, scratch)
		if p.Brightness != 1.0 {
			luma = imgproc.Brightness(luma, p.Brightness)
		}
		if p.Contrast != 1.0 {
			luma = imgproc.Contrast(luma, p.Contrast)
		}
		if p.Blur > 0 {
			return imgproc.ToLuma(imgproc.GaussianBlur(luma, p.Blur))
		}
		return luma
	}

	if p.Brightness != 1.0 {
		current = imgproc.AdjustBrightnessRGB(current, p.Brightness)
	}
	if p.Contrast != 1.0 {
		current = imgproc.AdjustContrastRGB(current, p.Contrast)
	}
	if p.Blur > 0 {
		current = imgproc.GaussianBlur(current, p.Blur)
	}
	return imgproc.ToLumaInto(current, scratch)
}
