package imgproc

import "image"

// OtsuThreshold binarizes a luma frame at the threshold that maximises
// the inter-class variance of its 256-bin histogram. Ties resolve to
// the lowest maximising threshold. Values above the threshold map to
// 255, the rest to 0.
func OtsuThreshold(g *image.Gray) *image.Gray {
	return Threshold(g, otsuLevel(g))
}

func otsuLevel(g *image.Gray) uint8 {
	w, h := g.Rect.Dx(), g.Rect.Dy()

	var histogram [256]uint32
	for y := 0; y < h; y++ {
		for _, v := range g.Pix[y*g.Stride : y*g.Stride+w] {
			histogram[v]++
		}
	}

	total := uint64(w) * uint64(h)
	var sum uint64
	for i, count := range histogram {
		sum += uint64(i) * uint64(count)
	}

	var sumB, weightB uint64
	var maxVariance float64
	var threshold uint8

	for i, count := range histogram {
		weightB += uint64(count)
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}
		sumB += uint64(i) * uint64(count)

		meanB := float64(sumB) / float64(weightB)
		meanF := float64(sum-sumB) / float64(weightF)
		variance := float64(weightB) * float64(weightF) * (meanB - meanF) * (meanB - meanF)

		// Strict comparison keeps the lowest maximising threshold.
		if variance > maxVariance {
			maxVariance = variance
			threshold = uint8(i)
		}
	}
	return threshold
}
