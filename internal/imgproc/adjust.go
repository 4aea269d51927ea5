package imgproc

import (
	"image"
	"math"
)

// Contrast scales a luma frame around the midpoint:
// out = clamp(128 + m*(v-128), 0, 255). A multiplier above 1 expands
// dynamic range, below 1 compresses it.
func Contrast(g *image.Gray, m float64) *image.Gray {
	lut := contrastLUT(m)
	return applyLUT(g, &lut)
}

// Brightness scales a luma frame linearly: out = clamp(m*v, 0, 255).
func Brightness(g *image.Gray, m float64) *image.Gray {
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampU8(math.RoundToEven(m * float64(i)))
	}
	return applyLUT(g, &lut)
}

// Invert flips a luma frame: out = 255 - v.
func Invert(g *image.Gray) *image.Gray {
	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(255 - i)
	}
	return applyLUT(g, &lut)
}

// Threshold binarizes a luma frame at the fixed threshold t:
// values above t become 255, the rest 0.
func Threshold(g *image.Gray, t uint8) *image.Gray {
	var lut [256]uint8
	for i := range lut {
		if i > int(t) {
			lut[i] = 255
		}
	}
	return applyLUT(g, &lut)
}

// AdjustContrastRGB applies the midpoint contrast formula to each of
// the R, G and B channels of a color frame. Alpha is preserved.
func AdjustContrastRGB(frame *image.NRGBA, m float64) *image.NRGBA {
	lut := contrastLUT(m)
	return applyLUTRGB(frame, &lut)
}

// AdjustBrightnessRGB applies the linear brightness formula to each of
// the R, G and B channels of a color frame. Alpha is preserved.
func AdjustBrightnessRGB(frame *image.NRGBA, m float64) *image.NRGBA {
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampU8(math.RoundToEven(m * float64(i)))
	}
	return applyLUTRGB(frame, &lut)
}

func contrastLUT(m float64) [256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampU8(math.RoundToEven(128.0 + m*(float64(i)-128.0)))
	}
	return lut
}

func applyLUT(g *image.Gray, lut *[256]uint8) *image.Gray {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := g.Pix[y*g.Stride : y*g.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x, v := range src {
			dst[x] = lut[v]
		}
	}
	return out
}

func applyLUTRGB(frame *image.NRGBA, lut *[256]uint8) *image.NRGBA {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := frame.Pix[y*frame.Stride : y*frame.Stride+w*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x := 0; x < w; x++ {
			dst[x*4] = lut[src[x*4]]
			dst[x*4+1] = lut[src[x*4+1]]
			dst[x*4+2] = lut[src[x*4+2]]
			dst[x*4+3] = src[x*4+3]
		}
	}
	return out
}
