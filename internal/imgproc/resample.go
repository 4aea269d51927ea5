package imgproc

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resize resamples a frame to the given dimensions with a Lanczos-3
// kernel.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// ResizeToFit shrinks a frame so its larger dimension equals maxDim,
// preserving aspect ratio. Frames already within the bound are cloned
// unchanged.
func ResizeToFit(img image.Image, maxDim int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return imaging.Clone(img)
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}

// Downscale resamples a frame by a factor of its original dimensions
// (0.5 halves each side). Dimensions are floored but never below 1.
func Downscale(img image.Image, factor float64) *image.NRGBA {
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// GaussianBlur applies a separable Gaussian with kernel radius ceil(3σ).
// Non-positive sigmas return an unmodified clone.
func GaussianBlur(img image.Image, sigma float64) *image.NRGBA {
	if sigma <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Blur(img, sigma)
}

// Sharpen convolves the frame with the 3x3 kernel
// [0 -1 0; -1 5 -1; 0 -1 0].
func Sharpen(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, [9]float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}, nil)
}
