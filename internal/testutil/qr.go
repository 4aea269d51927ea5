// Package testutil generates QR test fixtures shared by the package
// test suites: clean symbols, degraded variants and non-QR images.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQR renders content as a clean black-on-white PNG of the
// given pixel size.
func GenerateQR(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return qrcode.Encode(content, level, size)
}

// GenerateQRImage renders content as a clean QR image.
func GenerateQRImage(content string, level qrcode.RecoveryLevel, size int) (image.Image, error) {
	q, err := qrcode.New(content, level)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}

// EncodePNG serialises an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Degrade resizes the image to targetSize and applies a Gaussian blur,
// simulating a QR photographed under poor conditions.
func Degrade(img image.Image, targetSize int, sigma float64) image.Image {
	small := imaging.Resize(img, targetSize, targetSize, imaging.Lanczos)
	if sigma <= 0 {
		return small
	}
	return imaging.Blur(small, sigma)
}

// Rotate90 rotates the image a quarter turn counter-clockwise.
func Rotate90(img image.Image) image.Image {
	return imaging.Rotate90(img)
}

// OverlayLogo draws a centred opaque square covering areaFraction of
// the image, standing in for a brand logo.
func OverlayLogo(img image.Image, areaFraction float64, c color.Color) image.Image {
	b := img.Bounds()
	out := imaging.Clone(img)

	side := int(float64(b.Dx()) * math.Sqrt(areaFraction))
	x0 := (b.Dx() - side) / 2
	y0 := (b.Dy() - side) / 2
	logo := image.Rect(x0, y0, x0+side, y0+side)
	draw.Draw(out, logo, &image.Uniform{C: c}, image.Point{}, draw.Src)
	return out
}

// NoiseImage produces a deterministic pseudo-random RGB noise image
// with no QR structure.
func NoiseImage(width, height int, seed int64) image.Image {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic fixture noise
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 255
	}
	return img
}

// GradientImage produces a smooth grayscale ramp, useful as a
// QR-free but structured input.
func GradientImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8((x + y) * 255 / (width + height))
			i := y*img.Stride + x*4
			img.Pix[i] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	return img
}
