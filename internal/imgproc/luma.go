package imgproc

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Channel selects which per-pixel component ExtractChannel maps to luma.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelSaturation
	ChannelHue
	ChannelValue
)

// String returns the lowercase channel name.
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelSaturation:
		return "saturation"
	case ChannelHue:
		return "hue"
	case ChannelValue:
		return "value"
	default:
		return "unknown"
	}
}

// ToFrame normalizes any decoded image into an NRGBA frame.
func ToFrame(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ToLuma converts a frame to 8-bit luminance using the ITU-R BT.601
// weights (0.299 R + 0.587 G + 0.114 B).
func ToLuma(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		out := image.NewGray(g.Bounds())
		copy(out.Pix, g.Pix)
		return out
	}
	frame := imaging.Clone(img)
	return lumaFromNRGBA(frame)
}

// ToLumaInto converts a frame to luminance writing into buf, which must
// hold at least width*height bytes. The returned Gray aliases buf.
func ToLumaInto(frame *image.NRGBA, buf []uint8) *image.Gray {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	g := &image.Gray{Pix: buf[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}
	fillLuma(frame, g)
	return g
}

func lumaFromNRGBA(frame *image.NRGBA) *image.Gray {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	g := image.NewGray(image.Rect(0, 0, w, h))
	fillLuma(frame, g)
	return g
}

func fillLuma(frame *image.NRGBA, g *image.Gray) {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+w*4]
		out := g.Pix[y*g.Stride : y*g.Stride+w]
		for x := 0; x < w; x++ {
			r := uint32(row[x*4])
			gr := uint32(row[x*4+1])
			b := uint32(row[x*4+2])
			// 16-bit fixed-point BT.601; wide intermediate avoids overflow.
			out[x] = uint8((19595*r + 38470*gr + 7471*b + 1<<15) >> 16)
		}
	}
}

// CustomGrayscale computes wr*R + wg*G + wb*B per pixel, clamped to
// [0,255]. Weights may be negative or exceed 1.
func CustomGrayscale(frame *image.NRGBA, wr, wg, wb float64) *image.Gray {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+w*4]
		out := g.Pix[y*g.Stride : y*g.Stride+w]
		for x := 0; x < w; x++ {
			v := wr*float64(row[x*4]) + wg*float64(row[x*4+1]) + wb*float64(row[x*4+2])
			out[x] = clampU8(math.RoundToEven(v))
		}
	}
	return g
}

// RedBlueAverageMinusGreen computes (R+B)/2 - G per pixel, clamped to
// [0,255]; the halving rounds half to even. Separates QR modules drawn
// in magenta-on-green style art.
func RedBlueAverageMinusGreen(frame *image.NRGBA) *image.Gray {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+w*4]
		out := g.Pix[y*g.Stride : y*g.Stride+w]
		for x := 0; x < w; x++ {
			sum := int32(row[x*4]) + int32(row[x*4+2])
			half := sum / 2
			if sum%2 == 1 && half%2 == 1 {
				half++
			}
			v := half - int32(row[x*4+1])
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			out[x] = uint8(v)
		}
	}
	return g
}

// ExtractChannel maps one color component of the frame to a luma frame.
// R, G and B copy the channel value directly. Saturation and value are
// the HSV components scaled to [0,255]; hue is quantised to [0,255].
func ExtractChannel(frame *image.NRGBA, c Channel) *image.Gray {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+w*4]
		out := g.Pix[y*g.Stride : y*g.Stride+w]
		for x := 0; x < w; x++ {
			r, gr, b := row[x*4], row[x*4+1], row[x*4+2]
			out[x] = channelValue(c, r, gr, b)
		}
	}
	return g
}

func channelValue(c Channel, r, g, b uint8) uint8 {
	switch c {
	case ChannelRed:
		return r
	case ChannelGreen:
		return g
	case ChannelBlue:
		return b
	case ChannelValue:
		return max8(r, g, b)
	case ChannelSaturation:
		mx := max8(r, g, b)
		if mx == 0 {
			return 0
		}
		mn := min8(r, g, b)
		// S = (max-min)/max, scaled to [0,255].
		return uint8((uint32(mx-mn)*255 + uint32(mx)/2) / uint32(mx))
	case ChannelHue:
		return hueValue(r, g, b)
	default:
		return 0
	}
}

func hueValue(r8, g8, b8 uint8) uint8 {
	r := float64(r8) / 255.0
	g := float64(g8) / 255.0
	b := float64(b8) / 255.0

	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	delta := mx - mn
	if delta < 1e-9 {
		return 0
	}

	var hue float64
	switch mx {
	case r:
		hue = 60.0 * math.Mod((g-b)/delta, 6.0)
	case g:
		hue = 60.0 * ((b-r)/delta + 2.0)
	default:
		hue = 60.0 * ((r-g)/delta + 4.0)
	}
	if hue < 0 {
		hue += 360.0
	}
	return uint8(hue / 360.0 * 255.0)
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func max8(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min8(a, b, c uint8) uint8 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
