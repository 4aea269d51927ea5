package pipeline

import (
	"image"

	"github.com/supernovae-ai/qrai-scanner/internal/imgproc"
)

// Strategy is a named single-pass preprocessing of the original frame.
// Strategies never compose: each is a pure function of the frame it is
// given, which bounds the search space.
type Strategy struct {
	Name  string
	Apply func(frame *image.NRGBA, luma *image.Gray) *image.Gray
}

// tier2Strategies returns the quick trio, in published order. Each
// receives the shared luma conversion of the original frame.
func tier2Strategies() []Strategy {
	return []Strategy{
		{Name: "otsu", Apply: func(_ *image.NRGBA, luma *image.Gray) *image.Gray {
			return imgproc.OtsuThreshold(luma)
		}},
		{Name: "inverted", Apply: func(_ *image.NRGBA, luma *image.Gray) *image.Gray {
			return imgproc.Invert(luma)
		}},
		{Name: "contrast_2.0", Apply: func(_ *image.NRGBA, luma *image.Gray) *image.Gray {
			return imgproc.Contrast(luma, 2.0)
		}},
	}
}

// tier3Strategies returns the parallel pool: channel extractions, HSV
// components, custom grayscale weightings and linear combinations.
func tier3Strategies() []Strategy {
	channel := func(c imgproc.Channel) Strategy {
		return Strategy{
			Name: "channel_" + c.String(),
			Apply: func(frame *image.NRGBA, _ *image.Gray) *image.Gray {
				return imgproc.ExtractChannel(frame, c)
			},
		}
	}
	gray := func(name string, wr, wg, wb float64) Strategy {
		return Strategy{
			Name: "grayscale_" + name,
			Apply: func(frame *image.NRGBA, _ *image.Gray) *image.Gray {
				return imgproc.CustomGrayscale(frame, wr, wg, wb)
			},
		}
	}
	return []Strategy{
		channel(imgproc.ChannelRed),
		channel(imgproc.ChannelGreen),
		channel(imgproc.ChannelBlue),
		channel(imgproc.ChannelSaturation),
		channel(imgproc.ChannelHue),
		channel(imgproc.ChannelValue),
		gray("balanced", 0.33, 0.33, 0.34),
		gray("red_blue", 0.5, 0.0, 0.5),
		gray("blue_only", 0.0, 0.0, 1.0),
		gray("blue_heavy", 0.1, 0.1, 0.8),
		{Name: "red_blue_minus_green", Apply: func(frame *image.NRGBA, _ *image.Gray) *image.Gray {
			return imgproc.RedBlueAverageMinusGreen(frame)
		}},
		{Name: "inverted_green", Apply: func(frame *image.NRGBA, _ *image.Gray) *image.Gray {
			return imgproc.Invert(imgproc.ExtractChannel(frame, imgproc.ChannelGreen))
		}},
	}
}
