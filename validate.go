package qrai

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"sync"

	"github.com/supernovae-ai/qrai-scanner/internal/decoder"
	"github.com/supernovae-ai/qrai-scanner/internal/imgproc"
	"github.com/supernovae-ai/qrai-scanner/internal/pipeline"
	"github.com/supernovae-ai/qrai-scanner/internal/stress"
)

var (
	engineOnce sync.Once
	facade     *decoder.Facade
	tiered     *pipeline.Pipeline
)

// engine returns the process-wide facade and pipeline, initialised
// lazily on first use.
func engine() (*decoder.Facade, *pipeline.Pipeline) {
	engineOnce.Do(func() {
		facade = decoder.New()
		tiered = pipeline.New(facade, pipeline.DefaultConfig())
	})
	return facade, tiered
}

// Validate decodes a QR image through the full tiered pipeline, runs
// all six stress tests and computes the scannability score.
//
// It returns ErrDecodeFailed when no tier finds a QR code, an
// *ImageLoadError for unreadable inputs and an *ImageTooLargeError
// for inputs over MaxImageBytes.
func Validate(data []byte) (*ValidationResult, error) {
	return validate(data, false)
}

// ValidateFast is Validate with only the {original, downscale_50,
// blur_light} stress tests; unmeasured tests count as failed, so fast
// scores never exceed full scores for the same image.
func ValidateFast(data []byte) (*ValidationResult, error) {
	return validate(data, true)
}

func validate(data []byte, fast bool) (*ValidationResult, error) {
	frame, err := loadFrame(data)
	if err != nil {
		return nil, err
	}

	fac, pipe := engine()
	out := pipe.Decode(frame)
	if !out.OK {
		return nil, ErrDecodeFailed
	}

	var results stress.Results
	var maxBackends int
	if fast {
		results, maxBackends = stress.RunFast(fac, frame)
	} else {
		results, maxBackends = stress.Run(fac, frame)
	}
	score := stress.Score(results, maxBackends >= 2)
	slog.Debug("validation complete", "score", score, "fast", fast)

	content := out.Content
	return &ValidationResult{
		Score:         score,
		Decodable:     true,
		Content:       &content,
		Metadata:      metadataFrom(out),
		StressResults: stressResultsFrom(results),
	}, nil
}

// DecodeOnly decodes a QR image and returns content plus metadata,
// skipping stress tests and scoring entirely.
func DecodeOnly(data []byte) (*DecodeResult, error) {
	frame, err := loadFrame(data)
	if err != nil {
		return nil, err
	}

	_, pipe := engine()
	out := pipe.Decode(frame)
	if !out.OK {
		return nil, ErrDecodeFailed
	}
	return &DecodeResult{Content: out.Content, Metadata: metadataFrom(out)}, nil
}

// loadFrame enforces the input size cap, decodes PNG/JPEG bytes and
// normalizes the result into an NRGBA frame shared read-only by every
// downstream strategy.
func loadFrame(data []byte) (*image.NRGBA, error) {
	if len(data) > MaxImageBytes {
		return nil, &ImageTooLargeError{Size: len(data)}
	}
	if len(data) == 0 {
		return nil, &ImageLoadError{Err: errors.New("empty input")}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageLoadError{Err: err}
	}
	// Other decoders may be registered by transitive imports; the
	// accepted input formats are PNG and JPEG only.
	if format != "png" && format != "jpeg" {
		return nil, &ImageLoadError{Err: fmt.Errorf("unsupported format: %s", format)}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &ImageLoadError{Err: errors.New("decoded frame has zero dimensions")}
	}
	slog.Debug("image loaded", "format", format, "width", b.Dx(), "height", b.Dy())
	return imgproc.ToFrame(img), nil
}

func metadataFrom(out decoder.Outcome) *Metadata {
	return &Metadata{
		Version:         uint8(out.Version),
		ErrorCorrection: ECCLevel(out.EC),
		Modules:         uint8(out.Modules()),
		DecodersSuccess: out.Backends,
	}
}

func stressResultsFrom(r stress.Results) StressResults {
	return StressResults{
		Original:    r.Original,
		Downscale50: r.Downscale50,
		Downscale25: r.Downscale25,
		BlurLight:   r.BlurLight,
		BlurMedium:  r.BlurMedium,
		LowContrast: r.LowContrast,
	}
}
