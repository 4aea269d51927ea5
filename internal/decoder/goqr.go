package decoder

import (
	"image"

	"github.com/liyue201/goqr"
)

// quircBackend decodes with the goqr recognizer. Unlike gozxing it
// reports the symbol's true version and EC level.
type quircBackend struct{}

func newQuircBackend() Backend { return &quircBackend{} }

func (b *quircBackend) Name() string { return BackendQuirc }

func (b *quircBackend) Decode(luma *image.Gray) (Result, error) {
	symbols, err := goqr.Recognize(luma)
	if err != nil {
		return Result{}, err
	}
	if len(symbols) == 0 {
		return Result{}, errNoQRFound
	}

	sym := symbols[0]
	version := sym.Version
	if version < 1 {
		version = 1
	} else if version > 40 {
		version = 40
	}
	return Result{
		Content: string(sym.Payload),
		Version: version,
		EC:      quircECName(sym.EccLevel),
	}, nil
}

// quircECName maps the quirc ecc_level encoding (0=M 1=L 2=H 3=Q) to
// the standard letter.
func quircECName(level int) string {
	switch level {
	case 0:
		return ECMedium
	case 1:
		return ECLow
	case 2:
		return ECHigh
	case 3:
		return ECQuartile
	default:
		return ECMedium
	}
}
