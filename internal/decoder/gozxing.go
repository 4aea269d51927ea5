package decoder

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// zxingBackend decodes with the gozxing QR reader. gozxing exposes the
// error correction level through result metadata but not the symbol
// version; the version is recovered as the smallest byte-mode version
// whose capacity fits the payload at that level.
type zxingBackend struct{}

func newZXingBackend() Backend { return &zxingBackend{} }

func (b *zxingBackend) Name() string { return BackendZXing }

func (b *zxingBackend) Decode(luma *image.Gray) (Result, error) {
	source := gozxing.NewLuminanceSourceFromImage(luma)
	bitmap, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(source))
	if err != nil {
		return Result{}, err
	}

	// The reader keeps per-decode state; one instance per call keeps
	// the backend safe for concurrent strategies.
	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bitmap, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	})
	if err != nil {
		return Result{}, err
	}

	content := result.GetText()
	ec := ecFromMetadata(result)
	return Result{
		Content: content,
		Version: minimalVersionFor(len(content), ec),
		EC:      ec,
	}, nil
}

func ecFromMetadata(result *gozxing.Result) string {
	meta := result.GetResultMetadata()
	if v, ok := meta[gozxing.ResultMetadataType_ERROR_CORRECTION_LEVEL]; ok {
		if s, ok := v.(string); ok {
			switch s {
			case ECLow, ECMedium, ECQuartile, ECHigh:
				return s
			}
		}
	}
	return ECMedium
}
