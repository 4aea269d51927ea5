package qrai

import (
	"fmt"
	"os"
)

// IsValid reports whether the image at path contains a decodable QR
// code, returning its content when it does. All errors collapse to
// ("", false).
func IsValid(path string) (string, bool) {
	result, err := decodeFile(path)
	if err != nil {
		return "", false
	}
	return result.Content, true
}

// Score returns the scannability score for the image at path, or 0 on
// any error.
func Score(path string) uint8 {
	result, err := validateFile(path)
	if err != nil {
		return 0
	}
	return result.Score
}

// PassesThreshold reports whether the image at path scores at least
// min. Any error counts as a failing score.
func PassesThreshold(path string, min uint8) bool {
	return Score(path) >= min
}

// ProductionReadyScore is the minimum score Summarize considers ready
// to ship.
const ProductionReadyScore = 70

// Summarize validates the image at path and condenses the outcome.
// Errors yield a zero-score Poor summary rather than propagating.
func Summarize(path string) Summary {
	result, err := validateFile(path)
	if err != nil {
		return Summary{Rating: RatingPoor}
	}

	s := Summary{
		Valid:           result.Decodable,
		Score:           result.Score,
		Rating:          RatingForScore(result.Score),
		ProductionReady: result.Score >= ProductionReadyScore,
	}
	if result.Content != nil {
		s.Content = *result.Content
	}
	if result.Metadata != nil {
		s.ECCLevel = result.Metadata.ErrorCorrection
	}
	return s
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: caller-supplied image path is the API
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func validateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

func decodeFile(path string) (*DecodeResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeOnly(data)
}
