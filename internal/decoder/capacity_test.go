package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimalVersionFor(t *testing.T) {
	tests := []struct {
		name string
		n    int
		ec   string
		want int
	}{
		{"empty_payload", 0, ECMedium, 1},
		{"fits_v1_m", 14, ECMedium, 1},
		{"spills_to_v2_m", 15, ECMedium, 2},
		{"example_url_at_m", 19, ECMedium, 2},
		{"fits_v1_l", 17, ECLow, 1},
		{"high_ec_needs_more", 17, ECHigh, 3},
		{"large_payload", 1000, ECMedium, 26},
		{"beyond_v40_caps", 5000, ECLow, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, minimalVersionFor(tt.n, tt.ec))
		})
	}
}

func TestByteCapacity_MonotonicPerLevel(t *testing.T) {
	for level := 0; level < 4; level++ {
		for v := 1; v < 40; v++ {
			assert.Greater(t, byteCapacity[v][level], byteCapacity[v-1][level],
				"capacity must grow with version (level index %d, version %d)", level, v+1)
		}
	}
}

func TestByteCapacity_LevelOrdering(t *testing.T) {
	// More error correction always means less data capacity.
	for v := 0; v < 40; v++ {
		caps := byteCapacity[v]
		assert.Greater(t, caps[0], caps[1], "L > M at version %d", v+1)
		assert.Greater(t, caps[1], caps[2], "M > Q at version %d", v+1)
		assert.Greater(t, caps[2], caps[3], "Q > H at version %d", v+1)
	}
}
