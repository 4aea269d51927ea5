package pipeline

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleGrid_Deterministic(t *testing.T) {
	a := sampleGrid(256)
	b := sampleGrid(256)
	require.Equal(t, a, b, "the grid walk must be identical across calls")
}

func TestSampleGrid_Count(t *testing.T) {
	assert.Len(t, sampleGrid(256), 256)
	assert.Len(t, sampleGrid(10), 10)

	// The full product is 6*4*6*5*2 = 1440 combinations.
	assert.Len(t, sampleGrid(10_000), 1440)
}

func TestSampleGrid_PublishedOrder(t *testing.T) {
	samples := sampleGrid(256)

	// First sample: no resize, strongest blur, neutral contrast,
	// darkest brightness, luma first.
	first := samples[0]
	assert.Equal(t, 0, first.Resize)
	assert.InDelta(t, 1.5, first.Blur, 1e-9)
	assert.InDelta(t, 1.0, first.Contrast, 1e-9)
	assert.InDelta(t, 0.8, first.Brightness, 1e-9)
	assert.True(t, first.ToLuma)

	// Second flips only the luma toggle.
	second := samples[1]
	assert.False(t, second.ToLuma)
	assert.Equal(t, first.Resize, second.Resize)
	assert.InDelta(t, first.Brightness, second.Brightness, 1e-9)

	// Resize ascends across the walk, and no-resize comes first.
	lastResize := -1
	for _, s := range samples {
		require.GreaterOrEqual(t, s.Resize, lastResize)
		lastResize = s.Resize
	}

	// Within one resize bucket, blur descends.
	for i := 1; i < len(samples); i++ {
		if samples[i].Resize == samples[i-1].Resize {
			assert.LessOrEqual(t, samples[i].Blur, samples[i-1].Blur)
		}
	}
}

func TestSampleGrid_AllUnique(t *testing.T) {
	samples := sampleGrid(256)
	seen := make(map[Params]bool, len(samples))
	for _, s := range samples {
		assert.False(t, seen[s], "duplicate sample %s", s)
		seen[s] = true
	}
}

func TestApplyParams(t *testing.T) {
	frame := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for i := range frame.Pix {
		frame.Pix[i] = uint8(i)
	}
	scratch := make([]uint8, 64*48)

	t.Run("identity_params_keep_dimensions", func(t *testing.T) {
		out := applyParams(frame, Params{Contrast: 1.0, Brightness: 1.0, ToLuma: true}, scratch)
		b := out.Bounds()
		assert.Equal(t, 64, b.Dx())
		assert.Equal(t, 48, b.Dy())
	})

	t.Run("resize_bounds_larger_dimension", func(t *testing.T) {
		out := applyParams(frame, Params{Resize: 32, Contrast: 1.0, Brightness: 1.0}, scratch)
		b := out.Bounds()
		assert.LessOrEqual(t, b.Dx(), 32)
		assert.LessOrEqual(t, b.Dy(), 32)
	})

	t.Run("color_path_produces_luma", func(t *testing.T) {
		out := applyParams(frame, Params{Contrast: 2.0, Brightness: 1.1, Blur: 0.5}, scratch)
		require.NotNil(t, out)
		assert.Equal(t, 64, out.Bounds().Dx())
	})
}

func TestStrategies_NamesAndCounts(t *testing.T) {
	t2 := tier2Strategies()
	require.Len(t, t2, 3)
	assert.Equal(t, "otsu", t2[0].Name)
	assert.Equal(t, "inverted", t2[1].Name)
	assert.Equal(t, "contrast_2.0", t2[2].Name)

	t3 := tier3Strategies()
	assert.Len(t, t3, 12)
	names := make(map[string]bool)
	for _, s := range t3 {
		assert.NotEmpty(t, s.Name)
		assert.False(t, names[s.Name], "duplicate strategy name %s", s.Name)
		names[s.Name] = true
	}
}
