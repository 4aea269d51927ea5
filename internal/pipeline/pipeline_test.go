package pipeline

import (
	"errors"
	"image"
	"image/color"
	"sync/atomic"
	"testing"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supernovae-ai/qrai-scanner/internal/decoder"
	"github.com/supernovae-ai/qrai-scanner/internal/imgproc"
)

var errNotFound = errors.New("no symbol")

// condBackend succeeds when the frame's top-left pixel satisfies the
// predicate, letting tests target a specific tier's preprocessing.
type condBackend struct {
	name     string
	accept   func(*image.Gray) bool
	attempts atomic.Int64
}

func (b *condBackend) Name() string { return b.name }

func (b *condBackend) Decode(luma *image.Gray) (decoder.Result, error) {
	b.attempts.Add(1)
	if b.accept != nil && b.accept(luma) {
		return decoder.Result{Content: "matched", Version: 1, EC: decoder.ECMedium}, nil
	}
	return decoder.Result{}, errNotFound
}

func blackFrame(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	return img
}

func TestDecode_Tier1RawLuma(t *testing.T) {
	backend := &condBackend{name: "fake", accept: func(g *image.Gray) bool {
		return g.Pix[0] == 0 // raw luma of a black frame
	}}
	p := New(decoder.NewWithBackends(backend), DefaultConfig())

	out := p.Decode(blackFrame(16, 16))
	require.True(t, out.OK)
	assert.Equal(t, "matched", out.Content)
	assert.EqualValues(t, 1, backend.attempts.Load(), "tier 1 must short-circuit")
}

func TestDecode_Tier2Inverted(t *testing.T) {
	// Only an all-white frame is accepted; a black input frame decodes
	// only after the tier-2 invert strategy.
	backend := &condBackend{name: "fake", accept: func(g *image.Gray) bool {
		return g.Pix[0] == 255
	}}
	p := New(decoder.NewWithBackends(backend), DefaultConfig())

	out := p.Decode(blackFrame(16, 16))
	require.True(t, out.OK)
	// Attempts: tier1 raw (fail), tier2 otsu (fail), tier2 invert (hit).
	assert.EqualValues(t, 3, backend.attempts.Load())
}

func TestDecode_AllTiersExhausted(t *testing.T) {
	backend := &condBackend{name: "fake"} // never accepts
	cfg := DefaultConfig()
	cfg.BruteForceSamples = 8 // keep the failure path quick
	p := New(decoder.NewWithBackends(backend), cfg)

	out := p.Decode(blackFrame(16, 16))
	assert.False(t, out.OK)
	// 1 raw + 3 quick trio + 12 pool + 8 brute force.
	assert.EqualValues(t, 24, backend.attempts.Load())
}

func TestDecode_Tier4Budget(t *testing.T) {
	slow := &condBackend{name: "slow"}
	cfg := DefaultConfig()
	cfg.Tier4Budget = time.Millisecond
	p := New(decoder.NewWithBackends(slow), cfg)

	start := time.Now()
	out := p.Decode(blackFrame(400, 400))
	assert.False(t, out.OK)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestDecode_CleanQRRealBackends(t *testing.T) {
	q, err := qrcode.New("https://example.com", qrcode.Medium)
	require.NoError(t, err)
	frame := imgproc.ToFrame(q.Image(400))

	p := New(decoder.New(), DefaultConfig())
	out := p.Decode(frame)
	require.True(t, out.OK)
	assert.Equal(t, "https://example.com", out.Content)
	assert.Len(t, out.Backends, 1, "pipeline records only the winning backend")
	assert.Equal(t, decoder.BackendZXing, out.Backends[0])
}

func TestDecode_InvertedQRRealBackends(t *testing.T) {
	q, err := qrcode.New("inverted payload", qrcode.Medium)
	require.NoError(t, err)
	frame := imgproc.ToFrame(q.Image(400))

	// Flip black and white; tier 2's invert strategy recovers it even
	// if neither backend reads the reversed symbol directly.
	for i := 0; i < len(frame.Pix); i += 4 {
		frame.Pix[i] = 255 - frame.Pix[i]
		frame.Pix[i+1] = 255 - frame.Pix[i+1]
		frame.Pix[i+2] = 255 - frame.Pix[i+2]
	}

	p := New(decoder.New(), DefaultConfig())
	out := p.Decode(frame)
	require.True(t, out.OK)
	assert.Equal(t, "inverted payload", out.Content)
}

func TestDecode_DeterministicContent(t *testing.T) {
	q, err := qrcode.New("determinism", qrcode.Medium)
	require.NoError(t, err)
	frame := imgproc.ToFrame(q.Image(300))
	p := New(decoder.New(), DefaultConfig())

	first := p.Decode(frame)
	require.True(t, first.OK)
	for _i := 0; _i < 3; _i++ {
		out := p.Decode(frame)
		require.True(t, out.OK)
		assert.Equal(t, first.Content, out.Content)
	}
}
