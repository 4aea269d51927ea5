package decoder

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend scripts one backend's behavior for facade tests.
type fakeBackend struct {
	name   string
	result Result
	err    error
	panics bool
	calls  int
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Decode(_ *image.Gray) (Result, error) {
	f.calls++
	if f.panics {
		panic("backend blew up")
	}
	return f.result, f.err
}

func testLuma() *image.Gray {
	return image.NewGray(image.Rect(0, 0, 8, 8))
}

func TestAttempt_FirstBackendWins(t *testing.T) {
	a := &fakeBackend{name: "a", result: Result{Content: "from-a", Version: 2, EC: ECMedium}}
	b := &fakeBackend{name: "b", result: Result{Content: "from-b", Version: 3, EC: ECLow}}
	f := NewWithBackends(a, b)

	out := f.Attempt(testLuma())
	require.True(t, out.OK)
	assert.Equal(t, "from-a", out.Content)
	assert.Equal(t, []string{"a"}, out.Backends)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 0, b.calls, "second backend must not run after a success")
}

func TestAttempt_FallsBackToSecond(t *testing.T) {
	a := &fakeBackend{name: "a", err: errors.New("nope")}
	b := &fakeBackend{name: "b", result: Result{Content: "from-b", Version: 1, EC: ECHigh}}
	f := NewWithBackends(a, b)

	out := f.Attempt(testLuma())
	require.True(t, out.OK)
	assert.Equal(t, "from-b", out.Content)
	assert.Equal(t, []string{"b"}, out.Backends)
}

func TestAttempt_AllFail(t *testing.T) {
	f := NewWithBackends(
		&fakeBackend{name: "a", err: errors.New("nope")},
		&fakeBackend{name: "b", err: errors.New("also nope")},
	)

	out := f.Attempt(testLuma())
	assert.False(t, out.OK)
	assert.Empty(t, out.Backends)
}

func TestAttempt_PanicIsPerBackendFailure(t *testing.T) {
	a := &fakeBackend{name: "a", panics: true}
	b := &fakeBackend{name: "b", result: Result{Content: "survived", Version: 1, EC: ECMedium}}
	f := NewWithBackends(a, b)

	out := f.Attempt(testLuma())
	require.True(t, out.OK)
	assert.Equal(t, "survived", out.Content)
	assert.Equal(t, []string{"b"}, out.Backends)
}

func TestAttemptBoth_RecordsEverySuccess(t *testing.T) {
	a := &fakeBackend{name: BackendZXing, result: Result{Content: "hello", Version: 5, EC: ECMedium}}
	b := &fakeBackend{name: BackendQuirc, result: Result{Content: "hello", Version: 2, EC: ECQuartile}}
	f := NewWithBackends(a, b)

	out := f.AttemptBoth(testLuma())
	require.True(t, out.OK)
	assert.Equal(t, []string{BackendZXing, BackendQuirc}, out.Backends)
	assert.Equal(t, "hello", out.Content)
	// The quirc backend measures version and EC from the grid, so its
	// metadata wins over the estimate.
	assert.Equal(t, 2, out.Version)
	assert.Equal(t, ECQuartile, out.EC)
}

func TestAttemptBoth_SingleSuccess(t *testing.T) {
	a := &fakeBackend{name: BackendZXing, err: errors.New("nope")}
	b := &fakeBackend{name: BackendQuirc, result: Result{Content: "only-b", Version: 4, EC: ECLow}}
	f := NewWithBackends(a, b)

	out := f.AttemptBoth(testLuma())
	require.True(t, out.OK)
	assert.Equal(t, []string{BackendQuirc}, out.Backends)
	assert.Equal(t, 4, out.Version)
}

func TestAttemptBoth_BothPanicIsFailure(t *testing.T) {
	f := NewWithBackends(
		&fakeBackend{name: "a", panics: true},
		&fakeBackend{name: "b", panics: true},
	)
	out := f.AttemptBoth(testLuma())
	assert.False(t, out.OK)
}

func TestOutcome_Modules(t *testing.T) {
	tests := []struct {
		version int
		want    int
	}{
		{0, 0},
		{1, 21},
		{2, 25},
		{10, 57},
		{40, 177},
	}
	for _, tt := range tests {
		out := Outcome{Version: tt.version}
		assert.Equal(t, tt.want, out.Modules())
	}
}

func TestQuircECName(t *testing.T) {
	assert.Equal(t, ECMedium, quircECName(0))
	assert.Equal(t, ECLow, quircECName(1))
	assert.Equal(t, ECHigh, quircECName(2))
	assert.Equal(t, ECQuartile, quircECName(3))
	assert.Equal(t, ECMedium, quircECName(99))
}
