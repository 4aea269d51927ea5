package common

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_MeasuresElapsed(t *testing.T) {
	timer := NewTimer()
	time.Sleep(5 * time.Millisecond)
	d := timer.Stop()
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
	assert.Equal(t, d, timer.Duration())
}

func TestNamedTimer(t *testing.T) {
	timer := NewNamedTimer("decode")
	timer.Stop()
	assert.Equal(t, "decode", timer.Name())
	assert.True(t, strings.HasPrefix(timer.String(), "decode: "))
}

func TestUnnamedTimer_String(t *testing.T) {
	timer := NewTimer()
	timer.Stop()
	assert.NotEmpty(t, timer.String())
	assert.Empty(t, timer.Name())
}
