package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Minute, ParseDuration("2m", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 8, ParseValue("8"))
	assert.Equal(t, 4.5, ParseValue(" 4.5 "))
	assert.Equal(t, "8px", ParseValue("8px"))
}

func TestNumeric(t *testing.T) {
	f, ok := Numeric(3)
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = Numeric("4.5")
	assert.True(t, ok)
	assert.Equal(t, 4.5, f)

	_, ok = Numeric([]string{"no"})
	assert.False(t, ok)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "8", FormatNumber(8))
	assert.Equal(t, "8.5", FormatNumber(8.5))
	assert.Equal(t, "-3", FormatNumber(-3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(50, 0, 10))
	assert.Equal(t, 7.0, Clamp(7, 0, 10))
	assert.Equal(t, 4, ClampInt(4, 1, 31))
	assert.Equal(t, 31, ClampInt(99, 1, 31))
}
