package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoolbox/internal/model"
)

func TestTimeDiffBreakdown(t *testing.T) {
	td, err := Lookup("time-diff")
	require.NoError(t, err)

	out, err := td.Apply(model.GenericInput{
		"start": "2024-01-01T00:00:00Z",
		"end":   "2024-01-02T01:02:03Z",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out["days"])
	assert.Equal(t, int64(1), out["hours"])
	assert.Equal(t, int64(2), out["minutes"])
	assert.Equal(t, int64(3), out["seconds"])
	assert.Equal(t, int64(90123), out["totalSeconds"])
	assert.Equal(t, false, out["negative"])
	assert.Equal(t, "1d 1h 2m 3s", out["human"])
}

func TestTimeDiffReversedRange(t *testing.T) {
	td, err := Lookup("time-diff")
	require.NoError(t, err)

	out, err := td.Apply(model.GenericInput{
		"start": "2024-01-02",
		"end":   "2024-01-01",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, true, out["negative"])
	assert.Equal(t, int64(1), out["days"])
}

func TestTimeDiffRejectsMalformedDates(t *testing.T) {
	td, err := Lookup("time-diff")
	require.NoError(t, err)

	_, err = td.Apply(model.GenericInput{"start": "yesterday", "end": "2024-01-01"}, model.Settings{})
	assert.Error(t, err)

	_, err = td.Apply(model.GenericInput{}, model.Settings{})
	assert.Error(t, err)
}
