package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoolbox/internal/model"
)

func TestTimestampSeconds(t *testing.T) {
	ts, err := Lookup("timestamp")
	require.NoError(t, err)

	out, err := ts.Apply(model.GenericInput{"value": "1700000000"}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), out["unixSeconds"])
	assert.Equal(t, "2023-11-14 22:13:20", out["utc"])
	assert.Equal(t, "seconds", out["inputUnit"])
}

func TestTimestampMillisAutodetect(t *testing.T) {
	ts, err := Lookup("timestamp")
	require.NoError(t, err)

	out, err := ts.Apply(model.GenericInput{"value": "1700000000000"}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), out["unixSeconds"])
	assert.Equal(t, "milliseconds", out["inputUnit"])
}

func TestTimestampFromDate(t *testing.T) {
	ts, err := Lookup("timestamp")
	require.NoError(t, err)

	out, err := ts.Apply(model.GenericInput{"value": "2023-11-14T22:13:20Z"}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), out["unixSeconds"])
	assert.Equal(t, "date", out["inputUnit"])
}

func TestTimestampTimezone(t *testing.T) {
	ts, err := Lookup("timestamp")
	require.NoError(t, err)

	out, err := ts.Apply(model.GenericInput{"value": "0"}, model.Settings{Timezone: "America/New_York"})
	require.NoError(t, err)
	assert.Equal(t, "1969-12-31 19:00:00", out["local"])

	_, err = ts.Apply(model.GenericInput{"value": "0"}, model.Settings{Timezone: "Not/AZone"})
	assert.Error(t, err)
}

func TestTimestampEmptyInput(t *testing.T) {
	ts, err := Lookup("timestamp")
	require.NoError(t, err)

	_, err = ts.Apply(model.GenericInput{}, model.Settings{})
	assert.Error(t, err)
}
