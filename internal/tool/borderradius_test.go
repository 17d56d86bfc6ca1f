package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoolbox/internal/model"
)

func TestBorderRadiusUniform(t *testing.T) {
	br, err := Lookup("border-radius")
	require.NoError(t, err)

	out, err := br.Apply(model.GenericInput{
		"topLeft": 8, "topRight": 8, "bottomRight": 8, "bottomLeft": 8,
		"unit": "px",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "border-radius: 8px;", out["css"])
	assert.Equal(t, true, out["uniform"])
}

func TestBorderRadiusPerCorner(t *testing.T) {
	br, err := Lookup("border-radius")
	require.NoError(t, err)

	out, err := br.Apply(model.GenericInput{
		"topLeft": 4, "topRight": 8, "bottomRight": 12, "bottomLeft": 16,
		"unit": "rem",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "border-radius: 4rem 8rem 12rem 16rem;", out["css"])
	assert.Equal(t, false, out["uniform"])
}

func TestBorderRadiusStringValues(t *testing.T) {
	br, err := Lookup("border-radius")
	require.NoError(t, err)

	out, err := br.Apply(model.GenericInput{
		"topLeft": "8", "topRight": "8", "bottomRight": "8", "bottomLeft": "8",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "border-radius: 8px;", out["css"])
}

func TestBorderRadiusClampsNegative(t *testing.T) {
	br, err := Lookup("border-radius")
	require.NoError(t, err)

	out, err := br.Apply(model.GenericInput{
		"topLeft": -5, "topRight": -5, "bottomRight": -5, "bottomLeft": -5,
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "border-radius: 0px;", out["css"])
}

func TestBorderRadiusUnknownUnitFallsBackToPx(t *testing.T) {
	br, err := Lookup("border-radius")
	require.NoError(t, err)

	out, err := br.Apply(model.GenericInput{
		"topLeft": 2, "topRight": 2, "bottomRight": 2, "bottomLeft": 2,
		"unit": "parsec",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "px", out["unit"])
}

func TestBorderRadiusEmptyInput(t *testing.T) {
	br, err := Lookup("border-radius")
	require.NoError(t, err)

	_, err = br.Apply(model.GenericInput{}, model.Settings{})
	assert.Error(t, err)
}
