package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoolbox/internal/model"
)

func TestShadowBasic(t *testing.T) {
	s, err := Lookup("box-shadow")
	require.NoError(t, err)

	out, err := s.Apply(model.GenericInput{
		"offsetX": 2, "offsetY": 4, "blur": 6, "spread": 0,
		"color": "#333333",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "box-shadow: 2px 4px 6px 0px #333333;", out["css"])
}

func TestShadowInset(t *testing.T) {
	s, err := Lookup("box-shadow")
	require.NoError(t, err)

	out, err := s.Apply(model.GenericInput{
		"offsetX": 1, "offsetY": 1, "blur": 2,
		"color": "#000", "inset": true,
	}, model.Settings{})
	require.NoError(t, err)

	assert.Contains(t, out["css"], "inset ")
	assert.Equal(t, true, out["inset"])
}

func TestShadowClampsNegativeBlur(t *testing.T) {
	s, err := Lookup("box-shadow")
	require.NoError(t, err)

	out, err := s.Apply(model.GenericInput{
		"offsetX": 0, "offsetY": 0, "blur": -10, "color": "#000",
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "box-shadow: 0px 0px 0px 0px #000;", out["css"])
}

func TestShadowRejectsInvalidColor(t *testing.T) {
	s, err := Lookup("box-shadow")
	require.NoError(t, err)

	_, err = s.Apply(model.GenericInput{
		"offsetX": 1, "color": "##nope!;",
	}, model.Settings{})
	assert.Error(t, err)
}

func TestShadowEmptyInput(t *testing.T) {
	s, err := Lookup("box-shadow")
	require.NoError(t, err)

	_, err = s.Apply(model.GenericInput{}, model.Settings{})
	assert.Error(t, err)
}
