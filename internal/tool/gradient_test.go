package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoolbox/internal/model"
)

func gradientInput(kind string) model.GenericInput {
	return model.GenericInput{
		"type":  kind,
		"angle": 90,
		"stops": []interface{}{
			map[string]interface{}{"color": "#ffffff", "position": 0},
			map[string]interface{}{"color": "#000000", "position": 100},
		},
	}
}

func TestGradientLinear(t *testing.T) {
	g, err := Lookup("gradient")
	require.NoError(t, err)

	out, err := g.Apply(gradientInput("linear"), model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "background: linear-gradient(90deg, #ffffff 0%, #000000 100%);", out["css"])
	assert.Equal(t, 2, out["stopCount"])
}

func TestGradientIdempotent(t *testing.T) {
	g, err := Lookup("gradient")
	require.NoError(t, err)

	first, err := g.Apply(gradientInput("conic"), model.Settings{})
	require.NoError(t, err)
	second, err := g.Apply(gradientInput("conic"), model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, first["css"], second["css"])
}

func TestGradientUnknownTypeFallsBackToLinear(t *testing.T) {
	g, err := Lookup("gradient")
	require.NoError(t, err)

	out, err := g.Apply(gradientInput("spiral"), model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "linear", out["type"])
}

func TestGradientClampsStopPositions(t *testing.T) {
	g, err := Lookup("gradient")
	require.NoError(t, err)

	in := model.GenericInput{
		"stops": []interface{}{
			map[string]interface{}{"color": "red", "position": -40},
			map[string]interface{}{"color": "blue", "position": 250},
		},
	}
	out, err := g.Apply(in, model.Settings{})
	require.NoError(t, err)

	assert.Contains(t, out["css"], "red 0%")
	assert.Contains(t, out["css"], "blue 100%")
}

func TestGradientRequiresTwoStops(t *testing.T) {
	g, err := Lookup("gradient")
	require.NoError(t, err)

	_, err = g.Apply(model.GenericInput{
		"stops": []interface{}{
			map[string]interface{}{"color": "#fff", "position": 50},
		},
	}, model.Settings{})
	assert.Error(t, err)

	_, err = g.Apply(model.GenericInput{}, model.Settings{})
	assert.Error(t, err)
}
