package tool

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoolbox/internal/model"
)

func tinyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestBase64ImageEncode(t *testing.T) {
	b, err := Lookup("base64-image")
	require.NoError(t, err)

	raw := tinyPNG(t, 3, 2)
	out, err := b.Apply(model.GenericInput{"data": raw}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "png", out["format"])
	assert.Equal(t, 3, out["width"])
	assert.Equal(t, 2, out["height"])

	uri, ok := out["dataUri"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestBase64ImageDecodeRoundTrip(t *testing.T) {
	b, err := Lookup("base64-image")
	require.NoError(t, err)

	raw := tinyPNG(t, 5, 7)
	encoded, err := b.Apply(model.GenericInput{"data": raw}, model.Settings{})
	require.NoError(t, err)

	decoded, err := b.Apply(model.GenericInput{
		"mode": "decode",
		"data": encoded["dataUri"],
	}, model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, "png", decoded["format"])
	assert.Equal(t, 5, decoded["width"])
	assert.Equal(t, 7, decoded["height"])
	assert.Equal(t, len(raw), decoded["sizeBytes"])
}

func TestBase64ImageRejectsBadInput(t *testing.T) {
	b, err := Lookup("base64-image")
	require.NoError(t, err)

	_, err = b.Apply(model.GenericInput{}, model.Settings{})
	assert.Error(t, err)

	_, err = b.Apply(model.GenericInput{"mode": "decode", "data": "!!not-base64!!"}, model.Settings{})
	assert.Error(t, err)

	_, err = b.Apply(model.GenericInput{"mode": "decode", "data": "aGVsbG8="}, model.Settings{})
	assert.Error(t, err, "valid base64 but not an image")
}
