package tool

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"devtoolbox/internal/model"
)

func init() {
	Register(&base64ImageTool{})
}

// base64ImageTool converts between raw image bytes and base64 data URIs,
// reporting decoded image metadata in both directions.
type base64ImageTool struct{}

func (t *base64ImageTool) Name() string     { return "base64-image" }
func (t *base64ImageTool) Category() string { return "conversion" }

func (t *base64ImageTool) Extensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tif", ".tiff"}
}

func (t *base64ImageTool) MaxFileSizeMB() int64 { return 10 }

func (t *base64ImageTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	mode := stringField(in, "mode")

	switch mode {
	case "decode":
		return t.decode(in)
	case "", "encode":
		return t.encode(in)
	default:
		return t.encode(in)
	}
}

func (t *base64ImageTool) encode(in model.GenericInput) (model.GenericOutput, error) {
	raw, ok := in["data"].([]byte)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("image data is required")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("not a decodable image: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return model.GenericOutput{
		"dataUri":   fmt.Sprintf("data:image/%s;base64,%s", format, encoded),
		"format":    format,
		"width":     cfg.Width,
		"height":    cfg.Height,
		"sizeBytes": len(raw),
	}, nil
}

func (t *base64ImageTool) decode(in model.GenericInput) (model.GenericOutput, error) {
	data := stringField(in, "data")
	if data == "" {
		return nil, fmt.Errorf("base64 data is required")
	}

	// Strip a data-URI prefix if present
	if strings.HasPrefix(data, "data:") {
		idx := strings.Index(data, ";base64,")
		if idx < 0 {
			return nil, fmt.Errorf("data URI is not base64-encoded")
		}
		data = data[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoded bytes are not an image: %w", err)
	}

	return model.GenericOutput{
		"format":    format,
		"width":     cfg.Width,
		"height":    cfg.Height,
		"sizeBytes": len(raw),
	}, nil
}
