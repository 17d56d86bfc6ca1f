package tool

import (
	"fmt"
	"strings"

	"devtoolbox/internal/model"
	"devtoolbox/pkg/utils"
)

func init() {
	Register(&gradientTool{})
}

// gradientTool builds a CSS gradient from an ordered list of color stops.
// An unrecognized gradient type falls through to linear; stop positions
// are clamped into [0, 100].
type gradientTool struct{}

func (t *gradientTool) Name() string     { return "gradient" }
func (t *gradientTool) Category() string { return "css" }

type gradientStop struct {
	Color    string
	Position float64
}

func (t *gradientTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	stops, err := parseStops(in)
	if err != nil {
		return nil, err
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("a gradient needs at least 2 color stops, got %d", len(stops))
	}

	kind := stringField(in, "type")
	switch kind {
	case "linear", "radial", "conic":
	default:
		kind = "linear"
	}

	parts := make([]string, 0, len(stops)+1)
	switch kind {
	case "linear":
		angle := utils.Clamp(numField(in, "angle", 90), 0, 360)
		parts = append(parts, fmt.Sprintf("%sdeg", utils.FormatNumber(angle)))
	case "conic":
		angle := utils.Clamp(numField(in, "angle", 0), 0, 360)
		parts = append(parts, fmt.Sprintf("from %sdeg", utils.FormatNumber(angle)))
	case "radial":
		shape := stringField(in, "shape")
		if shape != "circle" && shape != "ellipse" {
			shape = "circle"
		}
		parts = append(parts, shape)
	}

	for _, s := range stops {
		parts = append(parts, fmt.Sprintf("%s %s%%", s.Color, utils.FormatNumber(s.Position)))
	}

	css := fmt.Sprintf("background: %s-gradient(%s);", kind, strings.Join(parts, ", "))

	return model.GenericOutput{
		"css":       css,
		"type":      kind,
		"stopCount": len(stops),
	}, nil
}

func parseStops(in model.GenericInput) ([]gradientStop, error) {
	raw, ok := in["stops"]
	if !ok {
		return nil, fmt.Errorf("stops are required")
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("stops must be a list of {color, position} objects")
	}

	stops := make([]gradientStop, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("stop %d is not an object", i)
		}
		stop := gradientStop{
			Color:    stringField(model.GenericInput(entry), "color"),
			Position: utils.Clamp(numField(model.GenericInput(entry), "position", 0), 0, 100),
		}
		if stop.Color == "" {
			return nil, fmt.Errorf("stop %d is missing a color", i)
		}
		stops = append(stops, stop)
	}
	return stops, nil
}
