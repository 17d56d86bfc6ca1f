package tool

import (
	"fmt"

	"devtoolbox/internal/model"
	"devtoolbox/pkg/utils"
)

func init() {
	Register(&borderRadiusTool{})
}

// borderRadiusTool builds a border-radius declaration from four corner
// values. Negative radii are clamped to 0; an unrecognized unit falls
// through to px.
type borderRadiusTool struct{}

func (t *borderRadiusTool) Name() string     { return "border-radius" }
func (t *borderRadiusTool) Category() string { return "css" }

var cssUnits = map[string]bool{"px": true, "em": true, "rem": true, "%": true}

func cssUnit(in model.GenericInput, settings model.Settings) string {
	unit := stringField(in, "unit")
	if unit == "" {
		unit = settings.Unit
	}
	if !cssUnits[unit] {
		return "px"
	}
	return unit
}

func (t *borderRadiusTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("at least one corner radius is required")
	}

	unit := cssUnit(in, settings)
	corners := [4]float64{}
	keys := [4]string{"topLeft", "topRight", "bottomRight", "bottomLeft"}
	for i, key := range keys {
		corners[i] = utils.Clamp(numField(in, key, 0), 0, 10000)
	}

	uniform := corners[0] == corners[1] && corners[1] == corners[2] && corners[2] == corners[3]

	var css string
	if uniform {
		css = fmt.Sprintf("border-radius: %s%s;", utils.FormatNumber(corners[0]), unit)
	} else {
		css = fmt.Sprintf("border-radius: %s%s %s%s %s%s %s%s;",
			utils.FormatNumber(corners[0]), unit,
			utils.FormatNumber(corners[1]), unit,
			utils.FormatNumber(corners[2]), unit,
			utils.FormatNumber(corners[3]), unit,
		)
	}

	return model.GenericOutput{
		"css":     css,
		"uniform": uniform,
		"unit":    unit,
	}, nil
}
