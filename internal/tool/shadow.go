package tool

import (
	"fmt"
	"regexp"
	"strings"

	"devtoolbox/internal/model"
	"devtoolbox/pkg/utils"
)

func init() {
	Register(&shadowTool{})
}

// shadowTool builds a box-shadow declaration. Blur is clamped to ≥ 0
// (negative blur is not valid CSS); offsets and spread may be negative.
type shadowTool struct{}

func (t *shadowTool) Name() string     { return "box-shadow" }
func (t *shadowTool) Category() string { return "css" }

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|rgba?\([0-9.,\s%]+\)|[a-zA-Z]+)$`)

func (t *shadowTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("shadow parameters are required")
	}

	color := stringField(in, "color")
	if color == "" {
		color = "rgba(0, 0, 0, 0.25)"
	}
	if !colorPattern.MatchString(strings.ReplaceAll(color, " ", "")) {
		return nil, fmt.Errorf("invalid color value: %s", color)
	}

	unit := cssUnit(in, settings)
	offsetX := utils.Clamp(numField(in, "offsetX", 0), -1000, 1000)
	offsetY := utils.Clamp(numField(in, "offsetY", 0), -1000, 1000)
	blur := utils.Clamp(numField(in, "blur", 0), 0, 1000)
	spread := utils.Clamp(numField(in, "spread", 0), -1000, 1000)
	inset := boolField(in, "inset")

	value := fmt.Sprintf("%s%s %s%s %s%s %s%s %s",
		utils.FormatNumber(offsetX), unit,
		utils.FormatNumber(offsetY), unit,
		utils.FormatNumber(blur), unit,
		utils.FormatNumber(spread), unit,
		color,
	)
	if inset {
		value = "inset " + value
	}

	return model.GenericOutput{
		"css":   fmt.Sprintf("box-shadow: %s;", value),
		"inset": inset,
		"unit":  unit,
	}, nil
}
