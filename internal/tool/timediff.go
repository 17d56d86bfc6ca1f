package tool

import (
	"fmt"
	"time"

	"devtoolbox/internal/model"
)

func init() {
	Register(&timeDiffTool{})
}

// timeDiffTool computes the breakdown between two instants. Accepts
// RFC3339 timestamps and plain dates; end may precede start, in which
// case the breakdown is of the absolute difference and negative=true.
type timeDiffTool struct{}

func (t *timeDiffTool) Name() string     { return "time-diff" }
func (t *timeDiffTool) Category() string { return "time" }

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}

func (t *timeDiffTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	startStr := stringField(in, "start")
	endStr := stringField(in, "end")
	if startStr == "" || endStr == "" {
		return nil, fmt.Errorf("both start and end dates are required")
	}

	start, err := parseDate(startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endStr)
	if err != nil {
		return nil, err
	}

	diff := end.Sub(start)
	negative := diff < 0
	if negative {
		diff = -diff
	}

	totalSeconds := int64(diff.Seconds())
	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return model.GenericOutput{
		"days":         days,
		"hours":        hours,
		"minutes":      minutes,
		"seconds":      seconds,
		"totalSeconds": totalSeconds,
		"negative":     negative,
		"human":        fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds),
	}, nil
}
