package tool

import (
	"fmt"
	"strconv"
	"time"

	"devtoolbox/internal/model"
)

func init() {
	Register(&timestampTool{})
}

// timestampTool converts between unix timestamps and human-readable time.
// Numeric input is treated as seconds unless it is large enough to only
// make sense as milliseconds.
type timestampTool struct{}

func (t *timestampTool) Name() string     { return "timestamp" }
func (t *timestampTool) Category() string { return "time" }

// values at or above this are treated as milliseconds (year ~2128 in seconds)
const millisThreshold = int64(5_000_000_000)

func (t *timestampTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	value := stringField(in, "value")
	if value == "" {
		return nil, fmt.Errorf("a timestamp or date value is required")
	}

	loc := time.UTC
	if zone := settings.Timezone; zone != "" {
		parsed, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", zone, err)
		}
		loc = parsed
	}

	var ts time.Time
	var unit string
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		if n >= millisThreshold || n <= -millisThreshold {
			ts = time.UnixMilli(n)
			unit = "milliseconds"
		} else {
			ts = time.Unix(n, 0)
			unit = "seconds"
		}
	} else {
		parsed, err := parseDate(value)
		if err != nil {
			return nil, err
		}
		ts = parsed
		unit = "date"
	}

	local := ts.In(loc)
	return model.GenericOutput{
		"unixSeconds": ts.Unix(),
		"unixMillis":  ts.UnixMilli(),
		"utc":         ts.UTC().Format("2006-01-02 15:04:05"),
		"local":       local.Format("2006-01-02 15:04:05"),
		"rfc3339":     ts.UTC().Format(time.RFC3339),
		"weekday":     ts.UTC().Weekday().String(),
		"inputUnit":   unit,
	}, nil
}
