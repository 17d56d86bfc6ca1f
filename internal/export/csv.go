package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"devtoolbox/internal/model"
)

// EncodeCSV renders the batch as CSV: header row first, every field
// wrapped in quotes with internal quotes doubled. An empty batch yields
// just the header row.
func EncodeCSV(batch model.Batch) []byte {
	columns := []string{"id", "index", "status", "valid", "error", "processing_ms", "created_at"}
	outputKeys := collectOutputKeys(batch.Items)
	columns = append(columns, outputKeys...)

	var b strings.Builder
	writeCSVRow(&b, columns)

	for _, item := range batch.Items {
		row := []string{
			item.ID,
			fmt.Sprintf("%d", item.Index),
			string(item.Status),
			fmt.Sprintf("%t", item.Valid),
			item.Error,
			fmt.Sprintf("%.3f", item.ProcessingMS),
			item.CreatedAt.Format(time.RFC3339),
		}
		for _, key := range outputKeys {
			if v, ok := item.Output[key]; ok {
				row = append(row, formatCSVValue(v))
			} else {
				row = append(row, "")
			}
		}
		writeCSVRow(&b, row)
	}

	return []byte(b.String())
}

// collectOutputKeys returns the sorted union of output keys across items
func collectOutputKeys(items []model.ItemResult) []string {
	seen := make(map[string]bool)
	for _, item := range items {
		for key := range item.Output {
			seen[key] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// formatCSVValue flattens scalar values with %v; nested maps and lists
// become compact JSON so the cell stays a single field.
func formatCSVValue(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}, []interface{}, []string:
		if encoded, err := json.Marshal(v); err == nil {
			return string(encoded)
		}
	}
	return fmt.Sprintf("%v", v)
}
