package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"devtoolbox/internal/model"
)

// EncodeText renders the batch as a fixed human-readable report
func EncodeText(batch model.Batch) []byte {
	var b strings.Builder

	b.WriteString("==========================================\n")
	fmt.Fprintf(&b, " %s batch report\n", batch.Tool)
	b.WriteString("==========================================\n")
	fmt.Fprintf(&b, "Batch ID:      %s\n", batch.ID)
	fmt.Fprintf(&b, "Created:       %s\n", batch.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Total items:   %d\n", batch.Stats.TotalCount)
	fmt.Fprintf(&b, "Valid:         %d\n", batch.Stats.ValidCount)
	fmt.Fprintf(&b, "Invalid:       %d\n", batch.Stats.InvalidCount)
	fmt.Fprintf(&b, "Success rate:  %.2f%%\n", batch.Stats.SuccessRate)
	fmt.Fprintf(&b, "Avg time:      %.3fms\n", batch.Stats.AvgProcessingMS)

	if len(batch.Stats.Categories) > 0 {
		b.WriteString("\nCategories:\n")
		for _, key := range sortedCountKeys(batch.Stats.Categories) {
			fmt.Fprintf(&b, "  %-20s %d\n", key, batch.Stats.Categories[key])
		}
	}

	if len(batch.Items) > 0 {
		b.WriteString("\nItems:\n")
		b.WriteString("------------------------------------------\n")
		for _, item := range batch.Items {
			fmt.Fprintf(&b, "[%d] %s (%s)\n", item.Index, item.Status, item.ID)
			if item.Error != "" {
				fmt.Fprintf(&b, "    error: %s\n", item.Error)
			}
			for _, key := range sortedKeys(item.Output) {
				fmt.Fprintf(&b, "    %s: %s\n", key, formatCSVValue(item.Output[key]))
			}
		}
	}

	return []byte(b.String())
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
