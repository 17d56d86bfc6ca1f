package batch

import (
	"devtoolbox/internal/model"
)

// categoryKeys are probed in order to build the category frequency map
// from item outputs (e.g. image format, gradient type, uuid version).
var categoryKeys = []string{"format", "type", "version", "unit"}

// ComputeStats derives aggregate statistics from a finished item list.
// Statistics always reflect the list at the moment of construction; they
// are never updated afterward.
func ComputeStats(items []model.ItemResult) model.BatchStats {
	stats := model.BatchStats{
		TotalCount:   len(items),
		StatusCounts: make(map[string]int),
		Categories:   make(map[string]int),
	}

	var totalMS float64
	for _, item := range items {
		stats.StatusCounts[string(item.Status)]++
		totalMS += item.ProcessingMS

		if item.Valid {
			stats.ValidCount++
		} else {
			stats.InvalidCount++
		}

		for _, key := range categoryKeys {
			if v, ok := item.Output[key]; ok {
				if s, ok := v.(string); ok && s != "" {
					stats.Categories[s]++
					break
				}
			}
		}
	}

	// Guard the empty batch: rate is 0, not NaN
	if stats.TotalCount > 0 {
		stats.SuccessRate = float64(stats.ValidCount) / float64(stats.TotalCount) * 100
		stats.AvgProcessingMS = totalMS / float64(stats.TotalCount)
	}

	return stats
}
