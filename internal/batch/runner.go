package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"devtoolbox/internal/model"
	"devtoolbox/internal/store"
	"devtoolbox/internal/tool"
	"devtoolbox/pkg/utils"
)

const defaultWorkers = 4

// ------------------- Batch Runner -------------------

// Run fans the tool transform out over all items of the job spec and
// returns the finished Batch. Items are fully independent: a failure in
// one item never aborts or affects any other item. No automatic retries.
func Run(ctx context.Context, jobID string, spec model.BatchJobSpec) (model.Batch, error) {
	t, err := tool.Lookup(spec.Tool)
	if err != nil {
		return model.Batch{}, err
	}

	timeout := utils.ParseDuration(spec.Concurrency.JobTimeout, 5*time.Minute)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	items, rejects, err := collectInputs(ctx, t, spec)
	if err != nil {
		return model.Batch{}, err
	}

	fmt.Printf("🚀 Starting batch %s: tool=%s items=%d\n", jobID, spec.Tool, len(items))

	results := make([]model.ItemResult, len(items))
	now := time.Now().UTC()
	for i := range results {
		results[i] = model.ItemResult{
			ID:        uuid.New().String(),
			Index:     i,
			Status:    model.StatusPending,
			Input:     items[i],
			CreatedAt: now,
		}
	}

	workerCount := spec.Concurrency.Workers
	if workerCount <= 0 {
		workerCount = defaultWorkers
	}

	indexes := make(chan int, len(results))
	for i := range results {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	wg.Add(workerCount)

	// Track per-worker stats, merged under a mutex at the end
	var completedCount, errorCount int64
	var mu sync.Mutex

	for w := 0; w < workerCount; w++ {
		go func(workerID int) {
			defer wg.Done()
			workerCompleted := 0
			workerErrors := 0

			for i := range indexes {
				results[i].Status = model.StatusProcessing

				select {
				case <-ctx.Done():
					// Items the deadline beat to the worker fail with the timeout reason
					results[i].Status = model.StatusError
					results[i].Error = "batch timed out before item was processed"
					workerErrors++
					continue
				default:
				}

				if reason := rejects[i]; reason != "" {
					results[i].Status = model.StatusError
					results[i].Error = reason
					workerErrors++
					continue
				}

				start := time.Now()
				output, err := applyTool(t, results[i].Input, spec.Settings)
				results[i].ProcessingMS = float64(time.Since(start).Microseconds()) / 1000

				if err != nil {
					results[i].Status = model.StatusError
					results[i].Error = err.Error()
					workerErrors++
					if workerErrors <= 3 {
						fmt.Printf("❌ Worker %d: item %d failed - %v\n", workerID, i, err)
					}
					continue
				}

				results[i].Status = model.StatusCompleted
				results[i].Valid = true
				results[i].Output = output
				workerCompleted++
				if spec.Settings.RealTimeProcessing {
					fmt.Printf("✅ Worker %d: item %d completed in %.2fms\n", workerID, i, results[i].ProcessingMS)
				}
			}

			mu.Lock()
			completedCount += int64(workerCompleted)
			errorCount += int64(workerErrors)
			mu.Unlock()
		}(w)
	}

	wg.Wait()

	fmt.Printf("🏁 Batch %s finished: %d completed, %d failed\n", jobID, completedCount, errorCount)

	return model.Batch{
		ID:        jobID,
		Tool:      t.Name(),
		Items:     results,
		Settings:  spec.Settings,
		Stats:     ComputeStats(results),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// applyTool isolates a single transform invocation; a panicking tool
// becomes a failed item, not a dead batch.
func applyTool(t tool.Tool, in model.GenericInput, settings model.Settings) (out model.GenericOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform panic: %v", r)
		}
	}()
	return t.Apply(in, settings)
}

// collectInputs merges the spec's inline items with file-backed inputs.
// Boundary rejections come back as per-index reasons so they fail as
// items instead of aborting the run.
func collectInputs(ctx context.Context, t tool.Tool, spec model.BatchJobSpec) ([]model.GenericInput, map[int]string, error) {
	items := append([]model.GenericInput{}, spec.Items...)
	rejects := make(map[int]string)

	if len(spec.Files) > 0 {
		ft, ok := t.(tool.FileTool)
		if !ok {
			return nil, nil, fmt.Errorf("tool %s does not accept file inputs", t.Name())
		}
		fileItems, err := LoadFileInputs(ctx, ft, spec.Files, spec.Settings)
		if err != nil {
			return nil, nil, err
		}
		for _, fi := range fileItems {
			if fi.Reject != "" {
				rejects[len(items)] = fi.Reject
			}
			items = append(items, fi.Input)
		}
	}

	return items, rejects, nil
}

// ------------------- Job Execution -------------------

// Execute runs a batch job end to end: status bookkeeping in the store,
// the fan-out itself, result persistence, and the optional export.
func Execute(ctx context.Context, jobID string, spec model.BatchJobSpec, exp Exporter) (model.Batch, error) {
	store.UpdateJobStatus(jobID, "running")

	result, err := Run(ctx, jobID, spec)
	if err != nil {
		store.UpdateJobStatus(jobID, "failed")
		store.SaveJobError(jobID, err)
		return model.Batch{}, err
	}

	if err := store.SaveBatch(result); err != nil {
		store.UpdateJobStatus(jobID, "failed")
		store.SaveJobError(jobID, err)
		return model.Batch{}, err
	}

	if spec.Export != nil && exp != nil {
		file, err := exp.Export(result, spec.Export.Format, spec.Export.File)
		if err != nil {
			// Export failure is recorded but does not fail the batch
			store.SaveJobError(jobID, fmt.Errorf("export failed: %w", err))
			fmt.Printf("❌ Export failed for batch %s: %v\n", jobID, err)
		} else {
			store.SaveExportFile(file)
			fmt.Printf("💾 Exported batch %s to %s (%d records)\n", jobID, file.FilePath, file.RecordCount)
		}
	}

	store.UpdateJobStatus(jobID, "completed")
	return result, nil
}

// Exporter is satisfied by export.Manager; declared here to keep the
// runner free of a dependency on the export package.
type Exporter interface {
	Export(batch model.Batch, format, fileName string) (model.ExportFile, error)
}
