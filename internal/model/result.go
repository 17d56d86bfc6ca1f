package model

import "time"

// ItemStatus tracks the lifecycle of a single item through a batch run.
// Transitions: pending → processing → (completed | error). The terminal
// states are completed and error; a failed item stays failed until the
// user resubmits the whole batch.
type ItemStatus string

const (
	StatusPending    ItemStatus = "pending"
	StatusProcessing ItemStatus = "processing"
	StatusCompleted  ItemStatus = "completed"
	StatusError      ItemStatus = "error"
)

// Terminal reports whether the status permits no further transitions.
func (s ItemStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// CanTransition reports whether moving from s to next is a legal step
// in the item state machine.
func (s ItemStatus) CanTransition(next ItemStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusCompleted || next == StatusError
	default:
		return false
	}
}

// ItemResult represents the outcome of one transform invocation.
// Immutable once built; discarded when the batch is deleted.
type ItemResult struct {
	ID           string        `json:"id"`
	Index        int           `json:"index"`
	Status       ItemStatus    `json:"status"`
	Valid        bool          `json:"valid"`
	Input        GenericInput  `json:"input"`
	Output       GenericOutput `json:"output,omitempty"`
	Error        string        `json:"error,omitempty"`
	ProcessingMS float64       `json:"processing_ms"`
	CreatedAt    time.Time     `json:"created_at"`
}

// BatchStats holds aggregate statistics recomputed from the item list at
// batch-creation time and never updated afterward.
type BatchStats struct {
	TotalCount      int            `json:"total_count"`
	ValidCount      int            `json:"valid_count"`
	InvalidCount    int            `json:"invalid_count"`
	SuccessRate     float64        `json:"success_rate"` // valid/total*100, 0 when total is 0
	AvgProcessingMS float64        `json:"avg_processing_ms"`
	StatusCounts    map[string]int `json:"status_counts"`
	Categories      map[string]int `json:"categories,omitempty"` // frequency map keyed by output category
}

// Batch is the result of one fan-out run: ordered item results, the
// settings snapshot used to produce them, and aggregate statistics.
type Batch struct {
	ID        string       `json:"id"`
	Tool      string       `json:"tool"`
	Items     []ItemResult `json:"items"`
	Settings  Settings     `json:"settings"`
	Stats     BatchStats   `json:"stats"`
	CreatedAt time.Time    `json:"created_at"`
}

// ExportFile records one exported artifact on disk
type ExportFile struct {
	ID          int       `json:"id,omitempty"`
	JobID       string    `json:"job_id"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileType    string    `json:"file_type"`
	SizeBytes   int64     `json:"size_bytes"`
	RecordCount int       `json:"record_count"`
	DownloadURL string    `json:"download_url"`
	CreatedAt   time.Time `json:"created_at"`
}
