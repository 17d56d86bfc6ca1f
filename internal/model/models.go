package model

// GenericInput is a schema-agnostic map for any tool's input record
type GenericInput map[string]interface{}

// GenericOutput holds the derived values produced by a tool transform
type GenericOutput map[string]interface{}

// Settings is the configuration snapshot read at transform time and stored
// alongside the batch for provenance. It is never mutated by a transform.
type Settings struct {
	ExportFormat       string `json:"exportFormat"`       // json, csv, xml, txt
	RealTimeProcessing bool   `json:"realTimeProcessing"` // log items as they complete
	BcryptCost         int    `json:"bcryptCost"`         // default cost for the bcrypt tool
	Unit               string `json:"unit"`               // default CSS unit (px, em, rem, %)
	Timezone           string `json:"timezone"`           // IANA zone for timestamp rendering
	MaxFileSizeMB      int64  `json:"maxFileSizeMB"`      // per-file ceiling for file inputs
}

// FileInput describes a single file handed to a file-based tool
type FileInput struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Concurrency defines worker and timeout options for a batch run
type Concurrency struct {
	Workers    int    `json:"workers"`
	JobTimeout string `json:"jobTimeout"` // e.g., "5m"
}

// ExportSpec defines export targets for a finished batch
type ExportSpec struct {
	Format string `json:"format"` // json, csv, xml, txt
	File   string `json:"file"`   // optional explicit filename
}

// BatchJobSpec is the struct for POST /api/v1/batches
type BatchJobSpec struct {
	Tool        string         `json:"tool"`
	Items       []GenericInput `json:"items"`
	Files       []string       `json:"files,omitempty"` // paths for file-based tools
	Settings    Settings       `json:"settings"`
	Export      *ExportSpec    `json:"export,omitempty"`
	Concurrency Concurrency    `json:"concurrency"`
}
