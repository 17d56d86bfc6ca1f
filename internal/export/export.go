package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"devtoolbox/internal/model"
	"devtoolbox/pkg/utils"
)

// Manager serializes finished batches and writes them into the per-job
// output directory. Formats: json (default), csv, xml, txt. An unknown
// format falls through to json.
type Manager struct {
	Output *utils.OutputManager
}

// NewManager creates an export manager rooted at baseOutputDir
func NewManager(baseOutputDir string) *Manager {
	return &Manager{Output: utils.NewOutputManager(baseOutputDir)}
}

// NormalizeFormat maps a requested format to a supported one
func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return "csv"
	case "xml":
		return "xml"
	case "txt", "text", "plain":
		return "txt"
	default:
		return "json"
	}
}

// DefaultFileName derives the deterministic export filename for a batch
func DefaultFileName(batch model.Batch, format string) string {
	return fmt.Sprintf("%s_results.%s", batch.Tool, NormalizeFormat(format))
}

// Export serializes the batch and writes it to disk. An empty fileName
// selects the deterministic default name.
func (m *Manager) Export(batch model.Batch, format, fileName string) (model.ExportFile, error) {
	format = NormalizeFormat(format)

	var body []byte
	var err error
	switch format {
	case "csv":
		body = EncodeCSV(batch)
	case "xml":
		body = EncodeXML(batch)
	case "txt":
		body = EncodeText(batch)
	default:
		body, err = EncodeJSON(batch)
	}
	if err != nil {
		return model.ExportFile{}, fmt.Errorf("failed to serialize batch: %w", err)
	}

	if fileName == "" {
		fileName = DefaultFileName(batch, format)
	}

	path, err := m.Output.OutputFilePath(batch.ID, fileName)
	if err != nil {
		return model.ExportFile{}, err
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return model.ExportFile{}, fmt.Errorf("failed to write export file: %w", err)
	}

	// Record the size as written, not the in-memory length
	sizeBytes, err := m.Output.FileSize(path)
	if err != nil {
		sizeBytes = int64(len(body))
	}

	return model.ExportFile{
		JobID:       batch.ID,
		FileName:    fileName,
		FilePath:    path,
		FileType:    format,
		SizeBytes:   sizeBytes,
		RecordCount: len(batch.Items),
		DownloadURL: m.Output.DownloadURL(batch.ID, fileName),
		CreatedAt:   time.Now().UTC(),
	}, nil
}
