package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager handles export file organization and path management
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// JobOutputDir creates (if needed) and returns the per-job output directory
func (om *OutputManager) JobOutputDir(jobID string) (string, error) {
	jobDir := filepath.Join(om.BaseOutputDir, jobID)
	if err := os.MkdirAll(jobDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create job output directory: %w", err)
	}
	return jobDir, nil
}

// OutputFilePath generates a full path for an export file, stripping any
// path separators from the requested name.
func (om *OutputManager) OutputFilePath(jobID, fileName string) (string, error) {
	jobDir, err := om.JobOutputDir(jobID)
	if err != nil {
		return "", err
	}
	return filepath.Join(jobDir, filepath.Base(fileName)), nil
}

// DownloadURL generates the API download URL for an export file
func (om *OutputManager) DownloadURL(jobID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", jobID, filepath.Base(fileName))
}

// FileType determines the export format based on extension
func (om *OutputManager) FileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".xml":
		return "xml"
	case ".txt":
		return "txt"
	default:
		return "unknown"
	}
}

// MIMEType returns the Content-Type to serve an export file with
func (om *OutputManager) MIMEType(fileName string) string {
	switch om.FileType(fileName) {
	case "csv":
		return "text/csv"
	case "json":
		return "application/json"
	case "xml":
		return "application/xml"
	case "txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// FileSize returns the size of a file in bytes
func (om *OutputManager) FileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
