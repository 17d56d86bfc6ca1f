package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"devtoolbox/internal/batch"
	"devtoolbox/internal/export"
	"devtoolbox/internal/model"
	"devtoolbox/internal/store"
	"devtoolbox/internal/tool"
	"devtoolbox/pkg/utils"
)

var (
	exportManager *export.Manager
	jobTimeout    = 5 * time.Minute
)

// Init wires the handler package with its runtime dependencies
func Init(outputDir, defaultJobTimeout string) {
	exportManager = export.NewManager(outputDir)
	jobTimeout = utils.ParseDuration(defaultJobTimeout, 5*time.Minute)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// jobIDFromPath slices the job ID out of /api/v1/batches/{id}[suffix]
func jobIDFromPath(path, suffix string) string {
	const prefix = "/api/v1/batches/"
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return path[len(prefix) : len(path)-len(suffix)]
}

// CreateBatch creates and starts a new batch job
// @Summary Create a new batch job
// @Description Create and start a batch run of a tool over the provided items
// @Tags batches
// @Accept json
// @Produce json
// @Param batch body model.BatchJobSpec true "Batch job specification"
// @Success 200 {object} map[string]interface{} "Batch created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /batches [post]
func CreateBatch(w http.ResponseWriter, r *http.Request) {
	var spec model.BatchJobSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if _, err := tool.Lookup(spec.Tool); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(spec.Items) == 0 && len(spec.Files) == 0 {
		http.Error(w, "At least one item or file is required", http.StatusBadRequest)
		return
	}

	jobID := uuid.New().String()
	if err := store.SaveJob(jobID, spec); err != nil {
		http.Error(w, "Failed to save job", http.StatusInternalServerError)
		return
	}

	timeout := utils.ParseDuration(spec.Concurrency.JobTimeout, jobTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	go func() {
		defer cancel()
		batch.Execute(ctx, jobID, spec, exportManager)
	}()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Batch created successfully!",
		"jobID":     jobID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	})
}

// ListBatches retrieves all batch jobs
// @Summary List all batch jobs
// @Description Get a list of all batch jobs with their current status
// @Tags batches
// @Produce json
// @Success 200 {array} map[string]interface{} "List of batch jobs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /batches [get]
func ListBatches(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListJobs()
	if err != nil {
		http.Error(w, "Failed to fetch batch jobs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// GetBatch retrieves a batch job with its result when finished
// @Summary Get batch job
// @Description Retrieve a batch job's status and, once finished, its full result
// @Tags batches
// @Produce json
// @Param id path string true "Batch job ID"
// @Success 200 {object} map[string]interface{} "Batch details"
// @Failure 404 {object} map[string]interface{} "Batch not found"
// @Router /batches/{id} [get]
func GetBatch(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	spec, status, err := store.GetJob(jobID)
	if err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"id":     jobID,
		"tool":   spec.Tool,
		"status": status,
		"spec":   spec,
	}
	if result, err := store.GetBatch(jobID); err == nil {
		response["result"] = result
	}

	writeJSON(w, http.StatusOK, response)
}

// GetBatchErrors retrieves recorded errors for a batch job
// @Summary Get batch errors
// @Description Retrieve all errors recorded during a batch run
// @Tags batches
// @Produce json
// @Param id path string true "Batch job ID"
// @Success 200 {object} map[string]interface{} "Batch errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /batches/{id}/errors [get]
func GetBatchErrors(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/errors")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	errors, err := store.GetJobErrors(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job_id": jobID,
		"errors": errors,
		"count":  len(errors),
	})
}

// ExportBatch serializes a finished batch into a downloadable file
// @Summary Export batch results
// @Description Export a finished batch as JSON, CSV, XML or plain text
// @Tags batches
// @Produce json
// @Param id path string true "Batch job ID"
// @Param format query string false "Export format (json, csv, xml, txt)"
// @Success 200 {object} model.ExportFile "Export file record"
// @Failure 404 {object} map[string]interface{} "Batch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /batches/{id}/export [post]
func ExportBatch(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/export")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	result, err := store.GetBatch(jobID)
	if err != nil {
		http.Error(w, "Batch result not found", http.StatusNotFound)
		return
	}

	format := r.URL.Query().Get("format")
	file, err := exportManager.Export(result, format, r.URL.Query().Get("file"))
	if err != nil {
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}
	if err := store.SaveExportFile(file); err != nil {
		http.Error(w, "Failed to record export file", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

// GetBatchFiles lists export files recorded for a batch job
// @Summary List batch export files
// @Description Retrieve all export files produced for a batch job
// @Tags batches
// @Produce json
// @Param id path string true "Batch job ID"
// @Success 200 {object} map[string]interface{} "Export files"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /batches/{id}/files [get]
func GetBatchFiles(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/files")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	files, err := store.GetExportFiles(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve files", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job_id": jobID,
		"files":  files,
		"count":  len(files),
	})
}

// DeleteBatch deletes a batch job and its artifacts
// @Summary Delete batch job
// @Description Delete a batch job, its recorded results and all export files
// @Tags batches
// @Produce json
// @Param id path string true "Batch job ID"
// @Success 200 {object} map[string]interface{} "Batch deleted"
// @Failure 404 {object} map[string]interface{} "Batch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /batches/{id} [delete]
func DeleteBatch(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	if _, _, err := store.GetJob(jobID); err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	files, _ := store.GetExportFiles(jobID)
	for _, file := range files {
		os.Remove(file.FilePath)
	}
	os.RemoveAll(filepath.Join(exportManager.Output.BaseOutputDir, jobID))

	if err := store.DeleteJob(jobID); err != nil {
		http.Error(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Batch and all artifacts deleted successfully",
		"job_id":        jobID,
		"files_deleted": len(files),
	})
}

// DownloadFile serves an export file for download
// @Summary Download export file
// @Description Download a specific export file from a batch job
// @Tags files
// @Produce application/octet-stream
// @Param jobID path string true "Batch job ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{jobID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/{jobID}/{filename}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	jobID, fileName := parts[3], parts[4]

	filePath, err := exportManager.Output.OutputFilePath(jobID, fileName)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Header().Set("Content-Type", exportManager.Output.MIMEType(fileName))
	http.ServeFile(w, r, filePath)
}
