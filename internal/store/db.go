package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"devtoolbox/internal/model"
)

var db *sql.DB

// InitDB opens the sqlite database and creates tables if needed
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			tool TEXT,
			spec TEXT,
			status TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS job_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			error_message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS batches (
			job_id TEXT PRIMARY KEY,
			result TEXT,
			total_count INTEGER,
			valid_count INTEGER,
			invalid_count INTEGER,
			success_rate REAL,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS export_files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			file_name TEXT,
			file_path TEXT,
			file_type TEXT,
			size_bytes INTEGER,
			record_count INTEGER,
			download_url TEXT,
			created_at DATETIME
		);`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}
	return nil
}

// SaveJob stores a new batch job
func SaveJob(jobID string, spec model.BatchJobSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO jobs (id, tool, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		jobID, spec.Tool, specJSON, "pending", now, now)
	return err
}

// UpdateJobStatus updates job status
func UpdateJobStatus(jobID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE jobs SET status = ?, updated_at = ? WHERE id = ?`, status, now, jobID)
	return err
}

// SaveJobError records an error for a job
func SaveJobError(jobID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO job_errors (job_id, error_message, created_at) VALUES (?, ?, ?)`,
		jobID, err.Error(), now)
	return e
}

// GetJobErrors returns all recorded errors for a job, newest first
func GetJobErrors(jobID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM job_errors WHERE job_id = ? ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []map[string]interface{}
	for rows.Next() {
		var message string
		var createdAt time.Time
		if err := rows.Scan(&message, &createdAt); err != nil {
			return nil, err
		}
		errors = append(errors, map[string]interface{}{
			"message":   message,
			"createdAt": createdAt,
		})
	}
	return errors, rows.Err()
}

// ListJobs returns all jobs with basic info
func ListJobs() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, tool, status, created_at, updated_at FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []map[string]interface{}
	for rows.Next() {
		var id, toolName, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &toolName, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, map[string]interface{}{
			"id":        id,
			"tool":      toolName,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return jobs, rows.Err()
}

// GetJob fetches full job spec and status
func GetJob(jobID string) (model.BatchJobSpec, string, error) {
	var specJSON, status string
	err := db.QueryRow(`SELECT spec, status FROM jobs WHERE id = ?`, jobID).Scan(&specJSON, &status)
	if err != nil {
		return model.BatchJobSpec{}, "", err
	}

	var spec model.BatchJobSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return model.BatchJobSpec{}, "", fmt.Errorf("corrupt job spec: %w", err)
	}
	return spec, status, nil
}

// SaveBatch persists the full batch result blob plus headline stats
func SaveBatch(batch model.Batch) error {
	body, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO batches
		(job_id, result, total_count, valid_count, invalid_count, success_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		batch.ID, body,
		batch.Stats.TotalCount, batch.Stats.ValidCount, batch.Stats.InvalidCount,
		batch.Stats.SuccessRate, batch.CreatedAt)
	return err
}

// GetBatch loads a persisted batch result
func GetBatch(jobID string) (model.Batch, error) {
	var body string
	err := db.QueryRow(`SELECT result FROM batches WHERE job_id = ?`, jobID).Scan(&body)
	if err != nil {
		return model.Batch{}, err
	}

	var batch model.Batch
	if err := json.Unmarshal([]byte(body), &batch); err != nil {
		return model.Batch{}, fmt.Errorf("corrupt batch result: %w", err)
	}
	return batch, nil
}

// SaveExportFile records an exported artifact
func SaveExportFile(file model.ExportFile) error {
	_, err := db.Exec(`INSERT INTO export_files
		(job_id, file_name, file_path, file_type, size_bytes, record_count, download_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		file.JobID, file.FileName, file.FilePath, file.FileType,
		file.SizeBytes, file.RecordCount, file.DownloadURL, file.CreatedAt)
	return err
}

// GetExportFiles returns all export files recorded for a job
func GetExportFiles(jobID string) ([]model.ExportFile, error) {
	rows, err := db.Query(`SELECT id, job_id, file_name, file_path, file_type, size_bytes, record_count, download_url, created_at
		FROM export_files WHERE job_id = ? ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []model.ExportFile
	for rows.Next() {
		var f model.ExportFile
		if err := rows.Scan(&f.ID, &f.JobID, &f.FileName, &f.FilePath, &f.FileType,
			&f.SizeBytes, &f.RecordCount, &f.DownloadURL, &f.CreatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// DeleteJob removes a job and everything recorded for it
func DeleteJob(jobID string) error {
	for _, stmt := range []string{
		`DELETE FROM export_files WHERE job_id = ?`,
		`DELETE FROM batches WHERE job_id = ?`,
		`DELETE FROM job_errors WHERE job_id = ?`,
		`DELETE FROM jobs WHERE id = ?`,
	} {
		if _, err := db.Exec(stmt, jobID); err != nil {
			return err
		}
	}
	return nil
}
