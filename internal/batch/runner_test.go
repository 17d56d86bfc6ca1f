package batch

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoolbox/internal/model"
)

func writeTempPNG(t *testing.T, dir, name string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestRunIsolatesItemFailures(t *testing.T) {
	spec := model.BatchJobSpec{
		Tool: "border-radius",
		Items: []model.GenericInput{
			{"topLeft": 8, "topRight": 8, "bottomRight": 8, "bottomLeft": 8},
			{}, // invalid: empty input
			{"topLeft": 4, "topRight": 4, "bottomRight": 4, "bottomLeft": 4},
		},
	}

	result, err := Run(context.Background(), "job-1", spec)
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, model.StatusCompleted, result.Items[0].Status)
	assert.Equal(t, model.StatusError, result.Items[1].Status)
	assert.Equal(t, model.StatusCompleted, result.Items[2].Status)

	assert.Equal(t, 2, result.Stats.ValidCount)
	assert.Equal(t, 1, result.Stats.InvalidCount)
	assert.InDelta(t, 66.67, result.Stats.SuccessRate, 0.01)
}

func TestRunFileBatchWithUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	good1 := writeTempPNG(t, dir, "a.png")
	good2 := writeTempPNG(t, dir, "b.png")
	bad := filepath.Join(dir, "c.xyz")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0644))

	spec := model.BatchJobSpec{
		Tool:  "base64-image",
		Files: []string{good1, good2, bad},
	}

	result, err := Run(context.Background(), "job-2", spec)
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, 2, result.Stats.ValidCount)
	assert.Equal(t, 1, result.Stats.InvalidCount)
	assert.InDelta(t, 66.67, result.Stats.SuccessRate, 0.01)

	assert.Equal(t, model.StatusError, result.Items[2].Status)
	assert.Contains(t, result.Items[2].Error, "unsupported file extension")
}

func TestRunEmptyBatch(t *testing.T) {
	result, err := Run(context.Background(), "job-3", model.BatchJobSpec{Tool: "uuid"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.TotalCount)
	assert.Equal(t, float64(0), result.Stats.SuccessRate)
	assert.Empty(t, result.Items)
}

func TestRunCancelledContextFailsRemainingItems(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spec := model.BatchJobSpec{
		Tool: "border-radius",
		Items: []model.GenericInput{
			{"topLeft": 8, "topRight": 8, "bottomRight": 8, "bottomLeft": 8},
			{"topLeft": 4, "topRight": 4, "bottomRight": 4, "bottomLeft": 4},
		},
	}

	result, err := Run(ctx, "job-timeout", spec)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Equal(t, model.StatusError, item.Status)
		assert.Contains(t, item.Error, "timed out")
		assert.False(t, item.Valid)
	}
	assert.Equal(t, 0, result.Stats.ValidCount)
	assert.Equal(t, 2, result.Stats.InvalidCount)
	assert.Equal(t, float64(0), result.Stats.SuccessRate)
}

func TestRunUnknownTool(t *testing.T) {
	_, err := Run(context.Background(), "job-4", model.BatchJobSpec{Tool: "frobnicator"})
	assert.Error(t, err)
}

func TestRunRejectsFilesForNonFileTool(t *testing.T) {
	_, err := Run(context.Background(), "job-5", model.BatchJobSpec{
		Tool:  "uuid",
		Files: []string{"whatever.png"},
	})
	assert.Error(t, err)
}

func TestRunSettingsSnapshotStoredOnBatch(t *testing.T) {
	settings := model.Settings{Unit: "rem", ExportFormat: "csv"}
	spec := model.BatchJobSpec{
		Tool:     "border-radius",
		Items:    []model.GenericInput{{"topLeft": 1, "topRight": 1, "bottomRight": 1, "bottomLeft": 1}},
		Settings: settings,
	}

	result, err := Run(context.Background(), "job-6", spec)
	require.NoError(t, err)

	assert.Equal(t, settings, result.Settings)
	assert.Equal(t, "border-radius: 1rem;", result.Items[0].Output["css"])
}
