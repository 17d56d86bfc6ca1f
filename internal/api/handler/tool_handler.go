package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"devtoolbox/internal/model"
	"devtoolbox/internal/tool"
)

// runToolRequest is the body for POST /api/v1/tools/{name}/run
type runToolRequest struct {
	Input    model.GenericInput `json:"input"`
	Settings model.Settings     `json:"settings"`
}

// ListTools enumerates the registered tools
// @Summary List tools
// @Description Get the names and categories of all registered tools
// @Tags tools
// @Produce json
// @Success 200 {object} map[string]interface{} "Registered tools"
// @Router /tools [get]
func ListTools(w http.ResponseWriter, r *http.Request) {
	tools := make([]map[string]interface{}, 0)
	for _, name := range tool.Names() {
		t, err := tool.Lookup(name)
		if err != nil {
			continue
		}
		info := map[string]interface{}{
			"name":     t.Name(),
			"category": t.Category(),
		}
		if ft, ok := t.(tool.FileTool); ok {
			info["extensions"] = ft.Extensions()
			info["maxFileSizeMB"] = ft.MaxFileSizeMB()
		}
		tools = append(tools, info)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tools": tools,
		"count": len(tools),
	})
}

// RunTool applies a single tool transform synchronously
// @Summary Run a tool once
// @Description Apply a tool transform to a single input record and return the item result
// @Tags tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name"
// @Param request body handler.runToolRequest true "Input record and settings"
// @Success 200 {object} model.ItemResult "Item result"
// @Failure 400 {object} map[string]interface{} "Unknown tool or invalid payload"
// @Router /tools/{name}/run [post]
func RunTool(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/tools/{name}/run
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}

	t, err := tool.Lookup(parts[3])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req runToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	item := model.ItemResult{
		ID:        uuid.New().String(),
		Status:    model.StatusProcessing,
		Input:     req.Input,
		CreatedAt: time.Now().UTC(),
	}

	start := time.Now()
	output, err := t.Apply(req.Input, req.Settings)
	item.ProcessingMS = float64(time.Since(start).Microseconds()) / 1000

	if err != nil {
		item.Status = model.StatusError
		item.Error = err.Error()
	} else {
		item.Status = model.StatusCompleted
		item.Valid = true
		item.Output = output
	}

	writeJSON(w, http.StatusOK, item)
}
