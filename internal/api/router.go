package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"devtoolbox/internal/api/handler"
	"devtoolbox/pkg/router"
)

// RegisterRoutes wires all API endpoints. More specific routes first:
// the router matches in registration order.
func RegisterRoutes(r *router.Router) {
	r.GET("/api/v1/tools", handler.ListTools)
	r.POST("/api/v1/tools/*/run", handler.RunTool)

	r.POST("/api/v1/batches", handler.CreateBatch)
	r.GET("/api/v1/batches", handler.ListBatches)
	r.GET("/api/v1/batches/*/errors", handler.GetBatchErrors)
	r.POST("/api/v1/batches/*/export", handler.ExportBatch)
	r.GET("/api/v1/batches/*/files", handler.GetBatchFiles)
	r.GET("/api/v1/download/*/*", handler.DownloadFile)
	// Generic batch routes last
	r.GET("/api/v1/batches/*", handler.GetBatch)
	r.DELETE("/api/v1/batches/*", handler.DeleteBatch)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
