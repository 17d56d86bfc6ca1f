package main

import (
	"log"

	_ "devtoolbox/docs"
	"devtoolbox/internal/api"
	"devtoolbox/internal/api/handler"
	"devtoolbox/internal/config"
	"devtoolbox/internal/store"
	"devtoolbox/pkg/router"
)

// @title devtoolbox API
// @version 1.0
// @description Batch runner and exporter for the devtoolbox mini-tools.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	handler.Init(cfg.OutputDir, cfg.JobTimeout)

	r := router.New()
	api.RegisterRoutes(r)
	r.Start(cfg.HTTPAddr)
}
