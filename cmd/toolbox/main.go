package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"devtoolbox/internal/batch"
	"devtoolbox/internal/config"
	"devtoolbox/internal/export"
	"devtoolbox/internal/model"
	"devtoolbox/internal/store"
)

func main() {
	specPath := flag.String("spec", "", "path to a batch job spec JSON file")
	format := flag.String("format", "", "override the export format (json, csv, xml, txt)")
	flag.Parse()

	if *specPath == "" {
		fmt.Fprintln(os.Stderr, "usage: toolbox -spec job.json [-format csv]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*specPath)
	if err != nil {
		log.Fatalf("failed to read spec file: %v", err)
	}

	var spec model.BatchJobSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		log.Fatalf("invalid spec file: %v", err)
	}
	if *format != "" {
		if spec.Export == nil {
			spec.Export = &model.ExportSpec{}
		}
		spec.Export.Format = *format
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	jobID := uuid.New().String()
	if err := store.SaveJob(jobID, spec); err != nil {
		log.Fatalf("failed to save job: %v", err)
	}

	result, err := batch.Execute(context.Background(), jobID, spec, export.NewManager(cfg.OutputDir))
	if err != nil {
		log.Fatalf("batch failed: %v", err)
	}

	os.Stdout.Write(export.EncodeText(result))
}
