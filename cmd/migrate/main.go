// Command migrate applies migrations/001_initial_schema.sql to the configured
// database with the atlas CLI, diffing against a throwaway dev database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"hotel-inventory/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	var (
		schema  = flag.String("schema", "file://migrations/001_initial_schema.sql", "desired schema")
		devURL  = flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "dev database used to compute the diff")
		atlas   = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun  = flag.Bool("dry-run", false, "print the planned statements without applying them")
		workDir = flag.String("dir", ".", "working directory for relative schema paths")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(*workDir, *atlas)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.SchemaApply(context.Background(), &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          *schema,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: !*dryRun,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	if *dryRun {
		for _, stmt := range res.Changes.Pending {
			logger.Info("pending", "sql", stmt)
		}
		return
	}
	logger.Info("schema applied", "statements", len(res.Changes.Applied))
}
