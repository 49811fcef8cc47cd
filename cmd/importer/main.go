// Command importer loads attendees into the database from a JSON or Excel
// export. Departments referenced by name are created on the fly, the same
// way the API resolves them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/owlconnect/owlconnect/internal/bootstrap"
	"github.com/owlconnect/owlconnect/internal/importer"
	"github.com/owlconnect/owlconnect/internal/pkg/logger"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to the attendees export (.json or .xlsx)")
		sheet    = flag.String("sheet", "", "sheet name for Excel files (defaults to the first sheet)")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file attendees.json|export.xlsx [-sheet name]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	var records []importer.Record
	switch strings.ToLower(filepath.Ext(*filePath)) {
	case ".json":
		records, err = importer.LoadJSON(*filePath)
	case ".xlsx", ".xlsm":
		records, err = importer.LoadExcel(*filePath, *sheet)
	default:
		err = fmt.Errorf("unsupported file type: %s", *filePath)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load records")
		os.Exit(1)
	}

	lgr.Info().Int("records", len(records)).Str("file", *filePath).Msg("Records loaded")

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	imp := importer.NewImporter(deps.AttendeeService, lgr)
	imported, err := imp.Run(context.Background(), records)
	if err != nil {
		lgr.Error().Err(err).Int("imported", imported).Msg("Import failed")
		os.Exit(1)
	}

	log.Info().Int("imported", imported).Msg("Import complete")
}
