// Command azmardig loads the expedition field data (artifact catalog,
// location notes, journal) and prints a summary of each source. Each stage
// runs independently so a missing or broken file never blocks the others.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"azmardig/internal/config"
	"azmardig/internal/dataprocessing"
	"azmardig/internal/extract"
	"azmardig/internal/infrastructure"
	"azmardig/pkg/contracts/domain"
)

const headRows = 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	artifacts := flag.String("artifacts", cfg.Paths.ArtifactsFile, "path to the artifact catalog workbook")
	locations := flag.String("locations", cfg.Paths.LocationsFile, "path to the tab-separated location notes")
	journal := flag.String("journal", cfg.Paths.JournalFile, "path to the journal text file")
	flag.Parse()

	logger, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	slog.SetDefault(logger)

	ctx := infrastructure.WithRunID(context.Background())
	logger.InfoContext(ctx, "Starting field data scan",
		slog.String("artifacts", *artifacts),
		slog.String("locations", *locations),
		slog.String("journal", *journal))

	runArtifactStage(ctx, logger, *artifacts)
	runLocationStage(ctx, logger, *locations)
	runJournalStage(ctx, logger, *journal)
}

func runArtifactStage(ctx context.Context, logger *slog.Logger, path string) {
	fmt.Printf("--- Loading Artifact Data from %s ---\n", path)
	ds, err := dataprocessing.LoadArtifactTable(path)
	if err != nil {
		logger.ErrorContext(ctx, "Artifact stage failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		return
	}
	printDataset(ds)
}

func runLocationStage(ctx context.Context, logger *slog.Logger, path string) {
	fmt.Printf("\n--- Loading Location Notes from %s ---\n", path)
	ds, err := dataprocessing.LoadLocationNotes(path)
	if err != nil {
		logger.ErrorContext(ctx, "Location stage failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		return
	}
	printDataset(ds)
}

func runJournalStage(ctx context.Context, logger *slog.Logger, path string) {
	fmt.Printf("\n--- Processing Journal from %s ---\n", path)
	text, err := dataprocessing.ReadJournal(path)
	if err != nil {
		logger.ErrorContext(ctx, "Journal stage failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		return
	}

	dates := extract.Dates(text)
	logger.InfoContext(ctx, "Extracted journal dates", slog.Int("count", len(dates)))
	fmt.Printf("Found dates: %s\n", formatList(dates))

	codes := extract.SecretCodes(text)
	logger.InfoContext(ctx, "Extracted secret codes", slog.Int("count", len(codes)))
	fmt.Printf("Found codes: %s\n", formatList(codes))
}

func printDataset(ds *domain.Dataset) {
	fmt.Printf("Successfully loaded dataset. First %d rows:\n", headRows)
	fmt.Println(strings.Join(ds.Columns, "\t"))
	for _, row := range ds.Head(headRows) {
		cells := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			cells[i] = row[col]
		}
		fmt.Println(strings.Join(cells, "\t"))
	}

	info := ds.Info()
	fmt.Printf("\nDataset info: %d rows, %d columns\n", info.RowCount, len(info.Columns))
	for _, col := range info.Columns {
		fmt.Printf("  %-20s %d non-empty\n", col, info.NonEmpty[col])
	}
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
