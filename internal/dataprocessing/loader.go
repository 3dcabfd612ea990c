package dataprocessing

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "azmardig/internal/errors"
	"azmardig/pkg/contracts/domain"
)

// Sheet and layout expectations for the artifact catalog workbook.
const (
	artifactSheetName = "Main Chamber"
	artifactSkipRows  = 3
)

// LoadArtifactTable reads the artifact catalog from the "Main Chamber" sheet
// of an Excel workbook, skipping the first 3 rows before the header.
//
// All failures are logged and returned as a typed error alongside a nil
// dataset; the function never panics and never leaks the file handle.
func LoadArtifactTable(filePath string) (*domain.Dataset, error) {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			appErr := apperrors.NewNotFoundError(filePath, err)
			slog.Error("Artifact file not found", slog.String("path", filePath))
			return nil, appErr
		}
		appErr := apperrors.NewIOError(filePath, err)
		slog.Error("Cannot access artifact file", slog.String("path", filePath), slog.String("error", err.Error()))
		return nil, appErr
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		// A filesystem-level failure (permission denied, directory, short
		// read) is an i/o error; only content excelize cannot parse counts
		// as empty/unparseable.
		var pathErr *fs.PathError
		if os.IsPermission(err) || errors.As(err, &pathErr) {
			appErr := apperrors.NewIOError(filePath, err)
			slog.Error("Cannot read artifact file",
				slog.String("path", filePath),
				slog.String("error", err.Error()))
			return nil, appErr
		}
		appErr := apperrors.NewEmptyDataError(filePath, err)
		slog.Error("Artifact file is empty or unparseable",
			slog.String("path", filePath),
			slog.String("error", err.Error()))
		return nil, appErr
	}
	defer f.Close()

	rows, err := f.GetRows(artifactSheetName)
	if err != nil {
		appErr := apperrors.NewEmptyDataError(filePath, err).
			WithContext("sheet", artifactSheetName)
		slog.Error("Sheet not found in artifact file",
			slog.String("path", filePath),
			slog.String("sheet", artifactSheetName))
		return nil, appErr
	}

	if len(rows) <= artifactSkipRows {
		appErr := apperrors.NewEmptyDataError(filePath, nil).
			WithContext("sheet", artifactSheetName)
		slog.Error("No header row after skipping leading rows",
			slog.String("path", filePath),
			slog.Int("rows", len(rows)),
			slog.Int("skip", artifactSkipRows))
		return nil, appErr
	}

	ds := buildDataset(rows[artifactSkipRows], rows[artifactSkipRows+1:])
	slog.Info("Loaded artifact table",
		slog.String("path", filePath),
		slog.Int("columns", len(ds.Columns)),
		slog.Int("rows", ds.Len()))
	return ds, nil
}

// LoadLocationNotes reads a tab-separated file whose first line is the
// header. Same failure taxonomy and sentinel policy as LoadArtifactTable.
func LoadLocationNotes(filePath string) (*domain.Dataset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			appErr := apperrors.NewNotFoundError(filePath, err)
			slog.Error("Location notes file not found", slog.String("path", filePath))
			return nil, appErr
		}
		appErr := apperrors.NewIOError(filePath, err)
		slog.Error("Cannot open location notes file",
			slog.String("path", filePath),
			slog.String("error", err.Error()))
		return nil, appErr
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		appErr := apperrors.NewEmptyDataError(filePath, err)
		slog.Error("Location notes file is unparseable",
			slog.String("path", filePath),
			slog.String("error", err.Error()))
		return nil, appErr
	}
	if len(records) == 0 {
		appErr := apperrors.NewEmptyDataError(filePath, nil)
		slog.Error("Location notes file is empty", slog.String("path", filePath))
		return nil, appErr
	}

	ds := buildDataset(records[0], records[1:])
	slog.Info("Loaded location notes",
		slog.String("path", filePath),
		slog.Int("columns", len(ds.Columns)),
		slog.Int("rows", ds.Len()))
	return ds, nil
}

// buildDataset keys each data row by the header columns. Short rows are
// padded with empty strings, cells beyond the header are dropped, and fully
// blank rows are skipped (excelize yields ragged rows).
func buildDataset(header []string, data [][]string) *domain.Dataset {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	ds := &domain.Dataset{Columns: columns}
	for _, rec := range data {
		blank := true
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		row := make(domain.Row, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

// ReadJournal slurps a UTF-8 text file for the extractors. It shares the
// loaders' failure taxonomy so the CLI treats all three inputs uniformly.
func ReadJournal(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			appErr := apperrors.NewNotFoundError(filePath, err)
			slog.Error("Journal file not found", slog.String("path", filePath))
			return "", appErr
		}
		appErr := apperrors.NewIOError(filePath, err)
		slog.Error("Cannot open journal file",
			slog.String("path", filePath),
			slog.String("error", err.Error()))
		return "", appErr
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		appErr := apperrors.NewIOError(filePath, err)
		slog.Error("Cannot read journal file",
			slog.String("path", filePath),
			slog.String("error", err.Error()))
		return "", appErr
	}
	return string(data), nil
}
