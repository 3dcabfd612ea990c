package domain

import "strings"

// Row maps a column name to the cell value for one record.
type Row map[string]string

// Dataset is an ordered collection of uniform-shape rows with named columns.
// Both loaders produce a fresh Dataset per call; it is never mutated after
// being returned.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// DatasetInfo summarizes a Dataset for display: row count plus the number of
// non-empty cells per column, in column order.
type DatasetInfo struct {
	RowCount int            `json:"row_count"`
	Columns  []string       `json:"columns"`
	NonEmpty map[string]int `json:"non_empty"`
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Head returns the first n rows (fewer if the dataset is shorter). The
// returned slice aliases the dataset's rows.
func (d *Dataset) Head(n int) []Row {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	if n < 0 {
		n = 0
	}
	return d.Rows[:n]
}

// Info computes per-column non-empty counts for the whole dataset.
func (d *Dataset) Info() DatasetInfo {
	info := DatasetInfo{
		RowCount: len(d.Rows),
		Columns:  d.Columns,
		NonEmpty: make(map[string]int, len(d.Columns)),
	}
	for _, col := range d.Columns {
		info.NonEmpty[col] = 0
	}
	for _, row := range d.Rows {
		for _, col := range d.Columns {
			if strings.TrimSpace(row[col]) != "" {
				info.NonEmpty[col]++
			}
		}
	}
	return info
}
