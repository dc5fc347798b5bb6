package exporter

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"
	"strings"

	"afilcli/internal/dataprocessing"
	apperrors "afilcli/internal/errors"
)

// Temporal key columns injected by the combiner.
const (
	yearColumn  = "year"
	monthColumn = "month"
)

// combinedHeader returns the checkpoint column order: identity columns, the
// temporal key, the canonical count columns, then the sorted union of
// passthrough columns observed across all files.
func combinedHeader(records []dataprocessing.Record) []string {
	header := []string{dataprocessing.ColProvince, dataprocessing.ColMunicipality, yearColumn, monthColumn}
	header = append(header, dataprocessing.CountColumns...)

	extras := make(map[string]bool)
	for _, rec := range records {
		for name := range rec.Extra {
			extras[name] = true
		}
	}
	names := make([]string, 0, len(extras))
	for name := range extras {
		names = append(names, name)
	}
	sort.Strings(names)

	return append(header, names...)
}

// formatCount renders a Count for CSV output; missing values become empty
// cells. The minimal float formatting keeps the checkpoint round trip
// lossless.
func formatCount(c dataprocessing.Count) string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// WriteCombined persists the combined dataset. This is the run's durable
// checkpoint and is written in full before any aggregation.
func (w *CSVWriter) WriteCombined(records []dataprocessing.Record) error {
	header := combinedHeader(records)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, 0, len(header))
		for _, col := range header {
			switch {
			case col == dataprocessing.ColProvince:
				row = append(row, rec.Province)
			case col == dataprocessing.ColMunicipality:
				row = append(row, rec.Municipality)
			case col == yearColumn:
				row = append(row, strconv.Itoa(rec.Year))
			case col == monthColumn:
				row = append(row, strconv.Itoa(rec.Month))
			case dataprocessing.IsCountColumn(col):
				row = append(row, formatCount(rec.Count(col)))
			default:
				row = append(row, rec.Extra[col])
			}
		}
		rows = append(rows, row)
	}

	return w.WriteSimpleCSV(CombinedFileName, header, rows)
}

// LoadCombined reads a previously persisted checkpoint back into records.
// An empty checkpoint yields ErrNoValidInput, matching a run that found no
// usable source files.
func LoadCombined(path string) ([]dataprocessing.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open combined dataset", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	all, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read combined dataset", err)
	}
	if len(all) == 0 {
		return nil, apperrors.ErrNoValidInput
	}

	header := all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	records := make([]dataprocessing.Record, 0, len(all)-1)
	for _, row := range all[1:] {
		rec := dataprocessing.Record{
			Counts: make(map[string]dataprocessing.Count),
			Extra:  make(map[string]string),
		}
		for i, col := range header {
			var value string
			if i < len(row) {
				value = row[i]
			}
			switch {
			case col == dataprocessing.ColProvince:
				rec.Province = value
			case col == dataprocessing.ColMunicipality:
				rec.Municipality = value
			case col == yearColumn:
				rec.Year, _ = strconv.Atoi(value)
			case col == monthColumn:
				rec.Month, _ = strconv.Atoi(value)
			case dataprocessing.IsCountColumn(col):
				rec.Counts[col] = dataprocessing.SanitizeCount(value)
			default:
				rec.Extra[col] = value
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, apperrors.ErrNoValidInput
	}
	return records, nil
}
