package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	apperrors "afilcli/internal/errors"
)

// Output file names beneath the output directory.
const (
	CombinedFileName             = "all_data.csv"
	MunicipalityAveragesFileName = "averages_muni.csv"
	NationalAveragesFileName     = "averages_nacional.csv"
	ProvincialAveragesFileName   = "averages_provincial.csv"
)

// CSVWriter writes output tables beneath a base directory.
type CSVWriter struct {
	baseDir string
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(baseDir string) *CSVWriter {
	return &CSVWriter{baseDir: baseDir}
}

// WriteSimpleCSV writes a CSV file with headers and records. The file gets a
// UTF-8 BOM so Excel opens the accented province names correctly.
func (w *CSVWriter) WriteSimpleCSV(name string, headers []string, records [][]string) error {
	fullPath := w.resolvePath(name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return apperrors.NewStorageError("failed to create output file", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return apperrors.NewStorageError("failed to write BOM", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return apperrors.NewStorageError("failed to write header row", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write record %d", i), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// resolvePath resolves a file name against the base directory
func (w *CSVWriter) resolvePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.baseDir, name)
}
