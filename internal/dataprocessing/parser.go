package dataprocessing

import (
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "afilcli/internal/errors"
)

// ParseFile reads one monthly affiliation workbook and returns its cleaned
// rows. Row 0 of the sheet is a decorative title; headers live on row 1 and
// data starts on row 2. The (year, month) key is stamped by the combiner,
// never read from cell content.
func ParseFile(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet", err)
	}
	if len(rows) < 2 {
		return nil, apperrors.NewParsingError("workbook has no header row", nil)
	}

	headers, err := NormalizeHeaders(rows[1])
	if err != nil {
		return nil, err
	}

	colIndex := make(map[string]int, len(headers))
	for i, name := range headers {
		if name != "" {
			colIndex[name] = i
		}
	}
	for _, required := range []string{ColProvince, ColMunicipality} {
		if _, ok := colIndex[required]; !ok {
			return nil, apperrors.NewParsingError("missing required column "+required, nil)
		}
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return row[idx]
		}
		return ""
	}

	var records []Record
	for _, row := range rows[2:] {
		if isEmptyRow(row) {
			continue
		}

		province := strings.TrimSpace(cell(row, colIndex[ColProvince]))
		municipality := strings.TrimSpace(cell(row, colIndex[ColMunicipality]))
		if isFootnoteRow(province) || isUnclassifiedRow(municipality) {
			continue
		}

		rec := Record{
			Province:     province,
			Municipality: municipality,
			Counts:       make(map[string]Count),
			Extra:        make(map[string]string),
		}
		for i, name := range headers {
			switch {
			case name == "" || name == ColProvince || name == ColMunicipality:
			case IsCountColumn(name):
				rec.Counts[name] = SanitizeCount(cell(row, i))
			default:
				rec.Extra[name] = strings.TrimSpace(cell(row, i))
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
