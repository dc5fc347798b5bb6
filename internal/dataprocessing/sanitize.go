package dataprocessing

import (
	"strconv"
	"strings"
)

// censoredMarker is the source convention for a count below the disclosure
// threshold; the value is suppressed, not zero.
const censoredMarker = "<5"

// unclassifiedPrefix marks rows whose counts could not be attributed to a
// specific municipality within a province, e.g. "SIN DISTRIBUCIÓN (*)".
const unclassifiedPrefix = "SIN DISTRIBUCIÓN"

// SanitizeCount coerces a raw cell to a Count. The censored marker and any
// value that fails numeric coercion become missing; sparse suppressed cells
// are expected and must not abort a multi-decade combine.
func SanitizeCount(raw string) Count {
	s := strings.TrimSpace(raw)
	if s == "" || s == censoredMarker {
		return Count{}
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return Count{}
	}
	return NewCount(v)
}

// isFootnoteRow reports whether a row is a footnote or legend row; the
// source marks them with an opening parenthesis in the province column.
func isFootnoteRow(province string) bool {
	return strings.HasPrefix(strings.TrimSpace(province), "(")
}

// isUnclassifiedRow reports whether a row is an unclassified-distribution
// placeholder.
func isUnclassifiedRow(municipality string) bool {
	return strings.HasPrefix(strings.TrimSpace(municipality), unclassifiedPrefix)
}

// isEmptyRow reports whether every cell of a row is blank (separator rows).
func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
