package dataprocessing

import (
	"fmt"

	apperrors "afilcli/internal/errors"
)

// Canonical column names. Every historical header spelling collapses onto
// one of these.
const (
	ColProvince     = "PROVINCIA"
	ColMunicipality = "MUNICIPIO"
	ColGeneral      = "GENERAL"
	ColAgrario      = "AGRARIO"
	ColMar          = "MAR"
	ColHogar        = "HOGAR"
	ColAutonomos    = "AUTONOMOS"
	ColCarbon       = "CARBON"
	ColTotal        = "TOTAL"
	ColTrab         = "TRAB"
)

// CountColumns lists the canonical columns subject to numeric sanitization
// and available to the metric deriver.
var CountColumns = []string{
	ColGeneral,
	ColAgrario,
	ColMar,
	ColHogar,
	ColAutonomos,
	ColCarbon,
	ColTotal,
}

// headerVariants maps every known historical header spelling to its
// canonical column. The source publisher has changed header text, accents
// and whitespace repeatedly over two decades; a newly observed spelling is a
// one-line addition here.
var headerVariants = map[string]string{
	"Reg. General(1)":     ColGeneral,
	"TRAB.":               ColTrab,
	"R. G.- S.E.Agrario":  ColAgrario,
	"R.E.MAR":             ColMar,
	"R. E. MAR":           ColMar,
	"R. E. MAR ":          ColMar,
	"HOGAR (2)":           ColHogar,
	"R. G.- S.E.Hogar":    ColHogar,
	"R. G.- S.E.Hogar(2)": ColHogar,
	"R.E.Autónomos":       ColAutonomos,
	"R. E. T. Autónomos":  ColAutonomos,
	"R.E. Carbón":         ColCarbon,
	"R. E. M. Carbón":     ColCarbon,
}

// CanonicalColumn maps one header to its canonical name. Headers outside the
// variant table pass through unchanged, so unexpected future columns are
// preserved rather than dropped. Already-canonical names map to themselves.
func CanonicalColumn(header string) string {
	if canonical, ok := headerVariants[header]; ok {
		return canonical
	}
	return header
}

// IsCountColumn reports whether name is one of the canonical count columns.
func IsCountColumn(name string) bool {
	for _, col := range CountColumns {
		if name == col {
			return true
		}
	}
	return false
}

// NormalizeHeaders maps a file's header row onto the canonical column set.
// Two distinct source headers landing on the same canonical count column
// within one file means the variant table is wrong for that file's format;
// that is an error, not a silent overwrite.
func NormalizeHeaders(headers []string) ([]string, error) {
	normalized := make([]string, len(headers))
	seen := make(map[string]string, len(headers))

	for i, header := range headers {
		canonical := CanonicalColumn(header)
		normalized[i] = canonical

		if canonical != ColProvince && canonical != ColMunicipality && !IsCountColumn(canonical) {
			continue
		}
		if prev, ok := seen[canonical]; ok {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("headers %q and %q both map to canonical column %s", prev, header, canonical), nil)
		}
		seen[canonical] = header
	}

	return normalized, nil
}
