package dataprocessing

import (
	"regexp"
	"strconv"

	apperrors "afilcli/internal/errors"
)

// fileDatePattern matches the month-year key embedded in source file names,
// e.g. "AfiliadosMuni-01-2012+DEFINITIVO+mod.xlsx". Revision tags before or
// after the pattern are ignored.
var fileDatePattern = regexp.MustCompile(`AfiliadosMuni-(\d{2})-(\d{4})`)

// ParseFileDate extracts the (year, month) key from a source file name.
// Returns an error wrapping ErrUnparsableFilename when the pattern is absent
// or the month is out of range.
func ParseFileDate(filename string) (year, month int, err error) {
	m := fileDatePattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, 0, apperrors.UnparsableFilename(filename)
	}

	month, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, apperrors.UnparsableFilename(filename)
	}

	return year, month, nil
}
