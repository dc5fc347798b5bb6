package dataprocessing

// Count is a numeric cell that may be missing. Censored values ("<5") and
// unparsable cells become missing, never zero, so they are excluded from the
// averages instead of dragging them down.
type Count struct {
	Value float64
	Valid bool
}

// NewCount returns a present Count with the given value.
func NewCount(v float64) Count {
	return Count{Value: v, Valid: true}
}

// Record is one cleaned row of a source workbook, stamped with the (year,
// month) key of the file it came from.
type Record struct {
	Province     string
	Municipality string
	Year         int
	Month        int
	// Counts holds the canonical regime-count columns present in the
	// source file, keyed by canonical column name.
	Counts map[string]Count
	// Extra preserves columns outside the canonical vocabulary so a new
	// header in a future file is carried through rather than dropped.
	Extra map[string]string
}

// Count returns the value of a canonical count column; absent columns read
// as missing.
func (r Record) Count(column string) Count {
	return r.Counts[column]
}

// MetricRecord is a Record reduced to the derived AFILIADOS metric.
type MetricRecord struct {
	Province     string
	Municipality string
	Year         int
	Month        int
	Afiliados    Count
}

// MunicipalityAverage is the yearly mean for one municipality code.
type MunicipalityAverage struct {
	Code      int
	Year      int
	Afiliados Count
}

// ProvincialAverage is the yearly mean of a province's PROVINCIAL rows.
type ProvincialAverage struct {
	Province  string
	Year      int
	Afiliados Count
}

// NationalAverage is the yearly mean of the NACIONAL rows.
type NationalAverage struct {
	Province  string
	Year      int
	Afiliados Count
}
