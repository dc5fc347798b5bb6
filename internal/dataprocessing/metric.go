package dataprocessing

import "log/slog"

// MetricConfig selects the columns that feed the composite affiliation
// metric and the year from which the conditional column is folded in. An
// empty ConditionalAdd makes the metric a plain copy of the primary column.
type MetricConfig struct {
	YearThreshold  int
	Primary        string
	ConditionalAdd string
}

// DefaultMetricConfig returns the production rule. The household-worker
// category was reported as a separate regime only from 2012 onward and must
// be folded into the general count thereafter to keep the series comparable
// across the full time span.
func DefaultMetricConfig() MetricConfig {
	return MetricConfig{
		YearThreshold:  2012,
		Primary:        ColGeneral,
		ConditionalAdd: ColHogar,
	}
}

// Deriver computes the AFILIADOS composite metric per row.
type Deriver struct {
	logger *slog.Logger
	config MetricConfig
}

// NewDeriver creates a metric deriver with the given configuration.
func NewDeriver(logger *slog.Logger, config MetricConfig) *Deriver {
	if logger == nil {
		logger = slog.Default()
	}
	if config.YearThreshold <= 0 {
		config.YearThreshold = 2012
	}
	if config.Primary == "" {
		config.Primary = ColGeneral
	}
	return &Deriver{logger: logger, config: config}
}

// Derive reduces the combined table to (province, municipality, year, month,
// AFILIADOS).
func (d *Deriver) Derive(records []Record) []MetricRecord {
	out := make([]MetricRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, MetricRecord{
			Province:     rec.Province,
			Municipality: rec.Municipality,
			Year:         rec.Year,
			Month:        rec.Month,
			Afiliados:    d.derive(rec),
		})
	}
	return out
}

// derive applies the year-conditioned composite rule. A missing primary
// count propagates as missing, never zero.
func (d *Deriver) derive(rec Record) Count {
	primary := rec.Count(d.config.Primary)
	if !primary.Valid {
		return Count{}
	}
	if d.config.ConditionalAdd == "" || rec.Year < d.config.YearThreshold {
		return primary
	}
	add := rec.Count(d.config.ConditionalAdd)
	if !add.Valid {
		return primary
	}
	return NewCount(primary.Value + add.Value)
}
