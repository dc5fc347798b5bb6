package dataprocessing

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	apperrors "afilcli/internal/errors"
)

// Labels the source uses for rows above municipality level.
const (
	// ProvincialLabel marks a province's own total row.
	ProvincialLabel = "PROVINCIAL"
	// NationalLabel marks the country-wide total rows.
	NationalLabel = "NACIONAL"
)

// ParseMunicipalityCode extracts the numeric code prefixed to a municipality
// display label ("12040 Some Town" -> 12040). A label without a leading
// numeric token wraps ErrMalformedMunicipalityLabel; by the time labels
// reach the aggregator the placeholders are gone, so a failure here means
// the canonical schema missed a new file format upstream.
func ParseMunicipalityCode(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, apperrors.MalformedMunicipalityLabel(label)
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, apperrors.MalformedMunicipalityLabel(label)
	}
	return code, nil
}

// Aggregator computes the three independent grouped yearly means of the
// derived metric. No reduction reads another reduction's output.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates an aggregator logging through the given logger.
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// meanAcc accumulates a mean that ignores missing members. A group whose
// members are all missing keeps n == 0 and yields a missing mean.
type meanAcc struct {
	sum float64
	n   int
}

func (m *meanAcc) add(c Count) {
	if c.Valid {
		m.sum += c.Value
		m.n++
	}
}

func (m *meanAcc) mean() Count {
	if m.n == 0 {
		return Count{}
	}
	return NewCount(m.sum / float64(m.n))
}

// MunicipalityAverages groups municipality rows by (code, year). Province
// total rows and rows without a municipality label are excluded.
func (a *Aggregator) MunicipalityAverages(records []MetricRecord) ([]MunicipalityAverage, error) {
	type key struct {
		code int
		year int
	}
	groups := make(map[key]*meanAcc)

	for _, rec := range records {
		if rec.Municipality == "" || rec.Municipality == ProvincialLabel {
			continue
		}
		code, err := ParseMunicipalityCode(rec.Municipality)
		if err != nil {
			return nil, err
		}
		k := key{code: code, year: rec.Year}
		acc := groups[k]
		if acc == nil {
			acc = &meanAcc{}
			groups[k] = acc
		}
		acc.add(rec.Afiliados)
	}

	out := make([]MunicipalityAverage, 0, len(groups))
	for k, acc := range groups {
		out = append(out, MunicipalityAverage{Code: k.code, Year: k.year, Afiliados: acc.mean()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Year < out[j].Year
	})

	a.logger.Debug("municipality averages computed", slog.Int("groups", len(out)))
	return out, nil
}

// ProvincialAverages groups the PROVINCIAL total rows by (province, year).
func (a *Aggregator) ProvincialAverages(records []MetricRecord) []ProvincialAverage {
	type key struct {
		province string
		year     int
	}
	groups := make(map[key]*meanAcc)

	for _, rec := range records {
		if rec.Municipality != ProvincialLabel {
			continue
		}
		k := key{province: rec.Province, year: rec.Year}
		acc := groups[k]
		if acc == nil {
			acc = &meanAcc{}
			groups[k] = acc
		}
		acc.add(rec.Afiliados)
	}

	out := make([]ProvincialAverage, 0, len(groups))
	for k, acc := range groups {
		out = append(out, ProvincialAverage{Province: k.province, Year: k.year, Afiliados: acc.mean()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Province != out[j].Province {
			return out[i].Province < out[j].Province
		}
		return out[i].Year < out[j].Year
	})

	a.logger.Debug("provincial averages computed", slog.Int("groups", len(out)))
	return out
}

// NationalAverages groups the NACIONAL rows by year. The NACIONAL label is
// re-attached to every output row.
func (a *Aggregator) NationalAverages(records []MetricRecord) []NationalAverage {
	groups := make(map[int]*meanAcc)

	for _, rec := range records {
		if rec.Province != NationalLabel {
			continue
		}
		acc := groups[rec.Year]
		if acc == nil {
			acc = &meanAcc{}
			groups[rec.Year] = acc
		}
		acc.add(rec.Afiliados)
	}

	out := make([]NationalAverage, 0, len(groups))
	for year, acc := range groups {
		out = append(out, NationalAverage{Province: NationalLabel, Year: year, Afiliados: acc.mean()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})

	a.logger.Debug("national averages computed", slog.Int("groups", len(out)))
	return out
}
