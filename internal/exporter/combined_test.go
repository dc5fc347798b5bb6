package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afilcli/internal/dataprocessing"
	apperrors "afilcli/internal/errors"
)

func sampleRecords() []dataprocessing.Record {
	return []dataprocessing.Record{
		{
			Province: "NACIONAL",
			Year:     2011,
			Month:    3,
			Counts: map[string]dataprocessing.Count{
				dataprocessing.ColGeneral: dataprocessing.NewCount(1000),
			},
			Extra: map[string]string{dataprocessing.ColTrab: "12"},
		},
		{
			Province:     "MADRID",
			Municipality: "28079 Madrid",
			Year:         2013,
			Month:        1,
			Counts: map[string]dataprocessing.Count{
				dataprocessing.ColGeneral: dataprocessing.NewCount(1200),
				dataprocessing.ColHogar:   dataprocessing.NewCount(50),
				dataprocessing.ColMar:     {},
			},
			Extra: map[string]string{},
		},
		{
			Province:     "MADRID",
			Municipality: dataprocessing.ProvincialLabel,
			Year:         2013,
			Month:        1,
			Counts: map[string]dataprocessing.Count{
				dataprocessing.ColGeneral: dataprocessing.NewCount(1250.5),
			},
			Extra: map[string]string{},
		},
	}
}

func aggregateAll(t *testing.T, records []dataprocessing.Record) (
	[]dataprocessing.MunicipalityAverage,
	[]dataprocessing.ProvincialAverage,
	[]dataprocessing.NationalAverage,
) {
	t.Helper()

	metrics := dataprocessing.NewDeriver(nil, dataprocessing.DefaultMetricConfig()).Derive(records)
	agg := dataprocessing.NewAggregator(nil)
	muni, err := agg.MunicipalityAverages(metrics)
	require.NoError(t, err)
	return muni, agg.ProvincialAverages(metrics), agg.NationalAverages(metrics)
}

// The persisted checkpoint must be lossless: loading it back and
// re-aggregating yields the same tables as a single-pass run.
func TestCombinedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	records := sampleRecords()

	require.NoError(t, NewCSVWriter(dir).WriteCombined(records))

	loaded, err := LoadCombined(filepath.Join(dir, CombinedFileName))
	require.NoError(t, err)
	require.Len(t, loaded, len(records))

	assert.Equal(t, "NACIONAL", loaded[0].Province)
	assert.Equal(t, 2011, loaded[0].Year)
	assert.Equal(t, 3, loaded[0].Month)
	assert.Equal(t, "12", loaded[0].Extra[dataprocessing.ColTrab], "passthrough columns survive the round trip")
	assert.False(t, loaded[1].Count(dataprocessing.ColMar).Valid, "missing cells stay missing")

	wantMuni, wantProv, wantNat := aggregateAll(t, records)
	gotMuni, gotProv, gotNat := aggregateAll(t, loaded)
	assert.Equal(t, wantMuni, gotMuni)
	assert.Equal(t, wantProv, gotProv)
	assert.Equal(t, wantNat, gotNat)
}

func TestLoadCombinedMissingFile(t *testing.T) {
	_, err := LoadCombined(filepath.Join(t.TempDir(), CombinedFileName))
	require.Error(t, err)
}

func TestLoadCombinedEmptyCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), CombinedFileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := LoadCombined(path)
	assert.ErrorIs(t, err, apperrors.ErrNoValidInput)
}

func TestWriteCombinedHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewCSVWriter(dir).WriteCombined(sampleRecords()))

	data, err := os.ReadFile(filepath.Join(dir, CombinedFileName))
	require.NoError(t, err)

	content := strings.TrimPrefix(string(data), "\uFEFF")
	header := strings.SplitN(content, "\n", 2)[0]
	assert.Equal(t,
		"PROVINCIA,MUNICIPIO,year,month,GENERAL,AGRARIO,MAR,HOGAR,AUTONOMOS,CARBON,TOTAL,TRAB",
		strings.TrimRight(header, "\r"))
}
