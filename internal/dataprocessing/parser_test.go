package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a minimal source workbook: a decorative title on row
// 1, headers on row 2, data from row 3.
func writeWorkbook(t *testing.T, path string, headers []string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetCellValue(sheet, "A1", "Afiliados medios por municipio"))

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, header))
	}
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+3)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	require.NoError(t, f.SaveAs(path))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AfiliadosMuni-06-2014.xlsx")
	headers := []string{
		"PROVINCIA", "MUNICIPIO", "Reg. General(1)", "R. G.- S.E.Agrario",
		"R. E. MAR", "R. G.- S.E.Hogar(2)", "R. E. T. Autónomos", "R. E. M. Carbón",
		"TOTAL", "TRAB.",
	}
	writeWorkbook(t, path, headers, [][]interface{}{
		{"MADRID", "28079 Madrid", 1000, 20, "<5", 30, 40, nil, 1090, 7},
		{"MADRID", "SIN DISTRIBUCIÓN (*)", 5, nil, nil, nil, nil, nil, 5, nil},
		{"MADRID", "PROVINCIAL", 1005, 20, nil, 30, 40, nil, 1095, nil},
		{nil, nil, nil, nil, nil, nil, nil, nil, nil, nil},
		{"(1) Incluye el Sistema Especial Agrario", nil, nil, nil, nil, nil, nil, nil, nil, nil},
	})

	records, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	madrid := records[0]
	assert.Equal(t, "MADRID", madrid.Province)
	assert.Equal(t, "28079 Madrid", madrid.Municipality)
	assert.Equal(t, NewCount(1000), madrid.Count(ColGeneral))
	assert.Equal(t, NewCount(20), madrid.Count(ColAgrario))
	assert.Equal(t, Count{}, madrid.Count(ColMar), "censored value must read as missing")
	assert.Equal(t, NewCount(30), madrid.Count(ColHogar))
	assert.Equal(t, NewCount(40), madrid.Count(ColAutonomos))
	assert.Equal(t, Count{}, madrid.Count(ColCarbon))
	assert.Equal(t, NewCount(1090), madrid.Count(ColTotal))
	assert.Equal(t, "7", madrid.Extra[ColTrab], "non-count columns pass through")

	provincial := records[1]
	assert.Equal(t, "PROVINCIAL", provincial.Municipality)
	assert.Equal(t, NewCount(1005), provincial.Count(ColGeneral))

	// The temporal key is stamped by the combiner, not the parser.
	assert.Zero(t, madrid.Year)
	assert.Zero(t, madrid.Month)
}

func TestParseFileHeaderCollision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AfiliadosMuni-06-2014.xlsx")
	writeWorkbook(t, path,
		[]string{"PROVINCIA", "MUNICIPIO", "R.E.MAR", "R. E. MAR"},
		[][]interface{}{{"MADRID", "28079 Madrid", 1, 2}},
	)

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonical column MAR")
}

func TestParseFileMissingIdentityColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AfiliadosMuni-06-2014.xlsx")
	writeWorkbook(t, path,
		[]string{"PROVINCIA", "Reg. General(1)"},
		[][]interface{}{{"MADRID", 1000}},
	)

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColMunicipality)
}

func TestParseFileNotAWorkbook(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
}
