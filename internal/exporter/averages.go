package exporter

import (
	"strconv"

	"afilcli/internal/dataprocessing"
)

// WriteMunicipalityAverages writes the (municipality code, year) means.
func (w *CSVWriter) WriteMunicipalityAverages(rows []dataprocessing.MunicipalityAverage) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Code),
			strconv.Itoa(row.Year),
			formatCount(row.Afiliados),
		})
	}
	return w.WriteSimpleCSV(MunicipalityAveragesFileName,
		[]string{"MUNI_CODE", yearColumn, "AFILIADOS"}, records)
}

// WriteProvincialAverages writes the (province, year) means.
func (w *CSVWriter) WriteProvincialAverages(rows []dataprocessing.ProvincialAverage) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Province,
			strconv.Itoa(row.Year),
			formatCount(row.Afiliados),
		})
	}
	return w.WriteSimpleCSV(ProvincialAveragesFileName,
		[]string{dataprocessing.ColProvince, yearColumn, "AFILIADOS"}, records)
}

// WriteNationalAverages writes the national yearly means with the NACIONAL
// label re-attached.
func (w *CSVWriter) WriteNationalAverages(rows []dataprocessing.NationalAverage) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Province,
			strconv.Itoa(row.Year),
			formatCount(row.Afiliados),
		})
	}
	return w.WriteSimpleCSV(NationalAveragesFileName,
		[]string{dataprocessing.ColProvince, yearColumn, "AFILIADOS"}, records)
}
