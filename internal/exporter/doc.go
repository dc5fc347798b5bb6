// Package exporter persists the pipeline's four output tables: the combined
// dataset checkpoint and the three yearly averages. The checkpoint can be
// loaded back so aggregation re-runs without re-ingesting source workbooks.
package exporter
