// Package dataprocessing implements the affiliation data pipeline: it dates
// each monthly workbook from its filename, reconciles two decades of header
// spelling drift onto one canonical column set, drops footer and placeholder
// rows, coerces censored counts to missing values, combines everything into
// one table, derives the AFILIADOS composite metric and computes the three
// grouped yearly averages.
//
// Every stage produces a new table from the previous one; nothing is mutated
// after creation, so the per-file pipelines can run independently and merge
// their results afterwards.
package dataprocessing
