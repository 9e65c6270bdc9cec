// Package export serializes extracted game records for downstream use.
//
// The engine's three record streams (at-bats, pitches, pitching changes)
// can be written as an XLSX workbook with one sheet per stream plus a
// summary sheet, as delimited text (CSV/TSV, one file per stream), or as
// JSON/JSON Lines. Column ordering is fixed per record type; the records
// themselves are never modified.
package export
