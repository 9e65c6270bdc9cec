// Package store archives extracted games in a local SQLite database.
//
// Each saved game keeps its three record streams in extraction order so a
// later load reproduces the original output exactly. The database file is
// created on first open; the schema is applied idempotently.
package store
