// Package model provides the record types produced by play-by-play
// extraction.
//
// This package defines the user-facing data structures that represent the
// contents of a single game's live commentary feed. All extraction
// operations ultimately produce these types, making them the primary API
// for consuming extracted content.
//
// # Records
//
// A [Game] holds three ordered record streams plus the team names resolved
// from page metadata:
//
//   - [AtBat] - one row per play container, in document order
//   - [Pitch] - one row per pitch event, keyed to its parent at-bat
//   - [PitchingChange] - one row per detected pitching change
//
// All three streams carry the same denormalized (inning, half, team,
// pitcher) context as their parent play.
//
// # Optional fields
//
// Fields that the feed may omit or garble (scores, velocity, pitch
// sequence numbers) are pointers; nil means the value was not recoverable.
// Context fields degrade to zero values and the "Unknown" team sentinel
// rather than failing.
package model
