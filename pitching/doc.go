// Package pitching tracks the current pitcher for each half-inning.
//
// The feed never lists pitchers in a structured way; they surface only in
// play description text, either as a substitution ("Pitching Change: Smith
// replaces Jones.") or as a standalone announcement ("Pitching: Smith").
// A [Tracker] scans each play's description in document order and carries
// the detected pitcher forward until superseded within the same
// (inning, half) key.
//
// A new half-inning starts unattributed: the tracker deliberately does not
// carry a pitcher across half-inning boundaries, because deciding whether
// the same staff is still pitching would require roster knowledge the feed
// does not contain. This under-attribution is documented, observable
// behavior, not a defect to be patched here.
//
// Each document gets a fresh Tracker; state never leaks between games.
package pitching
