// Package innings resolves the inning context of a play: the inning
// number, the half (Top or Bottom), and the batting team.
//
// The feed never attaches this context to the play itself. A [Resolver]
// recovers it by searching backward from the play's node for the nearest
// heading that reads like "Top 3rd" or "Bottom 7th - Toronto Blue Jays",
// first among preceding siblings, then among the direct heading children of
// each ancestor. The walk is bounded by a hop budget so it terminates on
// any tree, however malformed. Resolution is best-effort; when nothing
// matches, the sentinel context is returned rather than an error.
package innings
