package pitching

import (
	"regexp"
	"strings"

	"github.com/tsawler/dugout/model"
)

// namePattern matches a capitalized pitcher name, allowing initials,
// apostrophes, and hyphenated surnames.
const namePattern = `[A-Z][\w.' -]+?`

// Patterns holds the compiled phrase conventions for pitcher detection.
// Fixed at tracker construction, never mutated.
type Patterns struct {
	// Change matches "X replaces Y" with an optional "Pitching Change:"
	// prefix; group 1 is the incoming pitcher, group 2 the outgoing.
	Change *regexp.Regexp
	// Relieved matches "Y relieved by X"; group 1 is the outgoing
	// pitcher, group 2 the incoming.
	Relieved *regexp.Regexp
	// Announcement matches a standalone "Pitching: X"; group 1 is the
	// pitcher.
	Announcement *regexp.Regexp
}

// DefaultPatterns returns the phrasings the live feed uses.
func DefaultPatterns() Patterns {
	return Patterns{
		Change: regexp.MustCompile(
			`(?:[Pp]itching\s+[Cc]hange:?\s*)?(` + namePattern + `)\s+replaces\s+(` + namePattern + `)(?:[.,;]|$)`),
		Relieved: regexp.MustCompile(
			`(` + namePattern + `)\s+relieved\s+by\s+(` + namePattern + `)(?:[.,;]|$)`),
		Announcement: regexp.MustCompile(
			`\b[Pp]itching:\s*(` + namePattern + `)(?:[.,;]|$)`),
	}
}

// Key identifies one half-inning's pitcher state.
type Key struct {
	Inning int
	Half   model.Half
}

// Change reports a detected substitution.
type Change struct {
	Incoming string
	Outgoing string
}

// Tracker maintains the current pitcher per half-inning. It is the one
// piece of mutable state in an extraction run and is owned by a single
// forward pass; it is not safe for concurrent use.
type Tracker struct {
	patterns Patterns
	current  map[Key]string
}

// NewTracker creates a tracker with the default phrase patterns.
func NewTracker() *Tracker {
	return NewTrackerWithPatterns(DefaultPatterns())
}

// NewTrackerWithPatterns creates a tracker with custom phrase patterns.
func NewTrackerWithPatterns(patterns Patterns) *Tracker {
	return &Tracker{
		patterns: patterns,
		current:  make(map[Key]string),
	}
}

// Observe scans one play's description, updates state for the given
// half-inning, and returns the pitcher attributed to that play. The play
// that announces a change is itself attributed to the incoming pitcher.
// The returned change is non-nil only when a substitution was detected.
func (t *Tracker) Observe(key Key, description string) (pitcher string, change *Change) {
	if c := t.detectChange(description); c != nil {
		t.current[key] = c.Incoming
		return c.Incoming, c
	}
	if m := t.patterns.Announcement.FindStringSubmatch(description); m != nil {
		name := cleanName(m[1])
		if name != "" {
			t.current[key] = name
		}
	}
	return t.current[key], nil
}

// Current returns the pitcher last established for the half-inning, or ""
// when none has been announced within it.
func (t *Tracker) Current(key Key) string {
	return t.current[key]
}

// detectChange tries both substitution phrasings.
func (t *Tracker) detectChange(description string) *Change {
	if m := t.patterns.Change.FindStringSubmatch(description); m != nil {
		incoming, outgoing := cleanName(m[1]), cleanName(m[2])
		if incoming != "" {
			return &Change{Incoming: incoming, Outgoing: outgoing}
		}
	}
	if m := t.patterns.Relieved.FindStringSubmatch(description); m != nil {
		incoming, outgoing := cleanName(m[2]), cleanName(m[1])
		if incoming != "" {
			return &Change{Incoming: incoming, Outgoing: outgoing}
		}
	}
	return nil
}

// cleanName strips trailing punctuation the phrase patterns may carry
// along and collapses internal whitespace.
func cleanName(s string) string {
	s = strings.TrimRight(s, ".,;: ")
	return strings.Join(strings.Fields(s), " ")
}
