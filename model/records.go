package model

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownTeam is the sentinel used when a play's batting team cannot be
// resolved from nearby markup.
const UnknownTeam = "Unknown"

// Half identifies which side of an inning a play belongs to.
type Half string

const (
	// HalfTop is the away team's turn batting.
	HalfTop Half = "Top"
	// HalfBottom is the home team's turn batting.
	HalfBottom Half = "Bottom"
)

// ParseHalf normalizes free text ("top", "BOTTOM") into a Half.
// Unrecognized input yields the empty Half.
func ParseHalf(s string) Half {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return HalfTop
	case "bottom":
		return HalfBottom
	}
	return ""
}

// InningContext is the game situation resolved for a single play.
// The zero value means the context could not be determined.
type InningContext struct {
	Inning int  // 1-based inning number; 0 if unresolved
	Half   Half // empty if unresolved
	Team   string
}

// Resolved reports whether both inning number and half were recovered.
func (c InningContext) Resolved() bool {
	return c.Inning > 0 && c.Half != ""
}

// String renders the context the way game logs print it, e.g. "Top 3 (TOR)".
func (c InningContext) String() string {
	inning := "?"
	if c.Inning > 0 {
		inning = fmt.Sprintf("%d", c.Inning)
	}
	half := string(c.Half)
	if half == "" {
		half = "Unknown"
	}
	team := c.Team
	if team == "" {
		team = UnknownTeam
	}
	return fmt.Sprintf("%s %s (%s)", half, inning, team)
}

// AtBat is one plate appearance or game event from the feed.
type AtBat struct {
	Key         string // stable identifier from the play container
	Inning      int    // 0 if unresolved
	Half        Half   // empty if unresolved
	Team        string
	Pitcher     string // empty until announced within the half-inning
	Description string
	AwayScore   *int // nil if absent or non-numeric
	HomeScore   *int

	// PitchSequence is a pre-formatted summary of the at-bat's pitches,
	// e.g. "P1: Ball, P2: Called Strike, P3: Single".
	PitchSequence string
}

// Pitch is one delivered pitch within an at-bat.
type Pitch struct {
	AtBatKey string
	Number   *int // sequence number within the at-bat; nil if unrecoverable
	Result   string
	Type     string
	Velocity *int // miles per hour; nil if absent

	// Zone is the strike-zone location code taken from a class-name
	// suffix convention, kept as-is.
	Zone string

	OnFirst  bool
	OnSecond bool
	OnThird  bool

	// FieldLocation is the raw positioning style of the fielded-ball
	// marker, kept as opaque text.
	FieldLocation string

	Inning  int
	Half    Half
	Team    string
	Pitcher string
}

// Tag renders the pitch's summary tag, "P3" or "P?" when the sequence
// number is missing.
func (p Pitch) Tag() string {
	if p.Number == nil {
		return "P?"
	}
	return fmt.Sprintf("P%d", *p.Number)
}

// PitchingChange records a mid-game pitcher substitution detected in a
// play's description text.
type PitchingChange struct {
	AtBatKey    string
	Inning      int
	Half        Half
	Team        string // batting team at the time of the change
	Incoming    string
	Outgoing    string
	Description string
}

// SortPitches orders pitches by ascending sequence number. Pitches with no
// recoverable number sort after all numbered pitches; ties keep their
// original order so repeated runs stay deterministic.
func SortPitches(pitches []Pitch) {
	sort.SliceStable(pitches, func(i, j int) bool {
		return pitchOrdinal(pitches[i]) < pitchOrdinal(pitches[j])
	})
}

// pitchOrdinal maps a missing sequence number to a sentinel greater than
// any real pitch count.
func pitchOrdinal(p Pitch) int {
	if p.Number == nil {
		return 1 << 30
	}
	return *p.Number
}
