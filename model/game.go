package model

// Game holds the complete extraction output for one document: the teams
// resolved from page metadata and the three ordered record streams.
type Game struct {
	AwayTeam string
	HomeTeam string

	AtBats  []AtBat
	Pitches []Pitch
	Changes []PitchingChange
}

// NewGame creates an empty game for the given teams.
func NewGame(awayTeam, homeTeam string) *Game {
	return &Game{
		AwayTeam: awayTeam,
		HomeTeam: homeTeam,
	}
}

// PitchesFor returns the pitches belonging to the at-bat with the given
// key, in their stored (sequence) order.
func (g *Game) PitchesFor(atBatKey string) []Pitch {
	var out []Pitch
	for _, p := range g.Pitches {
		if p.AtBatKey == atBatKey {
			out = append(out, p)
		}
	}
	return out
}

// Summary aggregates the game into a single row for reporting.
func (g *Game) Summary() GameSummary {
	return GameSummary{
		AwayTeam:     g.AwayTeam,
		HomeTeam:     g.HomeTeam,
		AtBatCount:   len(g.AtBats),
		PitchCount:   len(g.Pitches),
		ChangeCount:  len(g.Changes),
		InningCounts: g.inningCounts(),
	}
}

// inningCounts tallies at-bats per resolved inning. Plays with no resolved
// inning are counted under inning 0.
func (g *Game) inningCounts() map[int]int {
	counts := make(map[int]int)
	for _, ab := range g.AtBats {
		counts[ab.Inning]++
	}
	return counts
}

// GameSummary is the derived one-row overview of an extracted game.
type GameSummary struct {
	AwayTeam     string
	HomeTeam     string
	AtBatCount   int
	PitchCount   int
	ChangeCount  int
	InningCounts map[int]int
}
