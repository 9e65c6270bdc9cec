package model

import "testing"

func TestGame_Summary(t *testing.T) {
	g := NewGame("TOR", "NYY")
	g.AtBats = []AtBat{
		{Key: "play1", Inning: 1, Half: HalfTop},
		{Key: "play2", Inning: 1, Half: HalfTop},
		{Key: "play3", Inning: 2, Half: HalfBottom},
		{Key: "play4"},
	}
	g.Pitches = []Pitch{
		{AtBatKey: "play1"},
		{AtBatKey: "play1"},
		{AtBatKey: "play3"},
	}
	g.Changes = []PitchingChange{{AtBatKey: "play3"}}

	s := g.Summary()
	if s.AwayTeam != "TOR" || s.HomeTeam != "NYY" {
		t.Errorf("teams = %q/%q, want TOR/NYY", s.AwayTeam, s.HomeTeam)
	}
	if s.AtBatCount != 4 {
		t.Errorf("AtBatCount = %d, want 4", s.AtBatCount)
	}
	if s.PitchCount != 3 {
		t.Errorf("PitchCount = %d, want 3", s.PitchCount)
	}
	if s.ChangeCount != 1 {
		t.Errorf("ChangeCount = %d, want 1", s.ChangeCount)
	}
	if s.InningCounts[1] != 2 || s.InningCounts[2] != 1 || s.InningCounts[0] != 1 {
		t.Errorf("InningCounts = %v, want map[0:1 1:2 2:1]", s.InningCounts)
	}
}

func TestGame_PitchesFor(t *testing.T) {
	g := NewGame("A", "B")
	g.Pitches = []Pitch{
		{AtBatKey: "x", Result: "Ball"},
		{AtBatKey: "y", Result: "Strike"},
		{AtBatKey: "x", Result: "Single"},
	}

	got := g.PitchesFor("x")
	if len(got) != 2 {
		t.Fatalf("PitchesFor(x) returned %d pitches, want 2", len(got))
	}
	if got[0].Result != "Ball" || got[1].Result != "Single" {
		t.Errorf("PitchesFor(x) order = %q,%q; want Ball,Single", got[0].Result, got[1].Result)
	}

	if got := g.PitchesFor("missing"); got != nil {
		t.Errorf("PitchesFor(missing) = %v, want nil", got)
	}
}
