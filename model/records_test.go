package model

import "testing"

func intPtr(n int) *int { return &n }

func TestParseHalf(t *testing.T) {
	tests := []struct {
		in   string
		want Half
	}{
		{"Top", HalfTop},
		{"top", HalfTop},
		{"  BOTTOM ", HalfBottom},
		{"Bottom", HalfBottom},
		{"Middle", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseHalf(tt.in); got != tt.want {
			t.Errorf("ParseHalf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInningContext_Resolved(t *testing.T) {
	if (InningContext{}).Resolved() {
		t.Error("zero context should not be resolved")
	}
	if !(InningContext{Inning: 3, Half: HalfTop}).Resolved() {
		t.Error("inning 3 top should be resolved")
	}
	if (InningContext{Inning: 3}).Resolved() {
		t.Error("missing half should not be resolved")
	}
}

func TestInningContext_String(t *testing.T) {
	tests := []struct {
		ctx  InningContext
		want string
	}{
		{InningContext{Inning: 3, Half: HalfTop, Team: "TOR"}, "Top 3 (TOR)"},
		{InningContext{}, "Unknown ? (Unknown)"},
		{InningContext{Inning: 7, Half: HalfBottom}, "Bottom 7 (Unknown)"},
	}

	for _, tt := range tests {
		if got := tt.ctx.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSortPitches_NilNumbersLast(t *testing.T) {
	pitches := []Pitch{
		{Result: "Foul Ball", Number: intPtr(3)},
		{Result: "In Play", Number: nil},
		{Result: "Ball", Number: intPtr(1)},
		{Result: "Pickoff", Number: nil},
		{Result: "Called Strike", Number: intPtr(2)},
	}

	SortPitches(pitches)

	wantOrder := []string{"Ball", "Called Strike", "Foul Ball", "In Play", "Pickoff"}
	for i, want := range wantOrder {
		if pitches[i].Result != want {
			t.Errorf("pitches[%d].Result = %q, want %q", i, pitches[i].Result, want)
		}
	}
}

func TestSortPitches_StableForTies(t *testing.T) {
	pitches := []Pitch{
		{Result: "first", Number: nil},
		{Result: "second", Number: nil},
		{Result: "third", Number: nil},
	}

	SortPitches(pitches)

	for i, want := range []string{"first", "second", "third"} {
		if pitches[i].Result != want {
			t.Errorf("pitches[%d].Result = %q, want %q (stable order lost)", i, pitches[i].Result, want)
		}
	}
}

func TestPitch_Tag(t *testing.T) {
	if got := (Pitch{Number: intPtr(4)}).Tag(); got != "P4" {
		t.Errorf("Tag() = %q, want P4", got)
	}
	if got := (Pitch{}).Tag(); got != "P?" {
		t.Errorf("Tag() = %q, want P?", got)
	}
}
