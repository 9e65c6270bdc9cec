package pitching

import (
	"testing"

	"github.com/tsawler/dugout/model"
)

var (
	top3    = Key{Inning: 3, Half: model.HalfTop}
	bottom3 = Key{Inning: 3, Half: model.HalfBottom}
)

func TestObserve_PitchingChange(t *testing.T) {
	tr := NewTracker()

	pitcher, change := tr.Observe(top3, "Pitching Change: Smith replaces Jones.")
	if change == nil {
		t.Fatal("expected a detected change")
	}
	if change.Incoming != "Smith" {
		t.Errorf("Incoming = %q, want Smith", change.Incoming)
	}
	if change.Outgoing != "Jones" {
		t.Errorf("Outgoing = %q, want Jones", change.Outgoing)
	}
	// The announcing play is attributed to the incoming pitcher.
	if pitcher != "Smith" {
		t.Errorf("pitcher = %q, want Smith", pitcher)
	}

	// Subsequent plays in the same half-inning keep the new pitcher.
	pitcher, change = tr.Observe(top3, "Guerrero Jr. grounded out to short.")
	if change != nil {
		t.Errorf("unexpected change on ordinary play: %+v", change)
	}
	if pitcher != "Smith" {
		t.Errorf("pitcher = %q, want Smith carried forward", pitcher)
	}
}

func TestObserve_PlainReplaces(t *testing.T) {
	tr := NewTracker()

	_, change := tr.Observe(top3, "Gausman replaces Berrios.")
	if change == nil {
		t.Fatal("expected a detected change")
	}
	if change.Incoming != "Gausman" || change.Outgoing != "Berrios" {
		t.Errorf("change = %+v, want Gausman replaces Berrios", change)
	}
}

func TestObserve_RelievedBy(t *testing.T) {
	tr := NewTracker()

	pitcher, change := tr.Observe(top3, "Jones relieved by Smith.")
	if change == nil {
		t.Fatal("expected a detected change")
	}
	if change.Incoming != "Smith" || change.Outgoing != "Jones" {
		t.Errorf("change = %+v, want Smith in for Jones", change)
	}
	if pitcher != "Smith" {
		t.Errorf("pitcher = %q, want Smith", pitcher)
	}
}

func TestObserve_Announcement(t *testing.T) {
	tr := NewTracker()

	pitcher, change := tr.Observe(top3, "Pitching: Cole")
	if change != nil {
		t.Errorf("announcement must not report a change, got %+v", change)
	}
	if pitcher != "Cole" {
		t.Errorf("pitcher = %q, want Cole", pitcher)
	}

	// A later change supersedes the announcement.
	pitcher, _ = tr.Observe(top3, "Pitching Change: Holmes replaces Cole.")
	if pitcher != "Holmes" {
		t.Errorf("pitcher = %q, want Holmes", pitcher)
	}
}

func TestObserve_NoCarryOverAcrossHalves(t *testing.T) {
	tr := NewTracker()

	tr.Observe(top3, "Pitching: Cole")
	if got := tr.Current(top3); got != "Cole" {
		t.Fatalf("Current(top3) = %q, want Cole", got)
	}

	// First play of the bottom half: nothing announced yet, so the
	// pitcher is unknown, not inherited from the top half.
	pitcher, _ := tr.Observe(bottom3, "Springer flied out to right.")
	if pitcher != "" {
		t.Errorf("pitcher = %q, want empty for fresh half-inning", pitcher)
	}
	if got := tr.Current(top3); got != "Cole" {
		t.Errorf("Current(top3) = %q, want Cole untouched", got)
	}
}

func TestObserve_OrdinaryPlayNoState(t *testing.T) {
	tr := NewTracker()

	pitcher, change := tr.Observe(top3, "Judge homered to center.")
	if pitcher != "" || change != nil {
		t.Errorf("Observe() = %q,%+v; want empty and nil", pitcher, change)
	}
}

func TestObserve_MultiWordNames(t *testing.T) {
	tr := NewTracker()

	_, change := tr.Observe(top3, "Pitching Change: De Los Santos replaces Garcia.")
	if change == nil {
		t.Fatal("expected a detected change")
	}
	if change.Incoming != "De Los Santos" {
		t.Errorf("Incoming = %q, want De Los Santos", change.Incoming)
	}
	if change.Outgoing != "Garcia" {
		t.Errorf("Outgoing = %q, want Garcia", change.Outgoing)
	}
}

func TestObserve_UnknownKeyStillTracks(t *testing.T) {
	// Plays with unresolved context share the zero key; attribution
	// still works within that stretch.
	tr := NewTracker()
	unknown := Key{}

	tr.Observe(unknown, "Pitching: Cole")
	pitcher, _ := tr.Observe(unknown, "Next batter grounds out.")
	if pitcher != "Cole" {
		t.Errorf("pitcher = %q, want Cole within the unknown-context stretch", pitcher)
	}
}

func TestFreshTrackerPerDocument(t *testing.T) {
	tr := NewTracker()
	tr.Observe(top3, "Pitching: Cole")

	fresh := NewTracker()
	if got := fresh.Current(top3); got != "" {
		t.Errorf("fresh tracker Current() = %q, want empty", got)
	}
}
