package dugout

import (
	"fmt"
	"strings"

	"github.com/tsawler/dugout/innings"
	"github.com/tsawler/dugout/model"
	"github.com/tsawler/dugout/pbpdoc"
	"github.com/tsawler/dugout/pitches"
	"github.com/tsawler/dugout/pitching"
)

// Extractor provides a fluent interface for extracting play-by-play
// records from a game document. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source (exactly one is used)
	filename string
	raw      string
	hasRaw   bool

	reader *pbpdoc.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		raw:          e.raw,
		hasRaw:       e.hasRaw,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}

	switch {
	case e.hasRaw:
		r, err := newRawReader(e.raw, e.options.selectors)
		if err != nil {
			return fmt.Errorf("failed to parse markup: %w", err)
		}
		e.reader = r
	case e.filename != "":
		f, err := pbpdoc.Open(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		e.reader = f
	default:
		return fmt.Errorf("no document source specified")
	}

	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Selectors overrides the CSS class conventions used to locate plays.
//
// Example:
//
//	sel := pbpdoc.DefaultSelectors()
//	sel.PlayHeader = "button.custom-header"
//	game, err := dugout.Open("game.html").Selectors(sel).Game()
func (e *Extractor) Selectors(sel pbpdoc.Selectors) *Extractor {
	newExt := e.clone()
	newExt.options.selectors = sel
	return newExt
}

// Teams overrides the away and home team names for documents whose
// metadata is missing or wrong.
func (e *Extractor) Teams(away, home string) *Extractor {
	newExt := e.clone()
	newExt.options.awayTeam = away
	newExt.options.homeTeam = home
	return newExt
}

// MaxContextHops bounds the inning-context search walk. Values below 1
// keep the default budget.
func (e *Extractor) MaxContextHops(hops int) *Extractor {
	newExt := e.clone()
	newExt.options.resolver.MaxHops = hops
	return newExt
}

// PitcherPatterns overrides the phrase patterns used to detect pitching
// changes and announcements.
func (e *Extractor) PitcherPatterns(patterns pitching.Patterns) *Extractor {
	newExt := e.clone()
	newExt.options.pitcherPatterns = patterns
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Game runs the extraction and returns the complete record streams.
// The Extractor is closed before returning.
func (e *Extractor) Game() (*model.Game, error) {
	defer e.Close()

	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}

	return e.assemble(e.reader), nil
}

// AtBats runs the extraction and returns only the at-bat stream.
func (e *Extractor) AtBats() ([]model.AtBat, error) {
	game, err := e.Game()
	if err != nil {
		return nil, err
	}
	return game.AtBats, nil
}

// Pitches runs the extraction and returns only the pitch stream.
func (e *Extractor) Pitches() ([]model.Pitch, error) {
	game, err := e.Game()
	if err != nil {
		return nil, err
	}
	return game.Pitches, nil
}

// Changes runs the extraction and returns only the pitching changes.
func (e *Extractor) Changes() ([]model.PitchingChange, error) {
	game, err := e.Game()
	if err != nil {
		return nil, err
	}
	return game.Changes, nil
}

// assemble is the record assembler: one strict forward pass over the
// plays in document order. No component ever depends on a later play's
// output, and the tracker is the only mutable state.
func (e *Extractor) assemble(reader *pbpdoc.Reader) *model.Game {
	away, home := reader.Teams()
	if e.options.awayTeam != "" {
		away = e.options.awayTeam
	}
	if e.options.homeTeam != "" {
		home = e.options.homeTeam
	}

	game := model.NewGame(away, home)
	resolver := innings.NewResolverWithConfig(away, home, e.options.resolver)
	tracker := pitching.NewTrackerWithPatterns(e.options.pitcherPatterns)

	for _, play := range reader.Plays() {
		ctx := resolver.Resolve(play.Node())
		description := play.Description()
		awayScore, homeScore := play.Scores()

		key := pitching.Key{Inning: ctx.Inning, Half: ctx.Half}
		pitcher, change := tracker.Observe(key, description)

		events := pitches.Extract(play.Body())
		for i := range events {
			events[i].AtBatKey = play.Key
			events[i].Inning = ctx.Inning
			events[i].Half = ctx.Half
			events[i].Team = ctx.Team
			events[i].Pitcher = pitcher
		}

		game.AtBats = append(game.AtBats, model.AtBat{
			Key:           play.Key,
			Inning:        ctx.Inning,
			Half:          ctx.Half,
			Team:          ctx.Team,
			Pitcher:       pitcher,
			Description:   description,
			AwayScore:     awayScore,
			HomeScore:     homeScore,
			PitchSequence: pitchSummary(events),
		})
		game.Pitches = append(game.Pitches, events...)

		if change != nil {
			game.Changes = append(game.Changes, model.PitchingChange{
				AtBatKey:    play.Key,
				Inning:      ctx.Inning,
				Half:        ctx.Half,
				Team:        ctx.Team,
				Incoming:    change.Incoming,
				Outgoing:    change.Outgoing,
				Description: description,
			})
		}
	}

	return game
}

// pitchSummary renders the pre-formatted pitch sequence for an at-bat,
// e.g. "P1: Ball, P2: Called Strike".
func pitchSummary(events []model.Pitch) string {
	if len(events) == 0 {
		return ""
	}
	parts := make([]string, len(events))
	for i, p := range events {
		parts[i] = fmt.Sprintf("%s: %s", p.Tag(), p.Result)
	}
	return strings.Join(parts, ", ")
}
