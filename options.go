package dugout

import (
	"github.com/tsawler/dugout/innings"
	"github.com/tsawler/dugout/pbpdoc"
	"github.com/tsawler/dugout/pitching"
)

// ExtractOptions holds configuration for an extraction run. All pattern
// and selector tables are immutable data handed to the components at
// construction; nothing here changes mid-run.
type ExtractOptions struct {
	selectors       pbpdoc.Selectors
	resolver        innings.Config
	pitcherPatterns pitching.Patterns

	// Team name overrides for documents with missing or mangled
	// metadata; empty means use what the page provides.
	awayTeam string
	homeTeam string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		selectors:       pbpdoc.DefaultSelectors(),
		resolver:        innings.DefaultConfig(),
		pitcherPatterns: pitching.DefaultPatterns(),
	}
}

// clone creates a copy of ExtractOptions. The contained pattern tables are
// never mutated, so sharing them between copies is safe.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		selectors:       o.selectors,
		resolver:        o.resolver,
		pitcherPatterns: o.pitcherPatterns,
		awayTeam:        o.awayTeam,
		homeTeam:        o.homeTeam,
	}
}
