// Package dugout extracts structured play-by-play records from a baseball
// game's live commentary HTML.
//
// Basic usage:
//
//	game, err := dugout.Open("game.html").Game()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(len(game.AtBats), "at-bats,", len(game.Pitches), "pitches")
//
// With options:
//
//	game, err := dugout.Open("game.html").
//	    Teams("TOR", "NYY").
//	    Game()
//
// The engine makes a single forward pass over the document: for every play
// container, in document order, it resolves the inning context, reads the
// description and inline scores, updates pitcher attribution, and extracts
// the nested pitch table. The result is a [model.Game] holding three
// ordered record streams ready for tabular export.
//
// For advanced use cases, the lower-level pbpdoc, innings, pitches, and
// pitching packages are also available.
package dugout

import (
	"strings"

	"github.com/tsawler/dugout/pbpdoc"
)

// Open opens a play-by-play HTML file and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done, either
// explicitly via Close() or implicitly when calling a terminal operation
// like Game().
//
// Example:
//
//	game, err := dugout.Open("game.html").Game()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromHTML creates an Extractor over an already-fetched markup string,
// e.g. the output of the fetch package's renderer.
//
// Example:
//
//	game, err := dugout.FromHTML(html).Game()
func FromHTML(src string) *Extractor {
	return &Extractor{
		raw:     src,
		hasRaw:  true,
		options: defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened pbpdoc.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := pbpdoc.Open("game.html")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	game, err := dugout.FromReader(r).Game()
func FromReader(r *pbpdoc.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	game := dugout.Must(dugout.Open("game.html").Game())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// newRawReader parses a raw markup string with the configured selectors.
func newRawReader(src string, selectors pbpdoc.Selectors) (*pbpdoc.Reader, error) {
	return pbpdoc.OpenReaderWithSelectors(strings.NewReader(src), selectors)
}
