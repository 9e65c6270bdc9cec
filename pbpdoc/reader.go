package pbpdoc

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors holds the CSS class conventions used to locate plays and their
// parts. The set is fixed at construction; readers never modify it.
type Selectors struct {
	// PlayHeader matches the clickable header of each play accordion.
	PlayHeader string
	// PlayBody matches the expandable body holding a play's pitch table.
	PlayBody string
	// Description matches the play description element within a header.
	Description string
	// AwayScore and HomeScore match the inline score indicators.
	AwayScore string
	HomeScore string
	// Scoreboard and ScoreboardTeam locate the fallback team names when
	// the og:title meta tag is absent.
	Scoreboard     string
	ScoreboardTeam string
	// BodyIDSuffix is the naming convention linking a header id to its
	// body id when no aria relationship is present.
	BodyIDSuffix string
}

// DefaultSelectors returns the class conventions the live feed uses.
func DefaultSelectors() Selectors {
	return Selectors{
		PlayHeader:     "button.AtBatAccordion__header, .AtBatAccordion > button",
		PlayBody:       "div.Collapse.AtBatAccordion__body",
		Description:    ".PlayHeader__description",
		AwayScore:      ".PlayHeader__score--away",
		HomeScore:      ".PlayHeader__score--home",
		Scoreboard:     `[data-analytics="scoreboard"], .Scoreboard`,
		ScoreboardTeam: ".ScoreCell__TeamName, .ScoreCell__Abbrev",
		BodyIDSuffix:   "-pitches",
	}
}

// ogTitlePattern extracts "Away vs. Home" from the og:title meta content.
var ogTitlePattern = regexp.MustCompile(`^(.*?) vs\. (.*?) -`)

// Reader provides access to the plays of one parsed document.
type Reader struct {
	doc       *goquery.Document
	selectors Selectors
	awayTeam  string
	homeTeam  string
	plays     []*Play
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader using the default selectors.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithSelectors(r, DefaultSelectors())
}

// OpenReaderWithSelectors parses HTML from an io.Reader using custom
// selectors. Parsing is lenient; only an unreadable stream fails.
func OpenReaderWithSelectors(r io.Reader, selectors Selectors) (*Reader, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:       doc,
		selectors: selectors,
	}
	reader.resolveTeams()
	reader.discoverPlays()

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing held open; the document lives on the heap.
	return nil
}

// Teams returns the away and home team names resolved from page metadata.
// Either may be empty when the page carries no usable metadata.
func (r *Reader) Teams() (away, home string) {
	return r.awayTeam, r.homeTeam
}

// Plays returns every discovered play container in document order.
func (r *Reader) Plays() []*Play {
	return r.plays
}

// resolveTeams recovers the matchup from the og:title meta tag, falling
// back to the scoreboard cells.
func (r *Reader) resolveTeams() {
	content, ok := r.doc.Find(`meta[property="og:title"]`).Attr("content")
	if ok {
		if m := ogTitlePattern.FindStringSubmatch(content); m != nil {
			r.awayTeam = strings.TrimSpace(m[1])
			r.homeTeam = strings.TrimSpace(m[2])
			return
		}
	}

	scoreboard := r.doc.Find(r.selectors.Scoreboard).First()
	if scoreboard.Length() == 0 {
		return
	}
	var names []string
	scoreboard.Find(r.selectors.ScoreboardTeam).Each(func(_ int, s *goquery.Selection) {
		if name := CollapseSpace(s.Text()); name != "" {
			names = append(names, name)
		}
	})
	if len(names) >= 2 {
		r.awayTeam = names[0]
		r.homeTeam = names[1]
	}
}

// discoverPlays scans the document once for play headers, then joins each
// header to its detail body through the aria attributes or the id suffix
// convention.
func (r *Reader) discoverPlays() {
	byKey := make(map[string]*Play)

	r.doc.Find(r.selectors.PlayHeader).Each(func(_ int, header *goquery.Selection) {
		key, ok := header.Attr("id")
		if !ok || key == "" {
			// Headers without a stable identifier cannot anchor records.
			return
		}
		if _, dup := byKey[key]; dup {
			return
		}

		play := &Play{
			Key:       key,
			header:    header,
			selectors: r.selectors,
		}
		play.BodyID, _ = header.Attr("aria-controls")
		play.item = header.Closest("li")

		byKey[key] = play
		r.plays = append(r.plays, play)
	})

	bodiesByID := make(map[string]*goquery.Selection)
	r.doc.Find(r.selectors.PlayBody).Each(func(_ int, body *goquery.Selection) {
		id, _ := body.Attr("id")
		if labeledBy, ok := body.Attr("aria-labelledby"); ok {
			if play, found := byKey[labeledBy]; found && play.body == nil {
				play.body = body
				if play.BodyID == "" {
					play.BodyID = id
				}
				return
			}
		}
		if id != "" {
			bodiesByID[id] = body
		}
	})

	for _, play := range r.plays {
		if play.body != nil {
			continue
		}
		if play.BodyID != "" {
			if body, ok := bodiesByID[play.BodyID]; ok {
				play.body = body
				continue
			}
		}
		if body, ok := bodiesByID[play.Key+r.selectors.BodyIDSuffix]; ok {
			play.body = body
			play.BodyID = play.Key + r.selectors.BodyIDSuffix
		}
	}
}
