package pbpdoc

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Play is one contiguous region of the document representing a single
// plate appearance or game event. Plays are immutable once discovered.
type Play struct {
	// Key is the play's stable identifier from the header element.
	Key string
	// BodyID is the id of the detail body, when one could be linked.
	BodyID string

	header    *goquery.Selection
	item      *goquery.Selection // enclosing list item, when present
	body      *goquery.Selection // nil when the feed never loaded the details
	selectors Selectors
}

// Node returns the DOM node anchoring this play for context searches: the
// enclosing list item when one exists, otherwise the header itself.
func (p *Play) Node() *html.Node {
	if p.item != nil && p.item.Length() > 0 {
		return p.item.Nodes[0]
	}
	if p.header.Length() > 0 {
		return p.header.Nodes[0]
	}
	return nil
}

// HasBody reports whether a pitch-detail body was linked to this play.
func (p *Play) HasBody() bool {
	return p.body != nil && p.body.Length() > 0
}

// Body returns the pitch-detail body, or nil when none was linked.
func (p *Play) Body() *goquery.Selection {
	if !p.HasBody() {
		return nil
	}
	return p.body
}

// Description returns the play's description text from the designated
// description element, falling back to the full header text.
func (p *Play) Description() string {
	if desc := CollapseSpace(p.header.Find(p.selectors.Description).First().Text()); desc != "" {
		return desc
	}
	return CollapseSpace(p.header.Text())
}

// Scores returns the inline away and home run totals shown on the play
// header. Absent or non-numeric indicators yield nil.
func (p *Play) Scores() (away, home *int) {
	return p.scoreFrom(p.selectors.AwayScore), p.scoreFrom(p.selectors.HomeScore)
}

func (p *Play) scoreFrom(selector string) *int {
	text := CollapseSpace(p.header.Find(selector).First().Text())
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &n
}
