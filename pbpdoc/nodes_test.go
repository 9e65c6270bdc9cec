package pbpdoc

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestTextContent(t *testing.T) {
	doc := parseFragment(t, `<div><span>Top</span><span>1st</span><script>ignored()</script></div>`)
	div := findTag(doc, "div")

	if got := TextContent(div); got != "Top 1st" {
		t.Errorf("TextContent() = %q, want %q", got, "Top 1st")
	}
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  a   b\n\tc ", "a b c"},
		{"", ""},
		{"one", "one"},
	}
	for _, tt := range tests {
		if got := CollapseSpace(tt.in); got != tt.want {
			t.Errorf("CollapseSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasAnyClass(t *testing.T) {
	doc := parseFragment(t, `<div class="Collapse AtBatAccordion__body extra"></div>`)
	div := findTag(doc, "div")

	if !HasAnyClass(div, "AtBatAccordion__body") {
		t.Error("expected class match")
	}
	if !HasAnyClass(div, "nope", "extra") {
		t.Error("expected match on any of several classes")
	}
	if HasAnyClass(div, "AtBat") {
		t.Error("partial class names must not match")
	}
}

func TestFindByClass(t *testing.T) {
	doc := parseFragment(t, `<div><p><em class="InningHeader">Top 4th</em></p></div>`)
	div := findTag(doc, "div")

	found := FindByClass(div, "InningHeader", "Accordion__header")
	if found == nil {
		t.Fatal("FindByClass() returned nil")
	}
	if found.Data != "em" {
		t.Errorf("found %q element, want em", found.Data)
	}

	if FindByClass(div, "absent") != nil {
		t.Error("FindByClass() should return nil for absent class")
	}
}

func TestDirectChildren(t *testing.T) {
	doc := parseFragment(t, `<section><h2>A</h2><p>B</p><h3>C</h3><div><h2>nested</h2></div></section>`)
	section := findTag(doc, "section")

	headings := DirectChildren(section, "h1", "h2", "h3")
	if len(headings) != 2 {
		t.Fatalf("DirectChildren() returned %d headings, want 2 (nested ones excluded)", len(headings))
	}
	if headings[0].Data != "h2" || headings[1].Data != "h3" {
		t.Errorf("headings = %q,%q; want h2,h3", headings[0].Data, headings[1].Data)
	}

	all := DirectChildren(section)
	if len(all) != 4 {
		t.Errorf("DirectChildren() with no filter returned %d, want 4", len(all))
	}
}

func TestAttr(t *testing.T) {
	doc := parseFragment(t, `<button id="play9" aria-controls="play9-pitches">x</button>`)
	btn := findTag(doc, "button")

	if got := Attr(btn, "aria-controls"); got != "play9-pitches" {
		t.Errorf("Attr() = %q, want play9-pitches", got)
	}
	if got := Attr(btn, "missing"); got != "" {
		t.Errorf("Attr() for missing key = %q, want empty", got)
	}
}
