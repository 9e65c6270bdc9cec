package pbpdoc

import (
	"strings"

	"golang.org/x/net/html"
)

// TextContent extracts all text from a node and its descendants, skipping
// script/style content and separating block-level elements with spaces.
func TextContent(n *html.Node) string {
	var result strings.Builder
	textContentRecursive(n, &result)
	return CollapseSpace(result.String())
}

func textContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, result)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "td", "th", "span", "button", "header":
			result.WriteString(" ")
		}
	}
}

// shouldSkipElement reports whether an element's content is never part of
// the visible feed text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// CollapseSpace trims a string and collapses internal whitespace runs to
// single spaces.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasAnyClass reports whether the node carries at least one of the given
// class names.
func HasAnyClass(n *html.Node, classes ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, have := range strings.Fields(Attr(n, "class")) {
		for _, want := range classes {
			if have == want {
				return true
			}
		}
	}
	return false
}

// FindByClass returns the first descendant (or the node itself) carrying
// any of the given class names, or nil.
func FindByClass(n *html.Node, classes ...string) *html.Node {
	if HasAnyClass(n, classes...) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByClass(c, classes...); found != nil {
			return found
		}
	}
	return nil
}

// DirectChildren returns the node's element children limited to the given
// tag names; with no names given, all element children are returned.
func DirectChildren(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if len(tags) == 0 {
			out = append(out, c)
			continue
		}
		for _, tag := range tags {
			if c.Data == tag {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
