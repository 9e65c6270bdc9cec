package innings

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/dugout/model"
	"github.com/tsawler/dugout/pbpdoc"
)

// Patterns holds the compiled phrasing conventions for inning headings.
// A Patterns value is fixed at resolver construction and never mutated.
type Patterns struct {
	// Half matches the half-inning word.
	Half *regexp.Regexp
	// Ordinal matches the inning ordinal ("3rd", "10th").
	Ordinal *regexp.Regexp
	// TeamSuffix captures a team name trailing a dash or en-dash.
	TeamSuffix *regexp.Regexp
	// HeadingClasses are class names that mark an inning heading element.
	HeadingClasses []string
	// HeadingTags are the tags checked as direct heading children of
	// ancestors.
	HeadingTags []string
}

// DefaultPatterns returns the phrasing conventions the live feed uses.
func DefaultPatterns() Patterns {
	return Patterns{
		Half:           regexp.MustCompile(`(?i)\b(Top|Bottom)\b`),
		Ordinal:        regexp.MustCompile(`\b(\d{1,2}(?:st|nd|rd|th))\b`),
		TeamSuffix:     regexp.MustCompile(`[–-]\s*([A-Za-z.\s-]{2,})$`),
		HeadingClasses: []string{"InningHeader", "Accordion__header"},
		HeadingTags:    []string{"h1", "h2", "h3", "header"},
	}
}

// DefaultMaxHops bounds the combined sibling/ancestor search. Real feeds
// resolve within a handful of hops; the cap only matters on adversarial
// trees.
const DefaultMaxHops = 64

// ordinals maps inning ordinals to numbers. Eighteen innings covers every
// feed observed; anything longer resolves as unknown.
var ordinals = map[string]int{
	"1st": 1, "2nd": 2, "3rd": 3, "4th": 4, "5th": 5, "6th": 6,
	"7th": 7, "8th": 8, "9th": 9, "10th": 10, "11th": 11, "12th": 12,
	"13th": 13, "14th": 14, "15th": 15, "16th": 16, "17th": 17, "18th": 18,
}

// Config bundles resolver construction parameters.
type Config struct {
	Patterns Patterns
	MaxHops  int
}

// DefaultConfig returns the default patterns and hop budget.
func DefaultConfig() Config {
	return Config{
		Patterns: DefaultPatterns(),
		MaxHops:  DefaultMaxHops,
	}
}

// Resolver derives the inning context for play nodes. The away and home
// team names, resolved once per document from page metadata, supply the
// default batting team when a heading names none.
type Resolver struct {
	patterns Patterns
	maxHops  int
	awayTeam string
	homeTeam string
	titler   cases.Caser
}

// NewResolver creates a resolver with default configuration.
func NewResolver(awayTeam, homeTeam string) *Resolver {
	return NewResolverWithConfig(awayTeam, homeTeam, DefaultConfig())
}

// NewResolverWithConfig creates a resolver with custom patterns or hop
// budget. A non-positive MaxHops falls back to the default.
func NewResolverWithConfig(awayTeam, homeTeam string, cfg Config) *Resolver {
	maxHops := cfg.MaxHops
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	return &Resolver{
		patterns: cfg.Patterns,
		maxHops:  maxHops,
		awayTeam: awayTeam,
		homeTeam: homeTeam,
		titler:   cases.Title(language.English),
	}
}

// Resolve finds the nearest heading stating the play's inning context and
// parses it. Preceding siblings are checked before ancestors, so the
// nearest document-order match wins. When the hop budget is exhausted or
// nothing matches, the sentinel context is returned.
func (r *Resolver) Resolve(node *html.Node) model.InningContext {
	if node == nil {
		return model.InningContext{Team: model.UnknownTeam}
	}

	if text := r.nearestHeadingText(node); text != "" {
		return r.parseHeading(text)
	}
	return model.InningContext{Team: model.UnknownTeam}
}

// nearestHeadingText performs the bounded backward walk: preceding
// siblings first, then each ancestor's direct heading children.
func (r *Resolver) nearestHeadingText(node *html.Node) string {
	hops := r.maxHops

	for sib := node.PrevSibling; sib != nil && hops > 0; sib = sib.PrevSibling {
		hops--
		if sib.Type != html.ElementNode {
			continue
		}
		text := pbpdoc.TextContent(sib)
		if r.isInningHeading(text) {
			return text
		}
		if pbpdoc.FindByClass(sib, r.patterns.HeadingClasses...) != nil && text != "" {
			return text
		}
	}

	for parent := node.Parent; parent != nil && hops > 0; parent = parent.Parent {
		hops--
		for _, h := range pbpdoc.DirectChildren(parent, r.patterns.HeadingTags...) {
			text := pbpdoc.TextContent(h)
			if r.isInningHeading(text) {
				return text
			}
		}
		for _, c := range pbpdoc.DirectChildren(parent) {
			if pbpdoc.HasAnyClass(c, r.patterns.HeadingClasses...) {
				if text := pbpdoc.TextContent(c); text != "" {
					return text
				}
			}
		}
	}

	return ""
}

// isInningHeading reports whether text states both a half and an ordinal.
func (r *Resolver) isInningHeading(text string) bool {
	return r.patterns.Half.MatchString(text) && r.patterns.Ordinal.MatchString(text)
}

// parseHeading extracts (inning, half, team) from heading text. Fields
// that cannot be recovered degrade to their sentinels.
func (r *Resolver) parseHeading(text string) model.InningContext {
	ctx := model.InningContext{}

	if m := r.patterns.Half.FindStringSubmatch(text); m != nil {
		ctx.Half = model.ParseHalf(r.titler.String(m[1]))
	}
	if m := r.patterns.Ordinal.FindStringSubmatch(text); m != nil {
		ctx.Inning = ordinals[strings.ToLower(m[1])]
	}
	if m := r.patterns.TeamSuffix.FindStringSubmatch(text); m != nil {
		ctx.Team = strings.TrimSpace(m[1])
	}

	if ctx.Team == "" {
		switch ctx.Half {
		case model.HalfTop:
			ctx.Team = r.awayTeam
		case model.HalfBottom:
			ctx.Team = r.homeTeam
		}
	}
	if ctx.Team == "" {
		ctx.Team = model.UnknownTeam
	}

	return ctx
}
