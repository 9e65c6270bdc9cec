package fetch

import "strings"

// Source represents the kind of input handed to Fetch.
type Source int

const (
	// SourceFile indicates a local file path.
	SourceFile Source = iota
	// SourceURL indicates an HTTP or HTTPS locator.
	SourceURL
	// SourceMarkup indicates raw markup passed directly.
	SourceMarkup
)

// String returns the string representation of the source kind.
func (s Source) String() string {
	switch s {
	case SourceURL:
		return "url"
	case SourceMarkup:
		return "markup"
	default:
		return "file"
	}
}

// DetectSource classifies an input string. Anything that is neither a URL
// nor recognizable markup is treated as a file path.
func DetectSource(src string) Source {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return SourceURL
	}
	if looksLikeMarkup(src) {
		return SourceMarkup
	}
	return SourceFile
}

// looksLikeMarkup checks for common HTML signatures at the start of the
// string.
func looksLikeMarkup(src string) bool {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return false
	}
	upper := strings.ToUpper(trimmed)
	switch {
	case strings.HasPrefix(upper, "<!DOCTYPE"):
		return true
	case strings.HasPrefix(upper, "<HTML"):
		return true
	case strings.HasPrefix(upper, "<?XML"):
		return true
	}
	return false
}
