// Package format holds the shared date and text helpers used by the
// dashboard read models and API responses.
package format

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// ParseDate parses the date strings the store hands back: RFC 3339
// timestamps on objects, plain YYYY-MM-DD on date metafields.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date string as "January 2006". Empty input stays
// empty and unparseable input is returned unchanged; it never fails.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("January 2006")
}

// FormatDateRange renders "start - end", with "Present" standing in for a
// missing end date.
func FormatDateRange(start, end string) string {
	if end == "" {
		return FormatDate(start) + " - Present"
	}
	return FormatDate(start) + " - " + FormatDate(end)
}

// TruncateText hard-cuts text at maxLength runes, trims trailing
// whitespace, and appends an ellipsis. Text already within the limit is
// returned unchanged.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace) + "..."
}

// CalculateYearsFromDate returns the number of full years elapsed between
// start and end, using today when end is empty. The count is decremented
// when the end month/day falls before the start's within the final year.
func CalculateYearsFromDate(start, end string) int {
	s, ok := ParseDate(start)
	if !ok {
		return 0
	}
	e := time.Now()
	if end != "" {
		if parsed, ok := ParseDate(end); ok {
			e = parsed
		}
	}

	years := e.Year() - s.Year()
	if e.Month() < s.Month() || (e.Month() == s.Month() && e.Day() < s.Day()) {
		years--
	}
	return years
}

// CapitalizeFirst upper-cases the first rune of text.
func CapitalizeFirst(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// GenerateSlug lowercases text and reduces it to hyphen-separated
// alphanumeric segments.
func GenerateSlug(text string) string {
	s := strings.ToLower(text)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return s
}

// ImageURL builds an imgix delivery URL, preferring the imgix host over
// the raw origin and always requesting format/compress optimization.
// size is a raw imgix query fragment like "w=400&h=200&fit=crop".
func ImageURL(rawURL, imgixURL, size string) string {
	base := imgixURL
	if base == "" {
		base = rawURL
	}
	if base == "" {
		return ""
	}
	if size == "" {
		return base + "?auto=format,compress"
	}
	return base + "?" + size + "&auto=format,compress"
}

// ValidateURL reports whether s is an absolute URL.
func ValidateURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
