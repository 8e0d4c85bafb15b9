// Package sanitize normalizes contact-form fields: it strips markup and
// collapses excess whitespace. All functions are pure.
//
// Tag stripping is regex-based, not a DOM parse; malformed markup is removed
// on a best-effort basis only. Validation rejects dangerous content before
// sanitization runs, so this layer is normalization, not the security boundary.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	newlineRunRe  = regexp.MustCompile(`\n{3,}`)
	phoneCharRe   = regexp.MustCompile(`[^0-9+\s\-()]`)
)

// stripHTML removes <script> blocks including their content, then any
// remaining <...> tags.
func stripHTML(s string) string {
	s = scriptBlockRe.ReplaceAllString(s, "")
	return htmlTagRe.ReplaceAllString(s, "")
}

// Name strips HTML tags, collapses whitespace runs to single spaces and trims.
func Name(s string) string {
	s = stripHTML(strings.TrimSpace(s))
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Email strips HTML tags, trims and lower-cases. Idempotent.
func Email(s string) string {
	return stripHTML(strings.ToLower(strings.TrimSpace(s)))
}

// Phone strips HTML tags, trims, then drops every character outside the set
// of digits, '+', spaces, dashes and parentheses.
func Phone(s string) string {
	s = stripHTML(strings.TrimSpace(s))
	return phoneCharRe.ReplaceAllString(s, "")
}

// Message strips HTML tags and trims, collapses runs of spaces and tabs to a
// single space while preserving newlines, and collapses three or more
// consecutive newlines to exactly two.
func Message(s string) string {
	s = stripHTML(strings.TrimSpace(s))
	s = spaceRunRe.ReplaceAllString(s, " ")
	return newlineRunRe.ReplaceAllString(s, "\n\n")
}
