package util

import (
	"regexp"
	"strings"
)

var (
	nonAlphaNum = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	nonDotID    = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	recordChars = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		`{`, `\{`,
		`}`, `\}`,
		`|`, `\|`,
		`<`, `\<`,
		`>`, `\>`,
	)
)

// SanitizeID converts a string into a valid D2 identifier.
// D2 identifiers must be alphanumeric with hyphens/underscores.
func SanitizeID(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, ".", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = nonAlphaNum.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// DotID converts a device name into a Graphviz ID. Anything outside
// [A-Za-z0-9_] becomes an underscore, so r1.ams-nl becomes r1_ams_nl.
// IDs may not start with a digit.
func DotID(s string) string {
	s = nonDotID.ReplaceAllString(s, "_")
	if s == "" {
		return "_"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

// RecordLabel escapes text for use inside a Graphviz record label.
func RecordLabel(s string) string {
	return recordChars.Replace(s)
}

// Quote wraps a string in double quotes for D2 labels.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
