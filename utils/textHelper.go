package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases, strips everything that is not a letter, digit or
// space, and collapses whitespace runs. It is the shared normalization for
// fingerprints and search matching, so both sides drift-tolerate the same
// way.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SquashText is NormalizeText with the remaining spaces removed, e.g.
// "Denon AVR-X1800H" -> "denonavrx1800h".
func SquashText(s string) string {
	return strings.ReplaceAll(NormalizeText(s), " ", "")
}
