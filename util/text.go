// Package util - search text normalization
//
//revive:disable-next-line:var-naming
package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearchTerm trims and lowercases a user supplied search term
func NormalizeSearchTerm(term string, foldAccents bool) string {
	return FoldText(strings.TrimSpace(term), foldAccents)
}

// FoldText lowercases s and, when foldAccents is set, strips diacritics so that
// "interrupcion" matches "Interrupción".
func FoldText(s string, foldAccents bool) string {
	// cases.Caser is stateful, so build one per call.
	s = cases.Lower(language.Und).String(s)
	if !foldAccents {
		return s
	}
	return StripAccents(s)
}

// StripAccents removes combining marks after canonical decomposition
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return res
}
