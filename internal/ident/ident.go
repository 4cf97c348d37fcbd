// Package ident checks identifier-name validity for the target language.
package ident

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IsValid reports whether s is a lexically valid identifier: a start
// character followed by part characters. Input is NFC-normalized first so
// that decomposed sequences are judged on their composed form.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	first := true
	for _, r := range norm.NFC.String(s) {
		if first {
			if !isStart(r) {
				return false
			}
			first = false
			continue
		}
		if !isPart(r) {
			return false
		}
	}
	return true
}

// isStart mirrors the target language's identifier-start class: letters,
// letter numerals, currency symbols, and connector punctuation.
func isStart(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Sc, r) ||
		unicode.Is(unicode.Pc, r)
}

// isPart adds decimal digits, combining marks, and format characters.
func isPart(r rune) bool {
	return isStart(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Cf, r)
}
