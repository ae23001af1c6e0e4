package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuneLen counts characters, not bytes, so "á" and "a" weigh the same
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsAllLower reports whether s is non-empty and every rune is a lowercase letter.
// Digits, spaces and punctuation make it false.
func IsAllLower(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidTerm checks if input can be stored as a single line of state.
// Empty terms and terms with line breaks are rejected.
func IsValidTerm(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r == '\n' || r == '\r' {
			return false
		}
	}
	return true
}

// FoldCase maps every rune to the smallest member of its simple case
// folding orbit, so "Σ", "σ" and "ς" fold alike. Rune counts are unchanged.
func FoldCase(s string) string {
	return strings.Map(foldRune, s)
}

func foldRune(r rune) rune {
	folded := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		folded = min(folded, f)
	}
	return folded
}
