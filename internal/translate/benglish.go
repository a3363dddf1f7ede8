package translate

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// IsBenglish reports whether text is plausibly Bengali written in Latin
// script: only Latin letters, whitespace and non-word punctuation. Digits,
// underscores and any non-Latin letter (Bengali script included)
// disqualify it, so already-transliterated text passes through untouched.
func IsBenglish(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if script := whatlanggo.DetectScript(text); script == unicode.Bengali {
		return false
	}
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case unicode.IsSpace(r):
		case r == '_' || unicode.IsDigit(r) || unicode.IsLetter(r):
			return false
		}
	}
	return true
}
