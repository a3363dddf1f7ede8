package translate

import "strings"

// Phonetic romanization scheme for Bengali, a pragmatic lowercase subset of
// ITRANS. Digraphs sit before single letters so the scanner can take the
// longest match first.

type vowelSign struct {
	roman       string
	independent string // word-initial or after another vowel
	matra       string // after a consonant; "a" is inherent and has none
}

var vowels = []vowelSign{
	{"aa", "আ", "া"}, // আ / া
	{"ai", "ঐ", "ৈ"}, // ঐ / ৈ
	{"au", "ঔ", "ৌ"}, // ঔ / ৌ
	{"ee", "ঈ", "ী"}, // ঈ / ী
	{"ii", "ঈ", "ী"},
	{"oi", "ঐ", "ৈ"},
	{"oo", "ঊ", "ূ"}, // ঊ / ূ
	{"ou", "ঔ", "ৌ"},
	{"uu", "ঊ", "ূ"},
	{"a", "অ", ""},        // অ, inherent
	{"e", "এ", "ে"},  // এ / ে
	{"i", "ই", "ি"},  // ই / ি
	{"o", "ও", "ো"},  // ও / ো
	{"u", "উ", "ু"},  // উ / ু
}

var consonants = []struct{ roman, bengali string }{
	{"chh", "ছ"}, // ছ
	{"bh", "ভ"},  // ভ
	{"ch", "চ"},  // চ
	{"dh", "ধ"},  // ধ
	{"gh", "ঘ"},  // ঘ
	{"jh", "ঝ"},  // ঝ
	{"kh", "খ"},  // খ
	{"ng", "ং"},  // ং
	{"ph", "ফ"},  // ফ
	{"sh", "শ"},  // শ
	{"th", "থ"},  // থ
	{"b", "ব"},   // ব
	{"c", "চ"},   // চ
	{"d", "দ"},   // দ
	{"f", "ফ"},   // ফ
	{"g", "গ"},   // গ
	{"h", "হ"},   // হ
	{"j", "জ"},   // জ
	{"k", "ক"},   // ক
	{"l", "ল"},   // ল
	{"m", "ম"},   // ম
	{"n", "ন"},   // ন
	{"p", "প"},   // প
	{"q", "ক"},   // ক
	{"r", "র"},   // র
	{"s", "স"},   // স
	{"t", "ত"},   // ত
	{"v", "ভ"},   // ভ
	{"w", "ও"},   // ও
	{"x", "ক্স"}, // ক্স
	{"y", "য়"},   // য়
	{"z", "জ"},   // জ
}

// phoneticWord renders one lowercase Latin word in Bengali script.
// Unrecognized bytes (punctuation, digits) pass through verbatim.
func phoneticWord(word string) string {
	var b strings.Builder
	afterConsonant := false
	for i := 0; i < len(word); {
		if bengali, n := matchConsonant(word[i:]); n > 0 {
			b.WriteString(bengali)
			i += n
			afterConsonant = true
			continue
		}
		if v, n := matchVowel(word[i:]); n > 0 {
			if afterConsonant {
				b.WriteString(v.matra)
			} else {
				b.WriteString(v.independent)
			}
			i += n
			afterConsonant = false
			continue
		}
		b.WriteByte(word[i])
		i++
		afterConsonant = false
	}
	return b.String()
}

func matchConsonant(s string) (string, int) {
	for _, c := range consonants {
		if strings.HasPrefix(s, c.roman) {
			return c.bengali, len(c.roman)
		}
	}
	return "", 0
}

func matchVowel(s string) (vowelSign, int) {
	for _, v := range vowels {
		if strings.HasPrefix(s, v.roman) {
			return v, len(v.roman)
		}
	}
	return vowelSign{}, 0
}
