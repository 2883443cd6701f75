// Package pinyin validates tone-marked pinyin and reads tones from it.
package pinyin

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tone represents the four tones of Mandarin plus neutral tone.
type Tone int

const (
	ToneUnknown Tone = 0
	Tone1       Tone = 1 // ˉ
	Tone2       Tone = 2 // ˊ
	Tone3       Tone = 3 // ˇ
	Tone4       Tone = 4 // ˋ
	Tone5       Tone = 5 // neutral
)

type toneMark struct {
	base rune
	tone Tone
}

// toneMarks is the closed set of tone-marked letters accepted in pinyin.
var toneMarks = map[rune]toneMark{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
	'ń': {'n', Tone2}, 'ň': {'n', Tone3}, 'ǹ': {'n', Tone4},
}

// Letters lists every non-ASCII rune accepted in pinyin, ü included.
const Letters = "üÜāáǎàēéěèīíǐìōóǒòūúǔùǖǘǚǜńňǹ"

var pattern = regexp.MustCompile(`^[a-zA-Z` + Letters + `]+$`)

// Valid reports whether s is non-empty and made only of ASCII letters and
// the accepted tone-marked letters.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Allowed reports whether r may appear in pinyin.
func Allowed(r rune) bool {
	if r <= unicode.MaxASCII {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return strings.ContainsRune(Letters, r)
}

// UnknownToneMarks returns the runes of s that look like tone-marked latin
// letters but fall outside the accepted set, e.g. "ḿ" or "ê". Standalone
// combining marks are reported too. Each rune is listed once, in order of
// first appearance.
func UnknownToneMarks(s string) []rune {
	var found []rune
	seen := make(map[rune]bool)

	for _, r := range s {
		if Allowed(r) || seen[r] {
			continue
		}
		if unicode.Is(unicode.Mn, r) || isMarkedLatin(r) {
			seen[r] = true
			found = append(found, r)
		}
	}

	return found
}

// isMarkedLatin reports whether r decomposes into an ASCII letter followed
// only by combining marks.
func isMarkedLatin(r rune) bool {
	decomposed := []rune(norm.NFD.String(string(r)))
	if len(decomposed) < 2 {
		return false
	}

	base := unicode.ToLower(decomposed[0])
	if base < 'a' || base > 'z' {
		return false
	}

	for _, c := range decomposed[1:] {
		if !unicode.Is(unicode.Mn, c) {
			return false
		}
	}
	return true
}

// ToneOf returns the tone of a syllable from its tone mark. Syllables
// without a mark are neutral (Tone5).
func ToneOf(syllable string) Tone {
	for _, r := range syllable {
		if mark, ok := toneMarks[r]; ok {
			return mark.tone
		}
	}
	return Tone5
}
