// Package extract turns document tables into validated char items.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/f3rmion/chartable/internal/chartable"
	"github.com/f3rmion/chartable/internal/pinyin"
)

var wrappedInParens = regexp.MustCompile(`^\((.*)\)$`)

var fullWidthParens = strings.NewReplacer("（", "(", "）", ")")

// ParseTriple validates a (hanzi, pinyin, words) candidate. It accepts the
// triple only if the trimmed hanzi is a single character and the trimmed
// pinyin is valid.
func ParseTriple(hanzi, py, words string) (chartable.CharItem, bool) {
	h := strings.TrimSpace(hanzi)
	p := strings.TrimSpace(py)

	if utf8.RuneCountInString(h) != 1 {
		return chartable.CharItem{}, false
	}
	if !pinyin.Valid(p) {
		return chartable.CharItem{}, false
	}

	return chartable.CharItem{
		Hanzi:  h,
		Pinyin: p,
		Words:  NormalizeWords(words),
	}, true
}

// NormalizeWords splits an example-words cell into words. Full-width
// parentheses become ASCII, one enclosing pair is stripped, and the rest is
// split on whitespace and list punctuation. The result is never nil.
func NormalizeWords(raw string) []string {
	s := strings.TrimSpace(raw)
	s = fullWidthParens.Replace(s)
	s = wrappedInParens.ReplaceAllString(s, "$1")

	words := []string{}
	for _, part := range strings.FieldsFunc(s, isWordSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			words = append(words, part)
		}
	}
	return words
}

func isWordSeparator(r rune) bool {
	switch r {
	case '、', ',', '，', ';', '；':
		return true
	}
	return unicode.IsSpace(r)
}
