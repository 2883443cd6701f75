package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain ascii", "hao", true},
		{"tone mark", "hǎo", true},
		{"first tone", "yī", true},
		{"fourth tone", "èr", true},
		{"u umlaut", "lǜ", true},
		{"bare u umlaut", "nü", true},
		{"uppercase", "Zhōng", true},
		{"syllabic n", "ń", true},
		{"empty", "", false},
		{"digits", "123", false},
		{"tone number", "hao3", false},
		{"inner space", "hǎo rén", false},
		{"hyphen", "yī-èr", false},
		{"hanzi", "好", false},
		{"unsupported m acute", "\u1e3f", false},
		{"circumflex e", "\u00ea", false},
		{"decomposed macron", "a\u0304", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.input), "Valid(%q)", tt.input)
		})
	}
}

func TestValidMatchesAllowed(t *testing.T) {
	for _, r := range "abcxyzABCXYZ" + Letters {
		assert.True(t, Allowed(r), "Allowed(%q)", r)
		assert.True(t, Valid(string(r)), "Valid(%q)", r)
	}
	for _, r := range "0 -'.好\u1e3f\u00ea\u0304" {
		assert.False(t, Allowed(r), "Allowed(%q)", r)
	}
}

func TestUnknownToneMarks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"valid pinyin", "hǎo", nil},
		{"digits are not tone marks", "hao3", nil},
		{"hanzi is not a tone mark", "好", nil},
		{"m acute", "\u1e3f", []rune{'\u1e3f'}},
		{"e circumflex with macron", "\u00ea\u0304", []rune{'\u00ea', '\u0304'}},
		{"decomposed a macron", "ba\u0304", []rune{'\u0304'}},
		{"reported once", "\u1e3f\u1e3f", []rune{'\u1e3f'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnknownToneMarks(tt.input))
		})
	}
}

func TestToneOf(t *testing.T) {
	tests := []struct {
		input string
		want  Tone
	}{
		{"yī", Tone1},
		{"rén", Tone2},
		{"hǎo", Tone3},
		{"èr", Tone4},
		{"lǜ", Tone4},
		{"ma", Tone5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToneOf(tt.input))
		})
	}
}
