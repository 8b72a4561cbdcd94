package grammar

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// normalizeWord trims and lowercases s and composes it to NFC, so that
// Vietnamese typed with combining tone marks compares equal to the
// precomposed form.
func normalizeWord(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// NormalizeText composes s to NFC and collapses runs of whitespace.
// The content loader applies it to every word and gloss it reads.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var (
	reVowelStart     = regexp.MustCompile(`^[aeiou]`)
	reConsonantStart = regexp.MustCompile(`^[bcdfghjklmnpqrstvwxyz]`)
)

// ArticleFor returns "an" for a word starting with a vowel letter, "a" for
// a word starting with a consonant letter and "" otherwise (digits,
// punctuation, empty input). Spelling decides, not pronunciation:
// "hour" gets "a", "university" gets "an".
func ArticleFor(word string) string {
	w := normalizeWord(word)
	switch {
	case reVowelStart.MatchString(w):
		return "an"
	case reConsonantStart.MatchString(w):
		return "a"
	}
	return ""
}

// withArticle prefixes word with its article when one applies.
func withArticle(word string) string {
	if a := ArticleFor(word); a != "" {
		return a + " " + word
	}
	return word
}
