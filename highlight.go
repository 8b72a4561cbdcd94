package grammar

import (
	"html"
	"strings"
)

// Span classes of the English markup. The rendering layer styles these
// and nothing else.
const (
	ClassTokVerb          = "tok-verb"
	ClassTokAdjective     = "tok-adj"
	ClassTokAdverb        = "tok-adv"
	ClassTokNoun          = "tok-noun"
	ClassTokPreposition   = "tok-prep"
	ClassTokPassiveMarker = "tok-passive-marker"
)

var roleClasses = map[role]string{
	roleAux:         ClassTokVerb,
	roleVerb:        ClassTokVerb,
	roleAdjective:   ClassTokAdjective,
	roleAdverb:      ClassTokAdverb,
	roleNoun:        ClassTokNoun,
	rolePreposition: ClassTokPreposition,
}

// span wraps escaped text in a span of the given class.
func span(class, text string) string {
	return `<span class="` + class + `">` + html.EscapeString(text) + `</span>`
}

// highlight renders tokens as markup. Each token is tagged by the role it
// was assembled with, so a word that recurs in another role (the "have"
// of "have had") keeps the class of its own position. Untagged tokens and
// free text (subject, "not", by-agent) are escaped.
func highlight(tokens []token, terminal string) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if class, ok := roleClasses[t.role]; ok {
			sb.WriteString(span(class, t.text))
			continue
		}
		sb.WriteString(html.EscapeString(t.text))
	}
	sb.WriteString(terminal)
	return sb.String()
}

// appendPassiveMarker annotates a passive sentence with its Vietnamese
// marker, after the sentence.
func appendPassiveMarker(markup, marker string) string {
	if marker == "" {
		return markup
	}
	return markup + " " + span(ClassTokPassiveMarker, "("+marker+")")
}

// Token is one highlighted segment of a rendered sentence. Class is empty
// for untagged text.
type Token struct {
	Text  string `json:"text"`
	Class string `json:"class,omitempty"`
}

// Segments splits English markup produced by Build back into tokens, for
// renderers that do not speak HTML (the terminal CLI). Text outside spans
// is returned with an empty class.
func Segments(markup string) []Token {
	var out []Token
	rest := markup
	for rest != "" {
		start := strings.Index(rest, `<span class="`)
		if start < 0 {
			out = append(out, Token{Text: html.UnescapeString(rest)})
			break
		}
		if start > 0 {
			out = append(out, Token{Text: html.UnescapeString(rest[:start])})
		}
		rest = rest[start+len(`<span class="`):]
		q := strings.Index(rest, `">`)
		end := strings.Index(rest, `</span>`)
		if q < 0 || end < q {
			out = append(out, Token{Text: html.UnescapeString(rest)})
			break
		}
		out = append(out, Token{
			Text:  html.UnescapeString(rest[q+2 : end]),
			Class: rest[:q],
		})
		rest = rest[end+len(`</span>`):]
	}
	return out
}
