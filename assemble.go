package grammar

import "strings"

// role is the grammatical role of an assembled token. The highlighter
// tags tokens by role, not by their text.
type role int

const (
	roleSubject role = iota
	roleAux
	roleNot
	roleVerb
	roleAdjective
	roleAdverb
	roleNoun
	rolePreposition
	roleAgent
)

type token struct {
	text string
	role role
}

// frequencyAdverbs are placed before the main verb; every other adverb
// closes the sentence.
var frequencyAdverbs = setOf("often", "usually", "sometimes", "never", "always")

// IsFrequencyAdverb reports whether adv takes the pre-verb position.
func IsFrequencyAdverb(adv string) bool {
	return frequencyAdverbs[normalizeWord(adv)]
}

// clause is everything word order needs: the chain and main slot are
// final, polarity only decides where "not" goes and whether the first
// auxiliary moves to the front.
type clause struct {
	subject  Subject
	aux      []string
	main     token
	adverb   string
	agent    string
	negative bool
	question bool
}

// arrange orders the clause tokens and returns them with the terminal
// punctuation ("." or "?").
//
//	affirmative  S aux0 [freq] aux1.. main [adv] [by agent] .
//	negative     S aux0 not [freq] aux1.. main [adv] [by agent] .
//	question     Aux0 S [not] aux1.. [freq] main [adv] [by agent] ?
//
// In a negative question whose first auxiliary is not "will" the subject
// and "not" form one token ("Does he not"); after "will" they stay apart.
func arrange(c clause) ([]token, string) {
	var freq, final []token
	if c.adverb != "" {
		adv := token{c.adverb, roleAdverb}
		if IsFrequencyAdverb(c.adverb) {
			freq = append(freq, adv)
		} else {
			final = append(final, adv)
		}
	}
	if c.agent != "" {
		final = append(final, token{"by " + c.agent, roleAgent})
	}

	var out []token
	if c.question && len(c.aux) > 0 {
		first := c.aux[0]
		out = append(out, token{capitalize(first), roleAux})
		if c.negative && first != "will" {
			out = append(out, token{string(c.subject) + " not", roleSubject})
		} else {
			out = append(out, token{string(c.subject), roleSubject})
			if c.negative {
				out = append(out, token{"not", roleNot})
			}
		}
		out = appendAux(out, c.aux[1:])
		out = append(out, freq...)
		out = append(out, c.main)
		out = append(out, final...)
		return out, "?"
	}

	out = append(out, token{capitalize(string(c.subject)), roleSubject})
	if len(c.aux) > 0 {
		out = append(out, token{c.aux[0], roleAux})
		if c.negative {
			out = append(out, token{"not", roleNot})
		}
		out = append(out, freq...)
		out = appendAux(out, c.aux[1:])
	} else {
		out = append(out, freq...)
	}
	out = append(out, c.main)
	out = append(out, final...)
	if c.question {
		return out, "?"
	}
	return out, "."
}

func appendAux(out []token, aux []string) []token {
	for _, a := range aux {
		out = append(out, token{a, roleAux})
	}
	return out
}

// plainText joins tokens into the unannotated sentence.
func plainText(tokens []token, terminal string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.text
	}
	return strings.Join(parts, " ") + terminal
}

// auxTexts returns the auxiliary chain as it appears in the sentence,
// first auxiliary lowercased. Tests and the CLI use it.
func auxTexts(tokens []token) []string {
	var out []string
	for _, t := range tokens {
		if t.role == roleAux {
			out = append(out, strings.ToLower(t.text))
		}
	}
	return out
}
