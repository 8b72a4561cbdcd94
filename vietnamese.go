package grammar

import "strings"

// TemporalParticle returns the Vietnamese tense/aspect particle. It is
// derived from tense and aspect alone, never from the English chain.
// The present simple takes "thường" only with a frequency adverb.
func TemporalParticle(tense Tense, aspect Aspect, frequency bool) string {
	switch {
	case aspect == AspectProgressive:
		return "đang"
	case aspect == AspectPerfect || aspect == AspectPerfectProgressive:
		return "đã"
	case aspect == AspectGoingTo:
		return "sắp"
	case tense == TensePast:
		return "đã"
	case tense == TenseFuture:
		return "sẽ"
	case frequency:
		return "thường"
	}
	return ""
}

// PassiveMarkerFor picks "được" or "bị". An explicit marker wins; in auto
// mode the get variant and negative-connotation verbs take "bị".
func PassiveMarkerFor(marker PassiveMarker, variant PassiveVariant, verb string) string {
	switch marker {
	case MarkerDuoc, MarkerBi:
		return string(marker)
	}
	if variant == VariantGet || IsNegativeConnotation(verb) {
		return string(MarkerBi)
	}
	return string(MarkerDuoc)
}

// viClause is the input of the Vietnamese template. Verb, Adjective, Noun,
// Preposition and Adverb are already glossed.
type viClause struct {
	subject       Subject
	particle      string
	passiveMarker string // non-empty for passive clauses
	verb          string
	agent         string
	negative      bool
	question      bool
	adjective     string
	noun          string
	preposition   string
	adverb        string
}

// renderVietnamese fills the template
//
//	pronoun [particle] [không] [marker] verb [bởi agent] [adj] [noun] [prep] [adv] .
//	pronoun có [particle] [marker] verb [bởi agent] [adj] [noun] [prep] [adv] không?
//
// A negative question keeps the negative clause and ends in the tag
// "phải không?". Negation follows the particle ("đã không làm"); the
// "không đã" order is deliberately not used.
func renderVietnamese(c viClause) string {
	frame := c.question && !c.negative
	parts := []string{VietnamesePronoun(c.subject)}
	if frame {
		parts = append(parts, "có")
	}
	if c.particle != "" {
		parts = append(parts, c.particle)
	}
	if c.negative {
		parts = append(parts, "không")
	}
	if c.passiveMarker != "" {
		parts = append(parts, c.passiveMarker)
	}
	parts = append(parts, c.verb)
	if c.passiveMarker != "" && c.agent != "" {
		parts = append(parts, "bởi "+c.agent)
	}
	for _, w := range []string{c.adjective, c.noun, c.preposition, c.adverb} {
		if w != "" {
			parts = append(parts, w)
		}
	}
	s := strings.Join(parts, " ")
	switch {
	case frame:
		return s + " không?"
	case c.question:
		return s + ", phải không?"
	}
	return s + "."
}
