package grammar

import "strings"

// WordClass is the hero word class a grammar unit is illustrated with.
type WordClass rune

const (
	ClassUnknown     WordClass = 0
	ClassVerb        WordClass = 'v'
	ClassAdjective   WordClass = 'a'
	ClassAdverb      WordClass = 'd'
	ClassNoun        WordClass = 'n'
	ClassPreposition WordClass = 'r'
)

// String returns the lowercase English name of c.
func (c WordClass) String() string {
	switch c {
	case ClassVerb:
		return "verb"
	case ClassAdjective:
		return "adjective"
	case ClassAdverb:
		return "adverb"
	case ClassNoun:
		return "noun"
	case ClassPreposition:
		return "preposition"
	default:
		return "unknown"
	}
}

// topicClasses routes topic tags to their dedicated builder, checked in
// this order.
var topicClasses = []struct {
	tag   string
	class WordClass
}{
	{"topic:adjectives", ClassAdjective},
	{"topic:adverbs", ClassAdverb},
	{"topic:nouns", ClassNoun},
	{"topic:prepositions", ClassPreposition},
}

// ResolveWordClass maps a unit's tag list to its word class. Tense, modal,
// clause and every other topic falls through to ClassVerb.
func ResolveWordClass(tags []string) WordClass {
	for _, tc := range topicClasses {
		for _, t := range tags {
			if strings.EqualFold(strings.TrimSpace(t), tc.tag) {
				return tc.class
			}
		}
	}
	return ClassVerb
}

// WordClass returns the unit's resolved class, resolving it from the tags
// when the loader has not done so.
func (u Unit) WordClass() WordClass {
	if u.Class != ClassUnknown {
		return u.Class
	}
	return ResolveWordClass(u.Tags)
}
