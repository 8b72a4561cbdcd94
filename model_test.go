package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseControls(t *testing.T) {
	tense, err := ParseTense(" Past ")
	require.NoError(t, err)
	assert.Equal(t, TensePast, tense)

	for in, want := range map[string]Aspect{
		"base":                AspectSimple,
		"prog":                AspectProgressive,
		"perf":                AspectPerfect,
		"perfprog":            AspectPerfectProgressive,
		"goingto":             AspectGoingTo,
		"perfect-progressive": AspectPerfectProgressive,
	} {
		got, err := ParseAspect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for in, want := range map[string]Polarity{
		"":         PolarityAffirmative,
		"affirm":   PolarityAffirmative,
		"neg":      PolarityNegative,
		"question": PolarityQuestion,
	} {
		got, err := ParsePolarity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	marker, err := ParsePassiveMarker("duoc")
	require.NoError(t, err)
	assert.Equal(t, MarkerDuoc, marker)
	marker, err = ParsePassiveMarker("BỊ")
	require.NoError(t, err)
	assert.Equal(t, MarkerBi, marker)

	variant, err := ParsePassiveVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantBe, variant)
}

func TestParseControlsReject(t *testing.T) {
	_, err := ParseTense("soon")
	assert.True(t, errors.Is(err, ErrMalformedContext))
	_, err = ParseAspect("habitual")
	assert.True(t, errors.Is(err, ErrMalformedContext))
	_, err = ParsePolarity("maybe")
	assert.True(t, errors.Is(err, ErrMalformedContext))
	_, err = ParsePassiveVariant("have")
	assert.True(t, errors.Is(err, ErrMalformedContext))
	_, err = ParsePassiveMarker("bởi")
	assert.True(t, errors.Is(err, ErrMalformedContext))
}

func TestParseSubject(t *testing.T) {
	for in, want := range map[string]Subject{
		"I":    SubjectI,
		"i":    SubjectI,
		"He":   SubjectHe,
		" she": SubjectShe,
		"N":    SubjectN,
		"ns":   SubjectNs,
	} {
		got, ok := ParseSubject(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseSubject("Mary")
	assert.False(t, ok)
}

func TestResolveWordClass(t *testing.T) {
	cases := []struct {
		tags []string
		want WordClass
	}{
		{[]string{"topic:adjectives"}, ClassAdjective},
		{[]string{"topic:adverbs"}, ClassAdverb},
		{[]string{"topic:nouns"}, ClassNoun},
		{[]string{"topic:prepositions"}, ClassPreposition},
		{[]string{"Topic:Nouns "}, ClassNoun},
		{[]string{"topic:tense", "tense:past"}, ClassVerb},
		{[]string{"topic:passive"}, ClassVerb},
		{[]string{"topic:modals", "modal:can"}, ClassVerb},
		{nil, ClassVerb},
		// adjective wins over later topics
		{[]string{"topic:nouns", "topic:adjectives"}, ClassAdjective},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveWordClass(tc.tags), "%v", tc.tags)
	}
}

func TestUnitWordClassPrefersResolved(t *testing.T) {
	u := Unit{Tags: []string{"topic:nouns"}}
	assert.Equal(t, ClassNoun, u.WordClass())
	u.Class = ClassAdverb
	assert.Equal(t, ClassAdverb, u.WordClass())
	assert.Equal(t, "adverb", u.WordClass().String())
}

func TestResultKindString(t *testing.T) {
	assert.Equal(t, "ok", ResultOK.String())
	assert.Equal(t, "missing-selection", ResultMissingSelection.String())
	assert.Equal(t, "ResultKind(9)", ResultKind(9).String())
}
