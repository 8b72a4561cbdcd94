package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightTagsByPosition(t *testing.T) {
	tokens := []token{
		{"Work", roleSubject},
		{"does", roleAux},
		{"work", roleVerb},
		{"work", roleNoun},
	}
	got := highlight(tokens, ".")
	assert.Equal(t,
		`Work <span class="tok-verb">does</span> <span class="tok-verb">work</span> <span class="tok-noun">work</span>.`,
		got)
}

func TestHighlightEscapesFreeText(t *testing.T) {
	res := Build(passiveContext(SubjectHe, TensePresent, AspectSimple, "invite",
		PassiveOptions{ByAgent: true, AgentText: `Tom & <Jerry>`}))

	assert.Contains(t, res.English, "by Tom &amp; &lt;Jerry&gt;.")
	assert.NotContains(t, res.English, "<Jerry>")
	assert.Equal(t, "He is invited by Tom & <Jerry>.", res.Plain)

	res = Build(verbContext(SubjectHe, TensePast, AspectSimple, PolarityAffirmative, `<b>`))
	assert.NotContains(t, res.English, "<b>")
}

func TestHighlightOnlyKnownClasses(t *testing.T) {
	allowed := map[string]bool{
		ClassTokVerb:          true,
		ClassTokAdjective:     true,
		ClassTokAdverb:        true,
		ClassTokNoun:          true,
		ClassTokPreposition:   true,
		ClassTokPassiveMarker: true,
	}
	ctx := passiveContext(SubjectShe, TensePast, AspectProgressive, "invite", PassiveOptions{ByAgent: true, AgentText: "him"})
	ctx.Adverb = "often"
	for _, seg := range Segments(Build(ctx).English) {
		if seg.Class != "" {
			assert.True(t, allowed[seg.Class], "unexpected class %q", seg.Class)
		}
	}
}

func TestSegments(t *testing.T) {
	got := Segments(`He <span class="tok-verb">works</span> &amp; <span class="tok-adv">often</span>.`)
	assert.Equal(t, []Token{
		{Text: "He "},
		{Text: "works", Class: ClassTokVerb},
		{Text: " & "},
		{Text: "often", Class: ClassTokAdverb},
		{Text: "."},
	}, got)

	assert.Equal(t, []Token{{Text: "plain"}}, Segments("plain"))
	assert.Nil(t, Segments(""))
}

func TestAppendPassiveMarker(t *testing.T) {
	assert.Equal(t, "x", appendPassiveMarker("x", ""))
	assert.Equal(t, `x <span class="tok-passive-marker">(được)</span>`, appendPassiveMarker("x", "được"))
}
