package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporalParticle(t *testing.T) {
	cases := []struct {
		tense     Tense
		aspect    Aspect
		frequency bool
		want      string
	}{
		{TensePresent, AspectProgressive, false, "đang"},
		{TensePast, AspectProgressive, false, "đang"},
		{TenseFuture, AspectProgressive, true, "đang"},
		{TensePresent, AspectPerfect, false, "đã"},
		{TenseFuture, AspectPerfectProgressive, false, "đã"},
		{TensePast, AspectSimple, false, "đã"},
		{TenseFuture, AspectSimple, false, "sẽ"},
		{TenseFuture, AspectGoingTo, false, "sắp"},
		{TensePresent, AspectSimple, true, "thường"},
		{TensePresent, AspectSimple, false, ""},
		{TensePast, AspectSimple, true, "đã"},
	}
	for _, tc := range cases {
		got := TemporalParticle(tc.tense, tc.aspect, tc.frequency)
		assert.Equal(t, tc.want, got, "%s/%s frequency=%v", tc.tense, tc.aspect, tc.frequency)
	}
}

func TestPassiveMarkerFor(t *testing.T) {
	assert.Equal(t, "được", PassiveMarkerFor(MarkerAuto, VariantBe, "invite"))
	assert.Equal(t, "bị", PassiveMarkerFor(MarkerAuto, VariantGet, "invite"))
	assert.Equal(t, "bị", PassiveMarkerFor(MarkerAuto, VariantBe, "Punish"))
	assert.Equal(t, "được", PassiveMarkerFor(MarkerDuoc, VariantGet, "punish"))
	assert.Equal(t, "bị", PassiveMarkerFor(MarkerBi, VariantBe, "invite"))
}

func TestRenderVietnameseSlotOrder(t *testing.T) {
	got := renderVietnamese(viClause{
		subject:     SubjectWe,
		particle:    "sẽ",
		verb:        "là",
		adjective:   "A",
		noun:        "N",
		preposition: "P",
		adverb:      "D",
	})
	assert.Equal(t, "Chúng tôi sẽ là A N P D.", got)
}

func TestVietnamesePronoun(t *testing.T) {
	assert.Equal(t, "Tôi", VietnamesePronoun(SubjectI))
	assert.Equal(t, "Những người đó", VietnamesePronoun(SubjectNs))
	assert.Equal(t, "Mary", VietnamesePronoun("Mary"))
}

func TestTranslateEchoesOnMiss(t *testing.T) {
	assert.Equal(t, "làm việc", TranslateVerb(" Work "))
	assert.Equal(t, "xylophone", TranslateNoun("xylophone"))
	assert.Equal(t, "bên cạnh", TranslatePreposition("next to"))
	assert.Equal(t, "vui", TranslateAdjective("happy"))
	assert.Equal(t, "hiếm khi", TranslateAdverb("rarely"))
}

func TestRenderVietnameseNegationFollowsParticle(t *testing.T) {
	got := renderVietnamese(viClause{
		subject:  SubjectHe,
		particle: "đã",
		verb:     "làm việc",
		negative: true,
	})
	assert.Equal(t, "Anh ấy đã không làm việc.", got)
}
