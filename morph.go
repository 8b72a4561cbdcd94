package grammar

import (
	"regexp"
	"strings"
)

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// doublingExempt verbs end in consonant-vowel-consonant but never double
// the final consonant (unstressed last syllable).
var doublingExempt = setOf(
	"answer", "offer", "suffer", "open", "happen", "travel",
	"listen", "enter", "order", "cover", "gather", "wonder",
	"remember", "consider", "deliver", "discover", "develop",
)

// stativeVerbs denote states and are kept out of progressive aspect.
var stativeVerbs = setOf(
	"have", "know", "believe", "think", "love", "like", "hate",
	"prefer", "want", "need", "seem", "appear", "understand",
	"realize", "remember", "own", "belong", "contain", "include",
	"matter", "fit", "agree", "depend", "mean", "lack", "cost",
	"weigh", "measure", "exist", "consist", "deserve", "require",
)

// negativeVerbs imply an adverse outcome for the patient of a passive
// sentence. The assembler warns on them and the Vietnamese mapper picks
// "bị" for them; both read this one table.
var negativeVerbs = setOf(
	"fire", "steal", "injure", "damage", "arrest", "punish", "kill",
	"break", "destroy", "hurt", "harm", "attack", "rob", "cheat",
	"deceive", "abandon", "betray", "insult", "criticize", "reject",
)

// keepFinalE lists -e verbs that keep the e before -ing.
var keepFinalE = setOf("be", "see", "dye", "agree")

var (
	reConsonantY = regexp.MustCompile(`[^aeiou]y$`)
	reSibilant   = regexp.MustCompile(`(s|x|z|ch|sh|o)$`)
	reCVC        = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz][aeiou][bcdfgklmnprst]$`)
)

// FormThirdPersonSingular returns the present-tense form used with
// he/she/it: be→is, have→has, do→does, go→goes, study→studies,
// watch→watches, play→plays.
func FormThirdPersonSingular(verb string) string {
	v := normalizeWord(verb)
	switch v {
	case "be":
		return "is"
	case "have":
		return "has"
	case "do":
		return "does"
	case "go":
		return "goes"
	}
	if len(v) >= 2 && reConsonantY.MatchString(v) {
		return v[:len(v)-1] + "ies"
	}
	if reSibilant.MatchString(v) {
		return v + "es"
	}
	return v + "s"
}

// FormProgressive returns the -ing participle: lie→lying, live→living,
// answer→answering, run→running, work→working.
func FormProgressive(verb string) string {
	v := normalizeWord(verb)
	if strings.HasSuffix(v, "ie") {
		return v[:len(v)-2] + "ying"
	}
	if strings.HasSuffix(v, "e") && !keepFinalE[v] {
		return v[:len(v)-1] + "ing"
	}
	if doublingExempt[v] {
		return v + "ing"
	}
	if doublesFinal(v) {
		return v + v[len(v)-1:] + "ing"
	}
	return v + "ing"
}

// FormRegularPast returns the regular -ed form: live→lived,
// study→studied, stop→stopped, open→opened. It is applied to every verb,
// including lexically irregular ones; the same form stands in for the
// past participle.
func FormRegularPast(verb string) string {
	v := normalizeWord(verb)
	if strings.HasSuffix(v, "e") {
		return v + "d"
	}
	if len(v) >= 2 && reConsonantY.MatchString(v) {
		return v[:len(v)-1] + "ied"
	}
	if !doublingExempt[v] && doublesFinal(v) {
		return v + v[len(v)-1:] + "ed"
	}
	return v + "ed"
}

// doublesFinal reports the consonant-vowel-consonant ending that doubles
// its last letter before a vowel suffix.
func doublesFinal(v string) bool {
	return len(v) >= 3 && reCVC.MatchString(v)
}

// IsStative reports whether verb denotes a state.
func IsStative(verb string) bool {
	return stativeVerbs[normalizeWord(verb)]
}

// IsNegativeConnotation reports whether verb implies an adverse outcome.
func IsNegativeConnotation(verb string) bool {
	return negativeVerbs[normalizeWord(verb)]
}

// IsDoublingExempt reports whether verb is excluded from consonant doubling.
func IsDoublingExempt(verb string) bool {
	return doublingExempt[normalizeWord(verb)]
}

// AuxKind selects the auxiliary paradigm for AgreementForm.
type AuxKind int

const (
	AuxBe AuxKind = iota
	AuxHave
	AuxDo
)

// AgreementForm returns the be/have/do form agreeing with subj in tense.
// Future tense uses the present forms (the going-to chain needs them).
func AgreementForm(subj Subject, kind AuxKind, tense Tense) string {
	a := AgreementOf(subj)
	past := tense == TensePast
	switch kind {
	case AuxBe:
		switch {
		case past && (a.firstSingular() || a.thirdSingular()):
			return "was"
		case past:
			return "were"
		case a.firstSingular():
			return "am"
		case a.thirdSingular():
			return "is"
		default:
			return "are"
		}
	case AuxHave:
		switch {
		case past:
			return "had"
		case a.thirdSingular():
			return "has"
		default:
			return "have"
		}
	default:
		switch {
		case past:
			return "did"
		case a.thirdSingular():
			return "does"
		default:
			return "do"
		}
	}
}

// VerbForms is the regular inflection report for one verb.
type VerbForms struct {
	Base        string `json:"base"`
	Third       string `json:"third"`
	Progressive string `json:"progressive"`
	Past        string `json:"past"`
	Participle  string `json:"participle"`
	Stative     bool   `json:"stative"`
	Negative    bool   `json:"negative"`
}

// Forms computes every regular inflection of verb.
func Forms(verb string) VerbForms {
	past := FormRegularPast(verb)
	return VerbForms{
		Base:        normalizeWord(verb),
		Third:       FormThirdPersonSingular(verb),
		Progressive: FormProgressive(verb),
		Past:        past,
		Participle:  past,
		Stative:     IsStative(verb),
		Negative:    IsNegativeConnotation(verb),
	}
}

// paradigm holds the forms the assembler needs from a main verb.
type paradigm struct {
	base, third, past, participle, progressive string
}

// regularParadigm derives a paradigm from the morphology rules.
func regularParadigm(verb string) paradigm {
	past := FormRegularPast(verb)
	return paradigm{
		base:        normalizeWord(verb),
		third:       FormThirdPersonSingular(verb),
		past:        past,
		participle:  past,
		progressive: FormProgressive(verb),
	}
}

// haveParadigm is the possessive main verb of noun sentences.
var haveParadigm = paradigm{
	base:        "have",
	third:       "has",
	past:        "had",
	participle:  "had",
	progressive: "having",
}
