package grammar

import (
	"fmt"
	"strings"
)

// Tense is the time frame of the hero sentence.
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

// Aspect describes the internal structure of the verb phrase.
type Aspect string

const (
	AspectSimple             Aspect = "simple"
	AspectProgressive        Aspect = "progressive"
	AspectPerfect            Aspect = "perfect"
	AspectPerfectProgressive Aspect = "perfect-progressive"
	AspectGoingTo            Aspect = "going-to"
)

// Polarity selects affirmative, negative or interrogative word order.
type Polarity string

const (
	PolarityAffirmative Polarity = "affirmative"
	PolarityNegative    Polarity = "negative"
	PolarityQuestion    Polarity = "question"
)

// PassiveVariant selects the auxiliary family of a passive sentence.
type PassiveVariant string

const (
	VariantBe  PassiveVariant = "be"
	VariantGet PassiveVariant = "get"
)

// PassiveMarker is the Vietnamese passive marker mode.
type PassiveMarker string

const (
	MarkerAuto PassiveMarker = "auto"
	MarkerDuoc PassiveMarker = "được"
	MarkerBi   PassiveMarker = "bị"
)

// PassiveOptions configures a passive-voice build. Polarity and Question
// replace the context polarity when Enabled is set; when both are left
// unset the context polarity applies.
type PassiveOptions struct {
	Enabled                 bool
	Polarity                Polarity // PolarityAffirmative or PolarityNegative
	Question                bool
	ByAgent                 bool
	AgentText               string
	Marker                  PassiveMarker
	Variant                 PassiveVariant
	AllowPerfectProgressive bool
}

// Unit is a grammar unit as supplied by the content collaborator.
// Class is resolved from Tags by the loader; a zero Class is resolved
// lazily by Build.
type Unit struct {
	ID            int       `json:"id"`
	NameEn        string    `json:"name_en"`
	NameVi        string    `json:"name_vi"`
	Tags          []string  `json:"tags"`
	GroupID       int       `json:"groupId"`
	CoreKnowledge string    `json:"core_knowledge,omitempty"`
	Class         WordClass `json:"-"`
}

// BuildContext carries every control value of a single build call.
// It is constructed fresh by the caller on each interaction.
type BuildContext struct {
	Unit        Unit
	Subject     Subject
	Verb        string
	Adjective   string
	Adverb      string
	Noun        string
	Preposition string
	Passive     PassiveOptions
	Tense       Tense
	Aspect      Aspect
	Polarity    Polarity
}

// ResultKind classifies how a HeroResult was produced.
type ResultKind int

const (
	// ResultOK is a sentence built without any advisory.
	ResultOK ResultKind = iota
	// ResultConstraint is a sentence built with a linguistic advisory.
	ResultConstraint
	// ResultMissingSelection is a placeholder: the word class needs a word.
	ResultMissingSelection
	// ResultFault is the generic bilingual error result.
	ResultFault
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultConstraint:
		return "constraint"
	case ResultMissingSelection:
		return "missing-selection"
	case ResultFault:
		return "fault"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// HeroResult is the display-ready output of Build.
type HeroResult struct {
	// English is the sentence annotated with tok-* spans.
	English string
	// Plain is the same sentence without markup.
	Plain string
	// Vietnamese is the gloss.
	Vietnamese string
	// Warn holds the advisory text, empty when there is none.
	Warn string
	Kind ResultKind
	// Err wraps the sentinel errors behind Warn; use errors.Is on it.
	Err error
}

// ParseTense accepts the canonical names ("present", "past", "future").
func ParseTense(s string) (Tense, error) {
	switch t := Tense(strings.ToLower(strings.TrimSpace(s))); t {
	case TensePresent, TensePast, TenseFuture:
		return t, nil
	}
	return "", fmt.Errorf("unknown tense %q: %w", s, ErrMalformedContext)
}

// ParseAspect accepts canonical aspect names and the short codes used by
// unit slot tags (base, prog, perf, perfprog, goingto).
func ParseAspect(s string) (Aspect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "base":
		return AspectSimple, nil
	case "progressive", "prog":
		return AspectProgressive, nil
	case "perfect", "perf":
		return AspectPerfect, nil
	case "perfect-progressive", "perfprog":
		return AspectPerfectProgressive, nil
	case "going-to", "goingto":
		return AspectGoingTo, nil
	}
	return "", fmt.Errorf("unknown aspect %q: %w", s, ErrMalformedContext)
}

// ParsePolarity accepts "affirmative", "negative", "question" and the
// short forms "affirm" and "neg".
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "affirmative", "affirm", "":
		return PolarityAffirmative, nil
	case "negative", "neg":
		return PolarityNegative, nil
	case "question", "q":
		return PolarityQuestion, nil
	}
	return "", fmt.Errorf("unknown polarity %q: %w", s, ErrMalformedContext)
}

// ParsePassiveVariant accepts "be" (default) and "get".
func ParsePassiveVariant(s string) (PassiveVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "be", "":
		return VariantBe, nil
	case "get":
		return VariantGet, nil
	}
	return "", fmt.Errorf("unknown passive variant %q: %w", s, ErrMalformedContext)
}

// ParsePassiveMarker accepts "auto" (default), "được"/"duoc" and "bị"/"bi".
func ParsePassiveMarker(s string) (PassiveMarker, error) {
	switch normalizeWord(s) {
	case "auto", "":
		return MarkerAuto, nil
	case "được", "duoc":
		return MarkerDuoc, nil
	case "bị", "bi":
		return MarkerBi, nil
	}
	return "", fmt.Errorf("unknown passive marker %q: %w", s, ErrMalformedContext)
}

func (t Tense) valid() bool {
	return t == TensePresent || t == TensePast || t == TenseFuture
}

func (a Aspect) valid() bool {
	switch a {
	case AspectSimple, AspectProgressive, AspectPerfect, AspectPerfectProgressive, AspectGoingTo:
		return true
	}
	return false
}

func (p Polarity) valid() bool {
	return p == PolarityAffirmative || p == PolarityNegative || p == PolarityQuestion
}
