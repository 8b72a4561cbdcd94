// Package grammar builds the "hero" example sentence of an English grammar
// unit for Vietnamese learners: a tense/aspect/voice/polarity selection is
// assembled into an inflected English sentence, rendered with token markup,
// and glossed independently in Vietnamese.
//
// The package is pure: Build reads only its argument and the package's
// read-only tables, so it can be called concurrently without locking.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSelection: the unit's word class needs a word the caller
	// did not select. The result is a placeholder.
	ErrMissingSelection = errors.New("missing word selection")

	// ErrStativeProgressive: a stative verb was asked for in progressive
	// aspect; the sentence is assembled in simple aspect instead.
	ErrStativeProgressive = errors.New("stative verb in progressive aspect")

	// ErrStativePassive: a stative verb was put in the passive. Advisory only.
	ErrStativePassive = errors.New("stative verb in passive voice")

	// ErrNegativePassive: a negative-connotation verb was put in the
	// passive. Advisory only.
	ErrNegativePassive = errors.New("negative-connotation verb in passive voice")

	// ErrAspectNotOffered: the aspect is not offered for the word class or
	// tense; the nearest offered aspect is used.
	ErrAspectNotOffered = errors.New("aspect not offered")

	// ErrMalformedContext: the build context holds a value outside the
	// enumerated parameter space.
	ErrMalformedContext = errors.New("malformed build context")

	// ErrInternal: an unexpected fault was recovered during assembly.
	ErrInternal = errors.New("internal assembly fault")
)

// Advisory is a recoverable condition reported with a built sentence.
// Message is the user-facing text, Cause one of the sentinel errors.
type Advisory struct {
	Cause   error
	Message string
}

func (a *Advisory) Error() string { return a.Message }

func (a *Advisory) Unwrap() error { return a.Cause }

func advise(cause error, format string, args ...any) *Advisory {
	return &Advisory{Cause: cause, Message: fmt.Sprintf(format, args...)}
}

// Build assembles the hero sentence for ctx. It never panics and always
// returns a well-formed result; Kind and Err tell the caller which
// recoverable condition, if any, applied.
func Build(ctx BuildContext) (res HeroResult) {
	defer func() {
		if r := recover(); r != nil {
			res = faultResult(fmt.Errorf("%w: %v", ErrInternal, r))
		}
	}()

	ctx, err := normalizeContext(ctx)
	if err != nil {
		return faultResult(err)
	}

	switch ctx.Unit.WordClass() {
	case ClassAdjective:
		return buildAdjective(ctx)
	case ClassAdverb:
		return buildAdverb(ctx)
	case ClassNoun:
		return buildNoun(ctx)
	case ClassPreposition:
		return buildPreposition(ctx)
	default:
		return buildVerb(ctx)
	}
}

// normalizeContext validates the enumerated fields, canonicalizes the
// subject and fills the passive defaults (be variant, auto marker). A
// passive left without polarity or question takes the context polarity.
func normalizeContext(ctx BuildContext) (BuildContext, error) {
	if strings.TrimSpace(string(ctx.Subject)) == "" {
		return ctx, fmt.Errorf("empty subject: %w", ErrMalformedContext)
	}
	if subj, ok := ParseSubject(string(ctx.Subject)); ok {
		ctx.Subject = subj
	} else {
		ctx.Subject = Subject(NormalizeText(string(ctx.Subject)))
	}
	if !ctx.Tense.valid() {
		return ctx, fmt.Errorf("tense %q: %w", ctx.Tense, ErrMalformedContext)
	}
	if !ctx.Aspect.valid() {
		return ctx, fmt.Errorf("aspect %q: %w", ctx.Aspect, ErrMalformedContext)
	}
	if !ctx.Polarity.valid() {
		return ctx, fmt.Errorf("polarity %q: %w", ctx.Polarity, ErrMalformedContext)
	}
	p := &ctx.Passive
	if p.Variant == "" {
		p.Variant = VariantBe
	}
	if p.Marker == "" {
		p.Marker = MarkerAuto
	}
	if p.Polarity == "" {
		switch {
		case p.Question:
			p.Polarity = PolarityAffirmative
		case ctx.Polarity == PolarityQuestion:
			p.Polarity = PolarityAffirmative
			p.Question = true
		case ctx.Polarity == PolarityNegative:
			p.Polarity = PolarityNegative
		default:
			p.Polarity = PolarityAffirmative
		}
	}
	if !p.Enabled {
		return ctx, nil
	}
	if p.Variant != VariantBe && p.Variant != VariantGet {
		return ctx, fmt.Errorf("passive variant %q: %w", p.Variant, ErrMalformedContext)
	}
	if p.Polarity != PolarityAffirmative && p.Polarity != PolarityNegative {
		return ctx, fmt.Errorf("passive polarity %q: %w", p.Polarity, ErrMalformedContext)
	}
	marker, err := ParsePassiveMarker(string(p.Marker))
	if err != nil {
		return ctx, err
	}
	p.Marker = marker
	return ctx, nil
}

// faultResult is the generic bilingual error result.
func faultResult(err error) HeroResult {
	return HeroResult{
		English:    "Error building sentence",
		Plain:      "Error building sentence",
		Vietnamese: "Lỗi xây dựng câu",
		Warn:       err.Error(),
		Kind:       ResultFault,
		Err:        err,
	}
}

type placeholder struct {
	english, vietnamese, warn string
}

var placeholders = map[WordClass]placeholder{
	ClassVerb:        {"No verb selected", "Chưa chọn động từ", "Please select a verb"},
	ClassAdjective:   {"No adjective selected", "Chưa chọn tính từ", "Please select an adjective"},
	ClassAdverb:      {"No adverb selected", "Chưa chọn trạng từ", "Please select an adverb"},
	ClassNoun:        {"No noun selected", "Chưa chọn danh từ", "Please select a noun"},
	ClassPreposition: {"No preposition selected", "Chưa chọn giới từ", "Please select a preposition"},
}

// missingResult is the placeholder returned when class has no word.
func missingResult(class WordClass) HeroResult {
	p := placeholders[class]
	return HeroResult{
		English:    p.english,
		Plain:      p.english,
		Vietnamese: p.vietnamese,
		Warn:       p.warn,
		Kind:       ResultMissingSelection,
		Err:        fmt.Errorf("%s: %w", class, ErrMissingSelection),
	}
}

// finish wraps the rendered sentence pair with the collected advisories.
func finish(english, plain, vietnamese string, advisories []*Advisory) HeroResult {
	res := HeroResult{
		English:    english,
		Plain:      plain,
		Vietnamese: vietnamese,
		Kind:       ResultOK,
	}
	if len(advisories) == 0 {
		return res
	}
	msgs := make([]string, 0, len(advisories))
	errs := make([]error, 0, len(advisories))
	for _, a := range advisories {
		msgs = append(msgs, a.Message)
		errs = append(errs, a)
	}
	res.Warn = strings.Join(msgs, " ")
	res.Err = errors.Join(errs...)
	res.Kind = ResultConstraint
	return res
}
