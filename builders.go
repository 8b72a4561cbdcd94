package grammar

import "strings"

const (
	defaultAdverbVerb = "work"
	defaultPlaceNoun  = "school"
)

// offeredAspect maps aspect onto the subset offered for class in tense.
// Going-to exists only in the future; adjective, noun and preposition
// sentences have no perfect progressive, and preposition sentences no
// progressive.
func offeredAspect(class WordClass, tense Tense, aspect Aspect) (Aspect, *Advisory) {
	if aspect == AspectGoingTo && tense != TenseFuture {
		return AspectSimple, advise(ErrAspectNotOffered,
			"Going-to is a future form and is not offered in the %s tense. Using simple aspect instead.", tense)
	}
	switch class {
	case ClassAdjective, ClassNoun, ClassPreposition:
		if aspect == AspectPerfectProgressive {
			return AspectPerfect, advise(ErrAspectNotOffered,
				"Perfect progressive is not offered for %s sentences. Using perfect aspect instead.", class)
		}
	}
	if class == ClassPreposition && aspect == AspectProgressive {
		return AspectSimple, advise(ErrAspectNotOffered,
			"Progressive aspect is not offered for preposition sentences. Using simple aspect instead.")
	}
	return aspect, nil
}

// stativeGuard downgrades a progressive stative verb to simple aspect.
func stativeGuard(verb string, aspect Aspect) (Aspect, *Advisory) {
	if aspect == AspectProgressive && IsStative(verb) {
		return AspectSimple, advise(ErrStativeProgressive,
			"Stative verb %q cannot be used in progressive aspect. Using simple aspect instead.", normalizeWord(verb))
	}
	return aspect, nil
}

// collect appends the non-nil advisories.
func collect(advisories []*Advisory, more ...*Advisory) []*Advisory {
	for _, a := range more {
		if a != nil {
			advisories = append(advisories, a)
		}
	}
	return advisories
}

func buildVerb(ctx BuildContext) HeroResult {
	verb := strings.TrimSpace(ctx.Verb)
	if verb == "" {
		return missingResult(ClassVerb)
	}
	return buildVerbClause(ctx, ClassVerb, verb, normalizeWord(ctx.Adverb))
}

// buildAdverb is the verb sentence with the selected adverb placed by its
// frequency class; "work" stands in when no verb is selected.
func buildAdverb(ctx BuildContext) HeroResult {
	adverb := normalizeWord(ctx.Adverb)
	if adverb == "" {
		return missingResult(ClassAdverb)
	}
	verb := strings.TrimSpace(ctx.Verb)
	if verb == "" {
		verb = defaultAdverbVerb
	}
	return buildVerbClause(ctx, ClassAdverb, verb, adverb)
}

func buildVerbClause(ctx BuildContext, class WordClass, verb, adverb string) HeroResult {
	aspect, notOffered := offeredAspect(class, ctx.Tense, ctx.Aspect)
	aspect, stative := stativeGuard(verb, aspect)
	advisories := collect(nil, notOffered, stative)

	frequency := adverb != "" && IsFrequencyAdverb(adverb)
	vi := viClause{
		subject:  ctx.Subject,
		particle: TemporalParticle(ctx.Tense, aspect, frequency),
		verb:     TranslateVerb(verb),
	}
	if adverb != "" {
		vi.adverb = TranslateAdverb(adverb)
	}

	if ctx.Passive.Enabled {
		return buildPassive(ctx, verb, adverb, aspect, vi, advisories)
	}

	negative := ctx.Polarity == PolarityNegative
	question := ctx.Polarity == PolarityQuestion
	aux, main := activeChain(ctx.Subject, ctx.Tense, aspect, regularParadigm(verb), negative || question)
	tokens, terminal := arrange(clause{
		subject:  ctx.Subject,
		aux:      aux,
		main:     token{main, roleVerb},
		adverb:   adverb,
		negative: negative,
		question: question,
	})

	vi.negative = negative
	vi.question = question
	return finish(highlight(tokens, terminal), plainText(tokens, terminal), renderVietnamese(vi), advisories)
}

// buildPassive assembles a passive clause. Its polarity comes from the
// passive options; stative and negative-connotation verbs only warn.
func buildPassive(ctx BuildContext, verb, adverb string, aspect Aspect, vi viClause, advisories []*Advisory) HeroResult {
	p := ctx.Passive
	if IsStative(verb) {
		advisories = append(advisories, advise(ErrStativePassive,
			"Stative verb %q should not be used in passive voice.", normalizeWord(verb)))
	}
	if IsNegativeConnotation(verb) {
		advisories = append(advisories, advise(ErrNegativePassive,
			"Verb %q has a negative connotation; its passive reads as adverse (\"bị\").", normalizeWord(verb)))
	}

	var agent string
	if p.ByAgent {
		agent = strings.TrimSpace(p.AgentText)
	}
	negative := p.Polarity == PolarityNegative
	tokens, terminal := arrange(clause{
		subject:  ctx.Subject,
		aux:      passiveChain(ctx.Subject, ctx.Tense, aspect, p.Variant, p.AllowPerfectProgressive),
		main:     token{FormRegularPast(verb), roleVerb},
		adverb:   adverb,
		agent:    agent,
		negative: negative,
		question: p.Question,
	})

	marker := PassiveMarkerFor(p.Marker, p.Variant, verb)
	vi.passiveMarker = marker
	vi.agent = agent
	vi.negative = negative
	vi.question = p.Question

	english := appendPassiveMarker(highlight(tokens, terminal), marker)
	return finish(english, plainText(tokens, terminal), renderVietnamese(vi), advisories)
}

func buildAdjective(ctx BuildContext) HeroResult {
	adj := normalizeWord(ctx.Adjective)
	if adj == "" {
		return missingResult(ClassAdjective)
	}
	aspect, notOffered := offeredAspect(ClassAdjective, ctx.Tense, ctx.Aspect)

	negative := ctx.Polarity == PolarityNegative
	question := ctx.Polarity == PolarityQuestion
	tokens, terminal := arrange(clause{
		subject:  ctx.Subject,
		aux:      copularChain(ctx.Subject, ctx.Tense, aspect),
		main:     token{adj, roleAdjective},
		negative: negative,
		question: question,
	})
	vi := renderVietnamese(viClause{
		subject:   ctx.Subject,
		particle:  TemporalParticle(ctx.Tense, aspect, false),
		verb:      "là",
		adjective: TranslateAdjective(adj),
		negative:  negative,
		question:  question,
	})
	return finish(highlight(tokens, terminal), plainText(tokens, terminal), vi, collect(nil, notOffered))
}

// buildNoun puts the noun, with its article, in the object slot of a
// possessive "have" clause built on the verb chain.
func buildNoun(ctx BuildContext) HeroResult {
	noun := strings.TrimSpace(ctx.Noun)
	if noun == "" {
		return missingResult(ClassNoun)
	}
	aspect, notOffered := offeredAspect(ClassNoun, ctx.Tense, ctx.Aspect)
	aspect, stative := stativeGuard(haveParadigm.base, aspect)

	negative := ctx.Polarity == PolarityNegative
	question := ctx.Polarity == PolarityQuestion
	aux, have := activeChain(ctx.Subject, ctx.Tense, aspect, haveParadigm, negative || question)
	// the possessive verb joins the chain so the noun phrase stays one token
	aux = append(aux, have)
	tokens, terminal := arrange(clause{
		subject:  ctx.Subject,
		aux:      aux,
		main:     token{withArticle(noun), roleNoun},
		negative: negative,
		question: question,
	})
	vi := renderVietnamese(viClause{
		subject:  ctx.Subject,
		particle: TemporalParticle(ctx.Tense, aspect, false),
		verb:     "có",
		noun:     TranslateNoun(noun),
		negative: negative,
		question: question,
	})
	return finish(highlight(tokens, terminal), plainText(tokens, terminal), vi, collect(nil, notOffered, stative))
}

// buildPreposition places "<prep> <article> <noun>" after a be-chain; the
// noun defaults to "school".
func buildPreposition(ctx BuildContext) HeroResult {
	prep := strings.TrimSpace(ctx.Preposition)
	if prep == "" {
		return missingResult(ClassPreposition)
	}
	noun := strings.TrimSpace(ctx.Noun)
	if noun == "" {
		noun = defaultPlaceNoun
	}
	aspect, notOffered := offeredAspect(ClassPreposition, ctx.Tense, ctx.Aspect)

	negative := ctx.Polarity == PolarityNegative
	question := ctx.Polarity == PolarityQuestion
	tokens, terminal := arrange(clause{
		subject:  ctx.Subject,
		aux:      copularChain(ctx.Subject, ctx.Tense, aspect),
		main:     token{prep + " " + withArticle(noun), rolePreposition},
		negative: negative,
		question: question,
	})
	vi := renderVietnamese(viClause{
		subject:     ctx.Subject,
		particle:    TemporalParticle(ctx.Tense, aspect, false),
		verb:        "ở",
		preposition: TranslatePreposition(prep) + " " + TranslateNoun(noun),
		negative:    negative,
		question:    question,
	})
	return finish(highlight(tokens, terminal), plainText(tokens, terminal), vi, collect(nil, notOffered))
}
