package grammar

// activeChain returns the auxiliary chain and main-verb form of an active
// clause. withDo requests do-support for the simple present and past,
// the only cells whose chain is otherwise empty.
//
//	present  simple []            progressive [be]       perfect [have]
//	         perfect-progressive [have been]
//	past     simple []            progressive [was/were] perfect [had]
//	         perfect-progressive [had been]
//	future   simple [will]        going-to [be going to] progressive [will be]
//	         perfect [will have]  perfect-progressive [will have been]
func activeChain(subj Subject, tense Tense, aspect Aspect, p paradigm, withDo bool) ([]string, string) {
	have := AgreementForm(subj, AuxHave, TensePresent)
	switch tense {
	case TensePresent:
		switch aspect {
		case AspectProgressive:
			return []string{AgreementForm(subj, AuxBe, TensePresent)}, p.progressive
		case AspectPerfect:
			return []string{have}, p.participle
		case AspectPerfectProgressive:
			return []string{have, "been"}, p.progressive
		}
		if withDo {
			return []string{AgreementForm(subj, AuxDo, TensePresent)}, p.base
		}
		if AgreementOf(subj).thirdSingular() {
			return nil, p.third
		}
		return nil, p.base

	case TensePast:
		switch aspect {
		case AspectProgressive:
			return []string{AgreementForm(subj, AuxBe, TensePast)}, p.progressive
		case AspectPerfect:
			return []string{"had"}, p.participle
		case AspectPerfectProgressive:
			return []string{"had", "been"}, p.progressive
		}
		if withDo {
			return []string{"did"}, p.base
		}
		return nil, p.past

	default:
		switch aspect {
		case AspectGoingTo:
			return []string{AgreementForm(subj, AuxBe, TensePresent), "going", "to"}, p.base
		case AspectProgressive:
			return []string{"will", "be"}, p.progressive
		case AspectPerfect:
			return []string{"will", "have"}, p.participle
		case AspectPerfectProgressive:
			return []string{"will", "have", "been"}, p.progressive
		}
		return []string{"will"}, p.base
	}
}

// passiveChain returns the auxiliary chain preceding the participle of a
// passive clause. The be variant's perfect progressive carries "being"
// only when allowPerfProg is set and otherwise collapses to the perfect;
// the get variant replaces the be forms with get/gets/got/gotten/getting.
func passiveChain(subj Subject, tense Tense, aspect Aspect, variant PassiveVariant, allowPerfProg bool) []string {
	if variant == VariantGet {
		return getPassiveChain(subj, tense, aspect, allowPerfProg)
	}
	bePresent := AgreementForm(subj, AuxBe, TensePresent)
	have := AgreementForm(subj, AuxHave, TensePresent)

	switch tense {
	case TensePresent:
		switch aspect {
		case AspectProgressive:
			return []string{bePresent, "being"}
		case AspectPerfect:
			return []string{have, "been"}
		case AspectPerfectProgressive:
			if allowPerfProg {
				return []string{have, "been", "being"}
			}
			return []string{have, "been"}
		}
		return []string{bePresent}

	case TensePast:
		bePast := AgreementForm(subj, AuxBe, TensePast)
		switch aspect {
		case AspectProgressive:
			return []string{bePast, "being"}
		case AspectPerfect:
			return []string{"had", "been"}
		case AspectPerfectProgressive:
			if allowPerfProg {
				return []string{"had", "been", "being"}
			}
			return []string{"had", "been"}
		}
		return []string{bePast}

	default:
		switch aspect {
		case AspectGoingTo:
			return []string{bePresent, "going", "to", "be"}
		case AspectProgressive:
			return []string{"will", "be", "being"}
		case AspectPerfect:
			return []string{"will", "have", "been"}
		case AspectPerfectProgressive:
			if allowPerfProg {
				return []string{"will", "have", "been", "being"}
			}
			return []string{"will", "have", "been"}
		}
		return []string{"will", "be"}
	}
}

func getPassiveChain(subj Subject, tense Tense, aspect Aspect, allowPerfProg bool) []string {
	have := AgreementForm(subj, AuxHave, TensePresent)

	switch tense {
	case TensePresent:
		switch aspect {
		case AspectProgressive:
			return []string{AgreementForm(subj, AuxBe, TensePresent), "getting"}
		case AspectPerfect:
			return []string{have, "gotten"}
		case AspectPerfectProgressive:
			if allowPerfProg {
				return []string{have, "been", "getting"}
			}
			return []string{have, "gotten"}
		}
		if AgreementOf(subj).thirdSingular() {
			return []string{"gets"}
		}
		return []string{"get"}

	case TensePast:
		switch aspect {
		case AspectProgressive:
			return []string{AgreementForm(subj, AuxBe, TensePast), "getting"}
		case AspectPerfect:
			return []string{"had", "gotten"}
		case AspectPerfectProgressive:
			if allowPerfProg {
				return []string{"had", "been", "getting"}
			}
			return []string{"had", "gotten"}
		}
		return []string{"got"}

	default:
		switch aspect {
		case AspectGoingTo:
			return []string{AgreementForm(subj, AuxBe, TensePresent), "going", "to", "get"}
		case AspectProgressive:
			return []string{"will", "be", "getting"}
		case AspectPerfect:
			return []string{"will", "have", "gotten"}
		case AspectPerfectProgressive:
			if allowPerfProg {
				return []string{"will", "have", "been", "getting"}
			}
			return []string{"will", "have", "gotten"}
		}
		return []string{"will", "get"}
	}
}

// copularChain is the be-chain of adjective and preposition sentences,
// ending in the form of "be" that precedes the complement.
func copularChain(subj Subject, tense Tense, aspect Aspect) []string {
	switch tense {
	case TensePresent:
		switch aspect {
		case AspectProgressive:
			return []string{AgreementForm(subj, AuxBe, TensePresent), "being"}
		case AspectPerfect:
			return []string{AgreementForm(subj, AuxHave, TensePresent), "been"}
		}
		return []string{AgreementForm(subj, AuxBe, TensePresent)}

	case TensePast:
		switch aspect {
		case AspectProgressive:
			return []string{AgreementForm(subj, AuxBe, TensePast), "being"}
		case AspectPerfect:
			return []string{"had", "been"}
		}
		return []string{AgreementForm(subj, AuxBe, TensePast)}

	default:
		switch aspect {
		case AspectGoingTo:
			return []string{AgreementForm(subj, AuxBe, TensePresent), "going", "to", "be"}
		case AspectProgressive:
			return []string{"will", "be", "being"}
		case AspectPerfect:
			return []string{"will", "have", "been"}
		}
		return []string{"will", "be"}
	}
}
