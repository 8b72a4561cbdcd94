package grammar

// Subject is one of the nine enumerated sentence subjects. N and Ns stand
// for a generic singular and plural noun subject.
type Subject string

const (
	SubjectI    Subject = "I"
	SubjectYou  Subject = "you"
	SubjectWe   Subject = "we"
	SubjectThey Subject = "they"
	SubjectHe   Subject = "he"
	SubjectShe  Subject = "she"
	SubjectIt   Subject = "it"
	SubjectN    Subject = "N"
	SubjectNs   Subject = "Ns"
)

// Subjects lists every subject in display order.
var Subjects = []Subject{
	SubjectI, SubjectYou, SubjectWe, SubjectThey,
	SubjectHe, SubjectShe, SubjectIt, SubjectN, SubjectNs,
}

// Number is grammatical number.
type Number int

const (
	Singular Number = iota
	Plural
)

// Agreement is the person/number class a subject agrees with.
type Agreement struct {
	Person int // 1, 2 or 3
	Number Number
}

type subjectInfo struct {
	agreement  Agreement
	vietnamese string
}

var subjectTable = map[Subject]subjectInfo{
	SubjectI:    {Agreement{1, Singular}, "Tôi"},
	SubjectYou:  {Agreement{2, Plural}, "Bạn"},
	SubjectWe:   {Agreement{1, Plural}, "Chúng tôi"},
	SubjectThey: {Agreement{3, Plural}, "Họ"},
	SubjectHe:   {Agreement{3, Singular}, "Anh ấy"},
	SubjectShe:  {Agreement{3, Singular}, "Cô ấy"},
	SubjectIt:   {Agreement{3, Singular}, "Nó"},
	SubjectN:    {Agreement{3, Singular}, "Người đó"},
	SubjectNs:   {Agreement{3, Plural}, "Những người đó"},
}

// ParseSubject resolves s to a known subject. "I", "N" and "Ns" are
// matched exactly; pronouns are matched case-insensitively.
func ParseSubject(s string) (Subject, bool) {
	if _, ok := subjectTable[Subject(s)]; ok {
		return Subject(s), true
	}
	switch w := normalizeWord(s); w {
	case "i":
		return SubjectI, true
	case "n":
		return SubjectN, true
	case "ns":
		return SubjectNs, true
	default:
		if _, ok := subjectTable[Subject(w)]; ok {
			return Subject(w), true
		}
	}
	return "", false
}

// AgreementOf returns the agreement class of subj. "you" agrees as a
// plural in every tense (you are, you were). Unknown subjects fall back
// to third person plural, which selects the unmarked forms.
func AgreementOf(subj Subject) Agreement {
	if info, ok := lookupSubject(subj); ok {
		return info.agreement
	}
	return Agreement{3, Plural}
}

// VietnamesePronoun returns the Vietnamese subject for subj, echoing the
// raw value when the subject is not in the table.
func VietnamesePronoun(subj Subject) string {
	if info, ok := lookupSubject(subj); ok {
		return info.vietnamese
	}
	return string(subj)
}

// lookupSubject finds subj in the table after the same case and space
// folding ParseSubject applies.
func lookupSubject(subj Subject) (subjectInfo, bool) {
	canon, ok := ParseSubject(string(subj))
	if !ok {
		return subjectInfo{}, false
	}
	return subjectTable[canon], true
}

func (a Agreement) thirdSingular() bool {
	return a.Person == 3 && a.Number == Singular
}

func (a Agreement) firstSingular() bool {
	return a.Person == 1 && a.Number == Singular
}
