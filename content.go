package grammar

import (
	"sort"
	"strconv"
	"strings"
)

// Content pack entries. Every gloss is optional.

type VerbForm struct {
	Base string `json:"base"`
	Past string `json:"past"`
	PP   string `json:"pp"`
	Vi   string `json:"vi,omitempty"`
}

type AdjItem struct {
	Word    string `json:"word"`
	Vi      string `json:"vi,omitempty"`
	Subtype string `json:"subtype,omitempty"` // base, ed, ing
}

type AdvItem struct {
	Word  string `json:"word"`
	Vi    string `json:"vi,omitempty"`
	Klass string `json:"klass,omitempty"` // frequency, manner, degree, time, place, linking
}

type NounItem struct {
	Word string `json:"word"`
	Type string `json:"type"` // sing, plu, unc
	Vi   string `json:"vi,omitempty"`
}

type PrepItem struct {
	Word string `json:"word"`
	Vi   string `json:"vi,omitempty"`
	Cat  string `json:"cat,omitempty"` // time, place, move, other
	Ex   string `json:"ex,omitempty"`
}

type VocabItem struct {
	Word string `json:"word"`
	Vi   string `json:"vi,omitempty"`
	POS  string `json:"pos,omitempty"`
}

// Group is a named collection of units.
type Group struct {
	ID int    `json:"id"`
	Vi string `json:"vi"`
	En string `json:"en"`
}

// Packs is the unit of import and export. A file may carry any subset of
// the pack kinds.
type Packs struct {
	VerbForms []VerbForm  `json:"verb_forms,omitempty"`
	Adjs      []AdjItem   `json:"adjs,omitempty"`
	Advs      []AdvItem   `json:"advs,omitempty"`
	Nouns     []NounItem  `json:"nouns,omitempty"`
	Preps     []PrepItem  `json:"preps,omitempty"`
	Vocab     []VocabItem `json:"vocab,omitempty"`
	Units     []Unit      `json:"units,omitempty"`
	Groups    []Group     `json:"groups,omitempty"`
}

const (
	ManifestKind    = "thaytai-pack"
	ManifestVersion = "1.0"
)

// Manifest wraps packs for export; Load accepts both forms.
type Manifest struct {
	Kind     string `json:"kind"`
	Version  string `json:"version"`
	Contains Packs  `json:"contains"`
}

// mergeBy merges incoming into existing. An entry whose key is already
// present is patched in place, keeping the existing position; new keys are
// appended in order.
func mergeBy[T any, K comparable](existing, incoming []T, key func(T) K, patch func(old, upd T) T) []T {
	index := make(map[K]int, len(existing))
	for i, e := range existing {
		index[key(e)] = i
	}
	for _, in := range incoming {
		k := key(in)
		if i, ok := index[k]; ok {
			existing[i] = patch(existing[i], in)
			continue
		}
		index[k] = len(existing)
		existing = append(existing, in)
	}
	return existing
}

// or returns upd when it is non-empty, old otherwise.
func or(old, upd string) string {
	if upd != "" {
		return upd
	}
	return old
}

func replace[T any](_, upd T) T { return upd }

// merge folds p into the receiver. Vocabulary entries only take the
// non-empty fields of a later duplicate; units and groups are replaced
// whole.
func (dst *Packs) merge(p Packs) {
	dst.VerbForms = mergeBy(dst.VerbForms, p.VerbForms,
		func(v VerbForm) string { return v.Base },
		func(old, upd VerbForm) VerbForm {
			old.Past, old.PP, old.Vi = or(old.Past, upd.Past), or(old.PP, upd.PP), or(old.Vi, upd.Vi)
			return old
		})
	dst.Adjs = mergeBy(dst.Adjs, p.Adjs,
		func(a AdjItem) string { return a.Word },
		func(old, upd AdjItem) AdjItem {
			old.Vi, old.Subtype = or(old.Vi, upd.Vi), or(old.Subtype, upd.Subtype)
			return old
		})
	dst.Advs = mergeBy(dst.Advs, p.Advs,
		func(a AdvItem) string { return a.Word },
		func(old, upd AdvItem) AdvItem {
			old.Vi, old.Klass = or(old.Vi, upd.Vi), or(old.Klass, upd.Klass)
			return old
		})
	dst.Nouns = mergeBy(dst.Nouns, p.Nouns,
		func(n NounItem) [2]string { return [2]string{n.Word, n.Type} },
		func(old, upd NounItem) NounItem {
			old.Vi = or(old.Vi, upd.Vi)
			return old
		})
	dst.Preps = mergeBy(dst.Preps, p.Preps,
		func(pr PrepItem) string { return pr.Word },
		func(old, upd PrepItem) PrepItem {
			old.Vi, old.Cat, old.Ex = or(old.Vi, upd.Vi), or(old.Cat, upd.Cat), or(old.Ex, upd.Ex)
			return old
		})
	dst.Vocab = mergeBy(dst.Vocab, p.Vocab,
		func(v VocabItem) [2]string { return [2]string{v.Word, v.POS} },
		func(old, upd VocabItem) VocabItem {
			old.Vi = or(old.Vi, upd.Vi)
			return old
		})
	dst.Units = mergeBy(dst.Units, p.Units, func(u Unit) int { return u.ID }, replace[Unit])
	dst.Groups = mergeBy(dst.Groups, p.Groups, func(g Group) int { return g.ID }, replace[Group])
}

// Content is the merged, read-only view over every loaded pack. It is safe
// for concurrent readers once Load has returned.
type Content struct {
	packs Packs
	units map[int]Unit
}

func newContent(p Packs) *Content {
	c := &Content{packs: p, units: make(map[int]Unit, len(p.Units))}
	for i := range c.packs.Units {
		u := &c.packs.Units[i]
		u.Class = ResolveWordClass(u.Tags)
		c.units[u.ID] = *u
	}
	sort.Slice(c.packs.Units, func(i, j int) bool { return c.packs.Units[i].ID < c.packs.Units[j].ID })
	sort.Slice(c.packs.Groups, func(i, j int) bool { return c.packs.Groups[i].ID < c.packs.Groups[j].ID })
	return c
}

// Unit returns the unit with the given id.
func (c *Content) Unit(id int) (Unit, bool) {
	u, ok := c.units[id]
	return u, ok
}

// Units returns every unit ordered by id.
func (c *Content) Units() []Unit {
	return append([]Unit(nil), c.packs.Units...)
}

// UnitsInGroup returns the units of one group ordered by id.
func (c *Content) UnitsInGroup(groupID int) []Unit {
	var out []Unit
	for _, u := range c.packs.Units {
		if u.GroupID == groupID {
			out = append(out, u)
		}
	}
	return out
}

// Groups returns every group ordered by id.
func (c *Content) Groups() []Group {
	return append([]Group(nil), c.packs.Groups...)
}

// Pack names accepted by Search.
var packNames = []string{"verb_forms", "adjs", "advs", "nouns", "preps", "vocab", "units", "groups"}

// Hit is one search result.
type Hit struct {
	Pack string `json:"pack"`
	Key  string `json:"key"`
	Vi   string `json:"vi,omitempty"`
}

// Search returns the entries whose English key or Vietnamese gloss
// contains query, ignoring case. An empty pack searches every pack; an
// unknown one matches nothing.
func (c *Content) Search(query, pack string) []Hit {
	q := strings.ToLower(NormalizeText(query))
	var out []Hit
	// match tests key, vi and any extra texts
	match := func(name, key, vi string, texts ...string) {
		if pack != "" && pack != name {
			return
		}
		for _, t := range append([]string{key, vi}, texts...) {
			if strings.Contains(strings.ToLower(t), q) {
				out = append(out, Hit{Pack: name, Key: key, Vi: vi})
				return
			}
		}
	}
	p := &c.packs
	for _, v := range p.VerbForms {
		match("verb_forms", v.Base, v.Vi)
	}
	for _, a := range p.Adjs {
		match("adjs", a.Word, a.Vi)
	}
	for _, a := range p.Advs {
		match("advs", a.Word, a.Vi)
	}
	for _, n := range p.Nouns {
		match("nouns", n.Word, n.Vi)
	}
	for _, pr := range p.Preps {
		match("preps", pr.Word, pr.Vi)
	}
	for _, v := range p.Vocab {
		match("vocab", v.Word, v.Vi)
	}
	for _, u := range p.Units {
		match("units", strconv.Itoa(u.ID), u.NameVi, u.NameEn)
	}
	for _, g := range p.Groups {
		match("groups", strconv.Itoa(g.ID), g.Vi, g.En)
	}
	return out
}

// IsPackName reports whether name is a pack kind Search understands.
func IsPackName(name string) bool {
	for _, n := range packNames {
		if n == name {
			return true
		}
	}
	return false
}

// Export returns the merged content as a manifest.
func (c *Content) Export() Manifest {
	return Manifest{Kind: ManifestKind, Version: ManifestVersion, Contains: c.packs}
}
