package grammar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadReport tells how many pack files were merged and why the others
// were skipped.
type LoadReport struct {
	Files  int      `json:"files"`
	Errors []string `json:"errors,omitempty"`
}

// Load reads every *.json file of dataDir, in name order, and merges the
// packs they carry. A file is either a bare Packs object or a Manifest.
// Malformed files are skipped and reported; only an unreadable directory
// is an error.
func Load(dataDir string) (*Content, LoadReport, error) {
	var report LoadReport
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, report, fmt.Errorf("read data dir %s: %w", dataDir, err)
	}

	var merged Packs
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		path := filepath.Join(dataDir, e.Name())
		p, err := readPackFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping pack file")
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		merged.merge(p)
		report.Files++
		log.Debug().
			Str("file", path).
			Int("units", len(p.Units)).
			Int("verbs", len(p.VerbForms)).
			Int("vocab", len(p.Vocab)).
			Msg("pack merged")
	}

	c := newContent(merged)
	log.Info().
		Str("dir", dataDir).
		Int("files", report.Files).
		Int("skipped", len(report.Errors)).
		Int("units", len(c.packs.Units)).
		Int("groups", len(c.packs.Groups)).
		Msg("content loaded")
	return c, report, nil
}

// readPackFile decodes one file, unwrapping a manifest, and normalizes the
// words it carries.
func readPackFile(path string) (Packs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Packs{}, fmt.Errorf("open %s: %w", path, err)
	}
	p, err := DecodePacks(data)
	if err != nil {
		return Packs{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// DecodePacks parses a bare pack object or a manifest. A manifest of
// another kind is rejected.
func DecodePacks(data []byte) (Packs, error) {
	var probe struct {
		Kind     *string         `json:"kind"`
		Contains json.RawMessage `json:"contains"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Packs{}, fmt.Errorf("decode pack: %w", err)
	}

	body := data
	if probe.Kind != nil {
		if *probe.Kind != ManifestKind {
			return Packs{}, fmt.Errorf("unknown pack kind %q", *probe.Kind)
		}
		body = probe.Contains
	}
	var p Packs
	if err := json.Unmarshal(body, &p); err != nil {
		return Packs{}, fmt.Errorf("decode pack: %w", err)
	}
	p.normalize()
	return p, nil
}

func (p *Packs) normalize() {
	for i := range p.VerbForms {
		v := &p.VerbForms[i]
		v.Base, v.Vi = normalizeWord(v.Base), NormalizeText(v.Vi)
	}
	for i := range p.Adjs {
		a := &p.Adjs[i]
		a.Word, a.Vi = normalizeWord(a.Word), NormalizeText(a.Vi)
	}
	for i := range p.Advs {
		a := &p.Advs[i]
		a.Word, a.Vi = normalizeWord(a.Word), NormalizeText(a.Vi)
	}
	for i := range p.Nouns {
		n := &p.Nouns[i]
		n.Word, n.Vi = normalizeWord(n.Word), NormalizeText(n.Vi)
	}
	for i := range p.Preps {
		pr := &p.Preps[i]
		pr.Word, pr.Vi = normalizeWord(pr.Word), NormalizeText(pr.Vi)
	}
	for i := range p.Vocab {
		v := &p.Vocab[i]
		v.Word, v.Vi = normalizeWord(v.Word), NormalizeText(v.Vi)
	}
	for i := range p.Units {
		u := &p.Units[i]
		u.NameEn, u.NameVi = NormalizeText(u.NameEn), NormalizeText(u.NameVi)
	}
}
