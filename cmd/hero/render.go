package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thaytai/grammar"
)

var (
	colorVerb    = lipgloss.Color("#fb4934")
	colorAdj     = lipgloss.Color("#8ec07c")
	colorAdv     = lipgloss.Color("#d3869b")
	colorNoun    = lipgloss.Color("#83a598")
	colorPrep    = lipgloss.Color("#fabd2f")
	colorDim     = lipgloss.Color("#928374")
	colorWarning = lipgloss.Color("#fe8019")
)

var tokenStyles = map[string]lipgloss.Style{
	grammar.ClassTokVerb:          lipgloss.NewStyle().Foreground(colorVerb).Bold(true),
	grammar.ClassTokAdjective:     lipgloss.NewStyle().Foreground(colorAdj),
	grammar.ClassTokAdverb:        lipgloss.NewStyle().Foreground(colorAdv).Italic(true),
	grammar.ClassTokNoun:          lipgloss.NewStyle().Foreground(colorNoun),
	grammar.ClassTokPreposition:   lipgloss.NewStyle().Foreground(colorPrep),
	grammar.ClassTokPassiveMarker: lipgloss.NewStyle().Foreground(colorDim),
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(colorDim).Width(4)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
)

// renderer prints results with token colours, or as plain text.
type renderer struct {
	plain bool
}

// markup renders English markup segment by segment.
func (r renderer) markup(english string) string {
	var sb strings.Builder
	for _, seg := range grammar.Segments(english) {
		style, ok := tokenStyles[seg.Class]
		if r.plain || !ok {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString(style.Render(seg.Text))
	}
	return sb.String()
}

func (r renderer) label(s string) string {
	if r.plain {
		return s + strings.Repeat(" ", max(0, 4-len(s)))
	}
	return labelStyle.Render(s)
}

func (r renderer) result(res grammar.HeroResult) string {
	var sb strings.Builder
	sb.WriteString(r.label("EN") + r.markup(res.English) + "\n")
	sb.WriteString(r.label("VI") + res.Vietnamese + "\n")
	if res.Warn != "" {
		w := res.Warn
		if !r.plain {
			w = warnStyle.Render(w)
		}
		sb.WriteString(r.label("!") + w + "\n")
	}
	return sb.String()
}
