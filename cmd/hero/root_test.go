package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thaytai/grammar"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestBuildCommand(t *testing.T) {
	out := run(t, "build", "--plain", "--verb", "work", "--subject", "he")
	assert.Equal(t, "EN  He works.\nVI  Anh ấy làm việc.\n", out)
}

func TestBuildCommandPassiveWithUnit(t *testing.T) {
	out := run(t, "build", "--plain", "--data", "../../data", "--unit", "48",
		"--verb", "fire", "--subject", "it", "--tense", "past", "--passive", "--variant", "get")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "EN  It got fired. (bị)", lines[0])
	assert.Equal(t, "VI  Nó đã bị sa thải.", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "!   "))
}

func TestBuildCommandRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"build", "--tense", "soon"},
		{"build", "--subject", "Mary"},
		{"build", "--passive", "--marker", "bởi"},
		{"build", "--unit", "999", "--data", "../../data"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "%v", args)
	}
}

func TestFormsCommand(t *testing.T) {
	out := run(t, "forms", "stop", "know")
	assert.Contains(t, out, "stopping")
	assert.Contains(t, out, "stopped")
	assert.Contains(t, out, "stative")
}

func TestUnitsCommand(t *testing.T) {
	out := run(t, "units", "--data", "../../data", "--group", "12")
	assert.Contains(t, out, "34")
	assert.Contains(t, out, "adjective")
	assert.NotContains(t, out, "Present Simple")
}

func TestRendererPlain(t *testing.T) {
	r := renderer{plain: true}
	res := grammar.Build(grammar.BuildContext{
		Unit:     grammar.Unit{Tags: []string{"topic:adverbs"}},
		Subject:  grammar.SubjectShe,
		Adverb:   "often",
		Tense:    grammar.TensePresent,
		Aspect:   grammar.AspectSimple,
		Polarity: grammar.PolarityAffirmative,
	})
	assert.Equal(t, res.Plain, r.markup(res.English))
}
