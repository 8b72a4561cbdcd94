package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thaytai/grammar"
	"github.com/thaytai/grammar/internal/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "hero",
		Short:         "English hero sentences for Vietnamese learners",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newBuildCmd(),
		newFormsCmd(),
		newUnitsCmd(),
	)
	return root
}

type buildFlags struct {
	dataDir string
	unitID  int
	tags    []string
	plain   bool

	subject, verb, adjective, adverb, noun, preposition string
	tense, aspect, polarity                             string

	passive         bool
	passiveNegative bool
	passiveQuestion bool
	agent           string
	marker          string
	variant         string
	allowPerfProg   bool
}

func newBuildCmd() *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the hero sentence for a unit and a control selection",
		Example: `  hero build --verb work --subject he
  hero build --unit 48 --verb fire --tense past --passive --variant get
  hero build --tags topic:nouns --noun apple --polarity neg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := f.context()
			if err != nil {
				return err
			}
			r := renderer{plain: f.plain || !logging.IsTerminal(os.Stdout)}
			fmt.Fprint(cmd.OutOrStdout(), r.result(grammar.Build(ctx)))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.dataDir, "data", "data", "content pack directory, read when --unit is set")
	fl.IntVar(&f.unitID, "unit", 0, "unit id to build for")
	fl.StringSliceVar(&f.tags, "tags", nil, "unit tags, used when --unit is not set")
	fl.BoolVar(&f.plain, "plain", false, "print without colours")
	fl.StringVar(&f.subject, "subject", "he", "subject (I, you, we, they, he, she, it, N, Ns)")
	fl.StringVar(&f.verb, "verb", "", "base verb")
	fl.StringVar(&f.adjective, "adj", "", "adjective")
	fl.StringVar(&f.adverb, "adv", "", "adverb")
	fl.StringVar(&f.noun, "noun", "", "noun")
	fl.StringVar(&f.preposition, "prep", "", "preposition")
	fl.StringVar(&f.tense, "tense", "present", "present, past or future")
	fl.StringVar(&f.aspect, "aspect", "simple", "simple, prog, perf, perfprog or goingto")
	fl.StringVar(&f.polarity, "polarity", "affirm", "affirm, neg or question")
	fl.BoolVar(&f.passive, "passive", false, "build in passive voice")
	fl.BoolVar(&f.passiveNegative, "passive-neg", false, "negative passive")
	fl.BoolVar(&f.passiveQuestion, "passive-question", false, "passive yes/no question")
	fl.StringVar(&f.agent, "agent", "", "by-agent text; enables the by-phrase")
	fl.StringVar(&f.marker, "marker", "auto", "Vietnamese passive marker: auto, duoc or bi")
	fl.StringVar(&f.variant, "variant", "be", "passive auxiliary: be or get")
	fl.BoolVar(&f.allowPerfProg, "allow-perfprog", false, "keep 'being' in the passive perfect progressive")
	return cmd
}

func (f buildFlags) context() (grammar.BuildContext, error) {
	var ctx grammar.BuildContext
	if f.unitID != 0 {
		content, _, err := grammar.Load(f.dataDir)
		if err != nil {
			return ctx, err
		}
		u, ok := content.Unit(f.unitID)
		if !ok {
			return ctx, fmt.Errorf("unit %d not found in %s", f.unitID, f.dataDir)
		}
		ctx.Unit = u
	} else {
		ctx.Unit = grammar.Unit{Tags: f.tags}
	}

	subj, ok := grammar.ParseSubject(f.subject)
	if !ok {
		return ctx, fmt.Errorf("unknown subject %q", f.subject)
	}
	ctx.Subject = subj

	var err error
	if ctx.Tense, err = grammar.ParseTense(f.tense); err != nil {
		return ctx, err
	}
	if ctx.Aspect, err = grammar.ParseAspect(f.aspect); err != nil {
		return ctx, err
	}
	if ctx.Polarity, err = grammar.ParsePolarity(f.polarity); err != nil {
		return ctx, err
	}

	if f.passive {
		ctx.Passive = grammar.PassiveOptions{
			Enabled:                 true,
			Question:                f.passiveQuestion,
			ByAgent:                 f.agent != "",
			AgentText:               f.agent,
			AllowPerfectProgressive: f.allowPerfProg,
		}
		if f.passiveNegative {
			ctx.Passive.Polarity = grammar.PolarityNegative
		}
		if ctx.Passive.Marker, err = grammar.ParsePassiveMarker(f.marker); err != nil {
			return ctx, err
		}
		if ctx.Passive.Variant, err = grammar.ParsePassiveVariant(f.variant); err != nil {
			return ctx, err
		}
	}

	ctx.Verb = f.verb
	ctx.Adjective = f.adjective
	ctx.Adverb = f.adverb
	ctx.Noun = f.noun
	ctx.Preposition = f.preposition
	return ctx, nil
}

func newFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms <verb>...",
		Short: "Print the regular inflections of one or more verbs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "BASE\tTHIRD\tPROGRESSIVE\tPAST\tPARTICIPLE\tNOTES")
			for _, verb := range args {
				f := grammar.Forms(verb)
				var notes []string
				if f.Stative {
					notes = append(notes, "stative")
				}
				if f.Negative {
					notes = append(notes, "adverse")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					f.Base, f.Third, f.Progressive, f.Past, f.Participle, strings.Join(notes, ","))
			}
			return tw.Flush()
		},
	}
}

func newUnitsCmd() *cobra.Command {
	var dataDir string
	var group int

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List grammar units with their hero word class",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, report, err := grammar.Load(dataDir)
			if err != nil {
				return err
			}
			units := content.Units()
			if group != 0 {
				units = content.UnitsInGroup(group)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tGROUP\tCLASS\tNAME")
			for _, u := range units {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", u.ID, u.GroupID, u.WordClass(), u.NameEn)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			for _, e := range report.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %s\n", e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", "data", "content pack directory")
	cmd.Flags().IntVar(&group, "group", 0, "only units of this group")
	return cmd
}
