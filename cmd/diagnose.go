package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/leverage/advisor"
	"github.com/google/subcommands"
)

type diagnoseCmd struct {
	stressFlags
	ai bool
}

func (*diagnoseCmd) Name() string     { return "diagnose" }
func (*diagnoseCmd) Synopsis() string { return "diagnose the financial health and risk with AI" }
func (*diagnoseCmd) Usage() string {
	return `lev diagnose [-ai] [-crash <ratio>] [-hike <ratio>]

  Prints the diagnosis prompt built from the dashboard. With -ai, sends it to
  Gemini (GEMINI_API_KEY) and prints the answer instead.
`
}

func (c *diagnoseCmd) SetFlags(f *flag.FlagSet) {
	c.stressFlags.SetFlags(f)
	f.BoolVar(&c.ai, "ai", false, "send the prompt to Gemini and print the diagnosis")
}

func (c *diagnoseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, d, err := c.dashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	prompt := advisor.DiagnosisPrompt(s, d)
	if !c.ai {
		fmt.Fprint(stdout, prompt)
		return subcommands.ExitSuccess
	}

	a, err := advisor.New(ctx, advisor.APIKey(), config.ModelOrDefault(advisor.DefaultModel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := a.Diagnose(ctx, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(report)
	return subcommands.ExitSuccess
}
