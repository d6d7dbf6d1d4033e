package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/leverage"
	"github.com/etnz/leverage/advisor"
	"github.com/google/subcommands"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	stressFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `lev assist [-crash <ratio>] [-hike <ratio>] [<question>]

  Starts an interactive session with the AI assistant. The assistant reads the
  dashboard under the given scenario and can run its own stress tests.
  Type 'bye' to exit.
`
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	base, err := c.Stress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	eval := func(stress leverage.Stress) (*leverage.Dashboard, error) { return evaluate(s, stress) }

	client, err := advisor.NewClient(ctx, advisor.APIKey())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := advisor.NewAssistant(stdout, os.Stdin, config.ModelOrDefault(advisor.DefaultModel), advisor.NewTools(base, eval))
	if err := a.Start(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the assistant: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := a.Run(ctx, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Assistant failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
