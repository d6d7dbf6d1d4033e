package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/leverage/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	stressFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard headline figures" }
func (*summaryCmd) Usage() string {
	return `lev summary [-crash <ratio>] [-hike <ratio>]

  Displays net worth, liquidity, monthly cash flow, returns, FIRE progress and
  the alerts of the leveraged positions, optionally under a stress scenario.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := c.dashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(d))
	return subcommands.ExitSuccess
}

type positionsCmd struct {
	stressFlags
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the risk of every leveraged position" }
func (*positionsCmd) Usage() string {
	return `lev positions [-crash <ratio>] [-hike <ratio>]

  Displays every loan with its ratio, top-up line, danger line and status,
  then the holdings and the net investment equity.
`
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := c.dashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PositionsMarkdown(d))
	return subcommands.ExitSuccess
}

type allocationCmd struct {
	stressFlags
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display assets and liabilities by category" }
func (*allocationCmd) Usage() string {
	return `lev allocation [-crash <ratio>] [-hike <ratio>]

  Displays the breakdown of assets and liabilities by category.
`
}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := c.dashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(d))
	return subcommands.ExitSuccess
}
