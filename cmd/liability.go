package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/leverage"
	"github.com/google/subcommands"
)

type setLiabilityCmd struct {
	id    string
	field string
	value string
}

func (*setLiabilityCmd) Name() string     { return "set-liability" }
func (*setLiabilityCmd) Synopsis() string { return "update one field of a liability" }
func (*setLiabilityCmd) Usage() string {
	return `lev set-liability -id <id> -field <field> -value <value>

  Updates one field of a liability. Fields are: ` + strings.Join(leverage.LiabilityFields, ", ") + `.
  Rates and thresholds accept fractions (0.035) or percentages (3.5%).
`
}

func (c *setLiabilityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Liability id")
	f.StringVar(&c.field, "field", "principal", "Field to update")
	f.StringVar(&c.value, "value", "", "New value")
}

func (c *setLiabilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err = s.UpdateLiability(c.id, c.field, c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating liability: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveSnapshot(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type setIncomeCmd struct {
	field string
	value string
}

func (*setIncomeCmd) Name() string     { return "set-income" }
func (*setIncomeCmd) Synopsis() string { return "update one monthly income or expense figure" }
func (*setIncomeCmd) Usage() string {
	return `lev set-income -field <field> -value <amount>

  Updates one income or expense figure. Fields are: ` + strings.Join(leverage.IncomeExpenseFields, ", ") + `.
`
}

func (c *setIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.field, "field", "", "Field to update")
	f.StringVar(&c.value, "value", "", "New amount")
}

func (c *setIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.field == "" {
		fmt.Fprintln(os.Stderr, "Error: -field is required")
		return subcommands.ExitUsageError
	}
	s, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err = s.UpdateIncomeExpense(c.field, c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating %s: %v\n", c.field, err)
		return subcommands.ExitFailure
	}
	if err := saveSnapshot(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
