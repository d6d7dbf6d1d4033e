package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/leverage"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup of the snapshot" }
func (*exportCmd) Usage() string {
	return `lev export [-o <file>]

  Writes a backup of the snapshot, by default to leverage_backup_<date>.json.
  Use -o - to write to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file, - for the standard output")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	t := now()

	if c.output == "-" {
		if err := leverage.Export(stdout, s, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = leverage.ExportFileName(t)
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := leverage.Export(out, s, t); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Exported to %s\n", name)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the snapshot with a backup" }
func (*importCmd) Usage() string {
	return `lev import <file>

  Replaces the snapshot with the content of a backup. The backup must contain
  assets and liabilities, otherwise nothing changes.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import expects exactly one backup file")
		return subcommands.ExitUsageError
	}
	current, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	s, err := leverage.Import(in, current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if err := saveSnapshot(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "restore the sample snapshot" }
func (*resetCmd) Usage() string {
	return `lev reset

  Deletes the snapshot file. The sample snapshot is used until the next edit.
`
}

func (*resetCmd) SetFlags(_ *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := leverage.Reset(DataFile()); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Reset %s\n", DataFile())
	return subcommands.ExitSuccess
}
