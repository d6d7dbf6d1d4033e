// Package cmd implements the lev command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/leverage"
	"github.com/etnz/leverage/date"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	c.Register(&topicCmd{}, "help")

	c.Register(&summaryCmd{}, "dashboard")
	c.Register(&positionsCmd{}, "dashboard")
	c.Register(&allocationCmd{}, "dashboard")
	c.Register(&queryCmd{}, "dashboard")

	c.Register(&addAssetCmd{}, "data")
	c.Register(&setAssetCmd{}, "data")
	c.Register(&deleteAssetCmd{}, "data")
	c.Register(&setLiabilityCmd{}, "data")
	c.Register(&setIncomeCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&resetCmd{}, "data")

	c.Register(&diagnoseCmd{}, "advisory")
	c.Register(&assistCmd{}, "advisory")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	DefaultDataFile   = "leverage.json"
	DefaultConfigFile = "lev.yaml"
)

var (
	dataFile   = flag.String("data", "", "Path to the snapshot file (default $"+EnvDataFile+" or "+DefaultDataFile+")")
	configFile = flag.String("config", "", "Path to the YAML configuration file (default $"+EnvConfigFile+" or "+DefaultConfigFile+")")
	verbose    = flag.Bool("v", false, "Print debug logs")
	raw        = flag.Bool("raw", false, "Print markdown as is, without terminal styling")
)

// config is the configuration loaded by Setup.
var config Config

// stdout receives the command outputs.
var stdout io.Writer = os.Stdout

// now is the clock of the commands.
var now = time.Now

// DataFile returns the path of the snapshot file.
func DataFile() string { return firstNonEmpty(*dataFile, os.Getenv(EnvDataFile), DefaultDataFile) }

// ConfigFile returns the path of the configuration file.
func ConfigFile() string {
	return firstNonEmpty(*configFile, os.Getenv(EnvConfigFile), DefaultConfigFile)
}

// Verbose reports whether debug logs are enabled.
func Verbose() bool {
	if *verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// Setup prepares the environment once the flags are parsed: it loads the .env
// file, configures the logs and reads the configuration.
func Setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if Verbose() {
		logrus.SetLevel(logrus.DebugLevel)
	}
	leverage.SetLogger(logrus.WithField("data", DataFile()))

	cfg, err := LoadConfig(ConfigFile())
	if err != nil {
		return err
	}
	config = cfg
	return nil
}

// loadSnapshot reads the snapshot from the data file.
func loadSnapshot() (leverage.Snapshot, error) {
	return leverage.LoadSnapshot(DataFile())
}

// saveSnapshot writes the snapshot to the data file.
func saveSnapshot(s leverage.Snapshot) error {
	s, err := leverage.SaveSnapshot(DataFile(), s, now())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved %s at %s\n", DataFile(), s.LastSavedTime)
	return nil
}

// evaluate computes the dashboard of s under stress with the configured
// thresholds and currency.
func evaluate(s leverage.Snapshot, stress leverage.Stress) (*leverage.Dashboard, error) {
	table, err := config.ThresholdTable()
	if err != nil {
		return nil, err
	}
	if s.Currency == "" {
		s.Currency = config.Currency
	}
	return leverage.NewDashboard(s, stress, table, date.Of(now())), nil
}

// printMarkdown prints md to stdout, styled for the terminal unless -raw.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		logrus.WithError(err).Debug("cannot style markdown")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logrus.WithError(err).Debug("cannot style markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
