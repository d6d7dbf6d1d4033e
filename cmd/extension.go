package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Environment variables mirroring the global flags. They are read when the
// flags are not set, and passed to extensions.
const (
	EnvDataFile   = "LEV_DATA_FILE"
	EnvConfigFile = "LEV_CONFIG_FILE"
	EnvVerbose    = "LEV_VERBOSE"
)

// RunExtension attempts to find and execute an external lev-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "lev-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logrus.WithError(err).WithField("extension", name).Debug("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags as environment variables.
func extensionEnv() []string {
	return []string{
		EnvDataFile + "=" + DataFile(),
		EnvConfigFile + "=" + ConfigFile(),
		EnvVerbose + "=" + strconv.FormatBool(Verbose()),
	}
}
