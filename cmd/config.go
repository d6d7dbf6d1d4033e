package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/leverage"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the content of the optional YAML configuration file.
type Config struct {
	Currency   string                     `yaml:"currency"`
	Model      string                     `yaml:"model"`
	Stress     StressConfig               `yaml:"stress"`
	Thresholds map[string]ThresholdConfig `yaml:"thresholds"`
}

// StressConfig is the default stress scenario.
type StressConfig struct {
	Crash float64 `yaml:"crash"`
	Hike  float64 `yaml:"hike"`
}

// ThresholdConfig overrides the default thresholds of a liability type. Zero
// values keep the default.
type ThresholdConfig struct {
	Maintenance float64 `yaml:"maintenance"`
	Liquidate   float64 `yaml:"liquidate"`
}

// LoadConfig reads the configuration at path. A missing file is an empty
// configuration.
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("config", path).Debug("no configuration file")
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decoding configuration %q: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Currency != "" {
		if err := leverage.ValidateCurrency(c.Currency); err != nil {
			return err
		}
	}
	if _, err := c.ThresholdTable(); err != nil {
		return err
	}
	return c.DefaultStress().Validate()
}

// DefaultStress returns the configured default scenario.
func (c Config) DefaultStress() leverage.Stress {
	return leverage.Stress{
		MarketCrash:  leverage.R(c.Stress.Crash),
		InterestHike: leverage.R(c.Stress.Hike),
	}
}

// ThresholdTable returns the default threshold table with the configured
// overrides.
func (c Config) ThresholdTable() (leverage.ThresholdTable, error) {
	table := leverage.DefaultThresholds()
	for name, tc := range c.Thresholds {
		typ, err := leverage.ParseLiabilityType(name)
		if err != nil {
			return nil, fmt.Errorf("thresholds: %w", err)
		}
		th := table[typ]
		if tc.Maintenance != 0 {
			th.Maintenance = leverage.R(tc.Maintenance)
		}
		if tc.Liquidate != 0 {
			th.Liquidate = leverage.R(tc.Liquidate)
		}
		table[typ] = th
	}
	return table, nil
}

// ModelOrDefault returns the Gemini model to use.
func (c Config) ModelOrDefault(fallback string) string {
	if c.Model == "" {
		return fallback
	}
	return c.Model
}
