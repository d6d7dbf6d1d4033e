package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/leverage"
)

// stressFlags are the scenario flags shared by dashboard and advisory commands.
type stressFlags struct {
	crash string
	hike  string
}

func (s *stressFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.crash, "crash", "", "Market crash applied to investments, e.g. 0.2 or 20% (default from the configuration)")
	f.StringVar(&s.hike, "hike", "", "Interest rate hike, e.g. 0.01 or 1% (default from the configuration)")
}

// Stress returns the scenario, flags taking precedence over the configuration.
func (s *stressFlags) Stress() (leverage.Stress, error) {
	stress := config.DefaultStress()
	var err error
	if s.crash != "" {
		if stress.MarketCrash, err = leverage.ParseRatio(s.crash); err != nil {
			return stress, fmt.Errorf("-crash: %w", err)
		}
	}
	if s.hike != "" {
		if stress.InterestHike, err = leverage.ParseRatio(s.hike); err != nil {
			return stress, fmt.Errorf("-hike: %w", err)
		}
	}
	return stress, stress.Validate()
}

// dashboard loads the snapshot and evaluates it under the flags' scenario.
func (s *stressFlags) dashboard() (leverage.Snapshot, *leverage.Dashboard, error) {
	stress, err := s.Stress()
	if err != nil {
		return leverage.Snapshot{}, nil, err
	}
	snap, err := loadSnapshot()
	if err != nil {
		return snap, nil, err
	}
	d, err := evaluate(snap, stress)
	return snap, d, err
}
