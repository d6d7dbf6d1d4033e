package leverage

import "fmt"

// Stress is a scenario applied uniformly: every investment loses MarketCrash
// of its value, and every loan rate increases by InterestHike.
type Stress struct {
	MarketCrash  Ratio `json:"marketCrash"`
	InterestHike Ratio `json:"interestHike"`
}

// Bounds accepted from user input.
var (
	MaxMarketCrash  = R(0.5)
	MaxInterestHike = R(0.02)
)

// Validate checks the scenario is within the ranges offered to the user.
// The engine itself accepts any value.
func (s Stress) Validate() error {
	if s.MarketCrash.IsNegative() || s.MarketCrash.GreaterThan(MaxMarketCrash) {
		return fmt.Errorf("%w: market crash %s must be within [0, %s]", ErrInvalid, s.MarketCrash, MaxMarketCrash)
	}
	if s.InterestHike.IsNegative() || s.InterestHike.GreaterThan(MaxInterestHike) {
		return fmt.Errorf("%w: interest hike %s must be within [0, %s]", ErrInvalid, s.InterestHike, MaxInterestHike)
	}
	return nil
}

// IsZero reports the absence of stress.
func (s Stress) IsZero() bool { return s.MarketCrash.IsZero() && s.InterestHike.IsZero() }
