package leverage

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney parses an amount like "1200000", "1,200,000" or "12.5".
func ParseMoney(s string) (Money, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// ParseRatio parses a ratio given either as a decimal ("0.7") or as a
// percentage ("70%").
func ParseRatio(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	d, err := parseDecimal(strings.TrimSuffix(s, "%"))
	if err != nil {
		return Ratio{}, err
	}
	if percent {
		d = d.Shift(-2)
	}
	return Ratio{value: d}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalid, s)
	}
	return d, nil
}
