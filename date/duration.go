package date

import "fmt"

// Duration is a calendar span counted in whole months.
type Duration struct {
	Years  int
	Months int
}

// Since returns the number of whole years and months from 'from' to 'to'.
// Days are ignored: from 2024-01-31 to 2024-02-01 is one month.
// A negative span is reported as zero.
func Since(from, to Date) Duration {
	months := (to.y-from.y)*12 + int(to.m-from.m)
	if months < 0 {
		months = 0
	}
	return Duration{Years: months / 12, Months: months % 12}
}

// IsZero reports whether the duration is less than a month.
func (d Duration) IsZero() bool { return d.Years == 0 && d.Months == 0 }

// String returns a compact form like "2y 3m", "5m" or "1y".
func (d Duration) String() string {
	switch {
	case d.Years == 0:
		return fmt.Sprintf("%dm", d.Months)
	case d.Months == 0:
		return fmt.Sprintf("%dy", d.Years)
	default:
		return fmt.Sprintf("%dy %dm", d.Years, d.Months)
	}
}
