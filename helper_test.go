package leverage

import (
	"testing"

	"github.com/etnz/leverage/date"
	"github.com/google/go-cmp/cmp"
)

// assertMoney fails the test when got is not want.
func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.Equal(M(want)) {
		t.Errorf("%s = %s, want %v", name, got, want)
	}
}

// assertPercent fails the test when got is not want, with a small tolerance.
func assertPercent(t *testing.T, name string, got Percent, want float64) {
	t.Helper()
	if !got.Equal(Percent(want)) {
		t.Errorf("%s = %v, want %v", name, got, Percent(want))
	}
}

// investment returns an investment asset with a market value.
func investment(id string, value float64) Asset {
	return Asset{ID: id, Name: id, Type: Investment, MarketValue: M(value), Cost: M(value)}
}

// assertCents is like assertMoney but compares the amount rounded to cents.
func assertCents(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.value.Round(2).Equal(M(want).value) {
		t.Errorf("%s = %s, want %v", name, got, want)
	}
}

// snapshotOpts lets cmp compare snapshots made of decimals.
var snapshotOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Ratio) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}
