package leverage

import "github.com/etnz/leverage/date"

// Asset is something owned, valued at its market value.
type Asset struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             AssetType `json:"type"`
	MarketValue      Money     `json:"marketValue"`
	Cost             Money     `json:"cost"`
	AnnualDividend   Money     `json:"annualDividend,omitzero"`
	RealizedDividend Money     `json:"realizedDividend"`
	// PurchaseDate is the acquisition date, zero when unknown.
	PurchaseDate date.Date `json:"purchaseDate,omitzero"`
}

// AdjustedAsset is an asset valued under a stress scenario.
type AdjustedAsset struct {
	Asset
	CurrentValue Money `json:"currentValue"`
}

// ROI returns the lifetime return of the asset at its current value, including
// the dividends already collected. It is zero when the cost is zero.
func (a AdjustedAsset) ROI() Percent {
	if a.Cost.IsZero() {
		return 0
	}
	gain := a.CurrentValue.Add(a.RealizedDividend).Sub(a.Cost)
	return gain.Per(a.Cost).Percent()
}

// Held returns how long the asset has been held on 'on'. ok is false when the
// purchase date is unknown.
func (a Asset) Held(on date.Date) (d date.Duration, ok bool) {
	if a.PurchaseDate.IsZero() {
		return date.Duration{}, false
	}
	return date.Since(a.PurchaseDate, on), true
}
