package leverage

// Adjust values every asset under the stress scenario: investments lose
// marketCrash of their market value, other assets are unchanged.
//
// Values are not clamped, a crash over 100% gives negative values.
func Adjust(assets []Asset, stress Stress) []AdjustedAsset {
	keep := one.Sub(stress.MarketCrash)
	adjusted := make([]AdjustedAsset, 0, len(assets))
	for _, a := range assets {
		current := a.MarketValue
		if a.Type == Investment {
			current = a.MarketValue.Mul(keep)
		}
		adjusted = append(adjusted, AdjustedAsset{Asset: a, CurrentValue: current})
	}
	return adjusted
}

// findAdjusted returns the adjusted asset with the given id, nil if none.
func findAdjusted(assets []AdjustedAsset, id string) *AdjustedAsset {
	for i := range assets {
		if assets[i].ID == id {
			return &assets[i]
		}
	}
	return nil
}
