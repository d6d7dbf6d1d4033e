package leverage

// Liability is a loan. When it is secured against an asset (RelatedAssetID is
// set) it is a leveraged position, otherwise a fixed obligation.
type Liability struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Type           LiabilityType `json:"type"`
	Principal      Money         `json:"principal"`
	InterestRate   Ratio         `json:"interestRate"`
	RelatedAssetID string        `json:"relatedAssetId,omitempty"`
	// Thresholds are ratios, zero means the category default.
	MaintenanceThreshold Ratio `json:"maintenanceThreshold,omitzero"`
	LiquidateThreshold   Ratio `json:"liquidateThreshold,omitzero"`
}

// Leveraged reports whether the liability is secured against an asset.
func (l Liability) Leveraged() bool { return l.RelatedAssetID != "" }

// MonthlyInterest returns the interest due for a month at the stressed rate.
//
// Asset-backed loans pay their full rate plus the hike. Bank loans only
// feel the hike: their fixed monthly payment already covers the base interest.
func (l Liability) MonthlyInterest(hike Ratio) Money {
	rate := hike
	if l.Type.AssetBacked() {
		rate = l.InterestRate.Add(hike)
	}
	return l.Principal.Mul(rate).Div(R(12))
}
