package leverage

import "fmt"

// Thresholds are the two ratio boundaries of a leveraged position, expressed in
// the position's convention.
type Thresholds struct {
	// Maintenance is the boundary beyond which a top-up is required.
	Maintenance Ratio `json:"maintenance"`
	// Liquidate is the boundary beyond which the position is force-closed.
	Liquidate Ratio `json:"liquidate"`
}

// ThresholdTable holds the default thresholds per liability type.
type ThresholdTable map[LiabilityType]Thresholds

// DefaultThresholds is the canonical default table. Pledges use the collateral
// convention, every other loan the loan-to-value convention.
func DefaultThresholds() ThresholdTable {
	ltv := Thresholds{Maintenance: R(0.7), Liquidate: R(0.8)}
	return ThresholdTable{
		Policy:   ltv,
		Pledge:   {Maintenance: R(1.4), Liquidate: R(1.3)},
		Mortgage: ltv,
		Credit:   ltv,
	}
}

// For resolves the thresholds of l: its own when set, the table's otherwise.
func (t ThresholdTable) For(l Liability) Thresholds {
	def, ok := t[l.Type]
	if !ok {
		def = DefaultThresholds()[l.Type]
	}
	th := Thresholds{Maintenance: l.MaintenanceThreshold, Liquidate: l.LiquidateThreshold}
	if th.Maintenance.IsZero() {
		th.Maintenance = def.Maintenance
	}
	if th.Liquidate.IsZero() {
		th.Liquidate = def.Liquidate
	}
	return th
}

// warningBand is the distance to the maintenance threshold where a position
// turns to warning.
var warningBand = R(0.1)

// Position is the risk assessment of a leveraged liability.
type Position struct {
	Liability  Liability      `json:"liability"`
	Asset      *AdjustedAsset `json:"asset,omitempty"`
	Convention Convention     `json:"convention"`
	Thresholds Thresholds     `json:"thresholds"`
	// Ratio is principal/value under stress, whatever the convention.
	Ratio Ratio `json:"ratio"`
	// Monitored is the ratio compared to the thresholds: Ratio for
	// loan-to-value positions, value/principal for collateral positions.
	Monitored Ratio  `json:"monitored"`
	Status    Status `json:"status"`
	// TopUpLine and DangerLine are the asset values at which the position
	// requires a top-up or gets liquidated.
	TopUpLine  Money   `json:"topUpLine"`
	DangerLine Money   `json:"dangerLine"`
	ROI        Percent `json:"roi"`
}

// Name returns the liability name.
func (p Position) Name() string { return p.Liability.Name }

// Alert reports whether the position needs attention.
func (p Position) Alert() bool {
	return p.Status != Safe && p.Liability.Principal.IsPositive()
}

func (p Position) String() string {
	return fmt.Sprintf("%s: %s (%s %s)", p.Liability.Name, p.Status, p.Convention, p.Monitored)
}

// Classify assesses the liability l secured against the adjusted asset (nil
// when missing).
//
// A position with no principal, no asset or no asset value is safe with all
// ratios and lines at zero.
func Classify(l Liability, asset *AdjustedAsset, table ThresholdTable) Position {
	p := Position{
		Liability:  l,
		Asset:      asset,
		Convention: l.Type.Convention(),
		Thresholds: table.For(l),
	}
	if asset == nil {
		return p
	}
	p.ROI = asset.ROI()
	if !l.Principal.IsPositive() || !asset.CurrentValue.IsPositive() {
		return p
	}
	p.Ratio = l.Principal.Per(asset.CurrentValue)

	th := p.Thresholds
	switch p.Convention {
	case Collateral:
		// computed directly rather than 1/Ratio to keep it exact
		p.Monitored = asset.CurrentValue.Per(l.Principal)
		p.TopUpLine = l.Principal.Mul(th.Maintenance)
		p.DangerLine = l.Principal.Mul(th.Liquidate)
		switch {
		case p.Monitored.LessThanOrEqual(th.Liquidate):
			p.Status = Danger
		case p.Monitored.LessThanOrEqual(th.Maintenance):
			p.Status = TopUp
		case p.Monitored.LessThanOrEqual(th.Maintenance.Add(warningBand)):
			p.Status = Warning
		}
	default:
		p.Monitored = p.Ratio
		if th.Maintenance.IsPositive() {
			p.TopUpLine = l.Principal.Div(th.Maintenance)
		}
		if th.Liquidate.IsPositive() {
			p.DangerLine = l.Principal.Div(th.Liquidate)
		}
		switch {
		case p.Monitored.GreaterThanOrEqual(th.Liquidate):
			p.Status = Danger
		case p.Monitored.GreaterThanOrEqual(th.Maintenance):
			p.Status = TopUp
		case p.Monitored.GreaterThanOrEqual(th.Maintenance.Sub(warningBand)):
			p.Status = Warning
		}
	}
	return p
}
