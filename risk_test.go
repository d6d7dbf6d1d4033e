package leverage

import "testing"

func TestClassifyLoanToValue(t *testing.T) {
	loan := Liability{ID: "l", Type: Policy, Principal: M(500000), RelatedAssetID: "a",
		MaintenanceThreshold: R(0.7), LiquidateThreshold: R(0.8)}

	tests := []struct {
		name       string
		value      float64
		wantRatio  float64
		wantStatus Status
	}{
		{name: "safe", value: 1000000, wantRatio: 0.5, wantStatus: Safe},
		{name: "warning band", value: 800000, wantRatio: 0.625, wantStatus: Warning},
		{name: "warning just inside the band", value: 833333, wantStatus: Warning},
		{name: "safe just outside the band", value: 833334, wantStatus: Safe},
		{name: "topup", value: 700000, wantStatus: TopUp},
		{name: "danger at liquidation", value: 625000, wantRatio: 0.8, wantStatus: Danger},
		{name: "danger beyond liquidation", value: 500000, wantRatio: 1, wantStatus: Danger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := &AdjustedAsset{Asset: Asset{ID: "a"}, CurrentValue: M(tt.value)}
			p := Classify(loan, asset, DefaultThresholds())
			if p.Status != tt.wantStatus {
				t.Errorf("Classify() status = %s, want %s (ratio %s)", p.Status, tt.wantStatus, p.Ratio)
			}
			if tt.wantRatio != 0 && !p.Ratio.Equal(R(tt.wantRatio)) {
				t.Errorf("Classify() ratio = %s, want %v", p.Ratio, tt.wantRatio)
			}
			if !p.Monitored.Equal(p.Ratio) {
				t.Errorf("Classify() monitored = %s, want the ratio %s", p.Monitored, p.Ratio)
			}
		})
	}
}

func TestClassifyLoanToValueLines(t *testing.T) {
	loan := Liability{Type: Policy, Principal: M(560000), RelatedAssetID: "a"}
	asset := &AdjustedAsset{CurrentValue: M(900000)}
	p := Classify(loan, asset, DefaultThresholds())
	assertMoney(t, "TopUpLine", p.TopUpLine, 800000)  // 560000 / 0.7
	assertMoney(t, "DangerLine", p.DangerLine, 700000) // 560000 / 0.8
	if p.Status != Warning {
		t.Errorf("status = %s, want warning", p.Status)
	}
}

func TestClassifyCollateral(t *testing.T) {
	loan := Liability{ID: "l", Type: Pledge, Principal: M(500000), RelatedAssetID: "a",
		MaintenanceThreshold: R(1.4), LiquidateThreshold: R(1.3)}

	tests := []struct {
		name          string
		value         float64
		wantMonitored float64
		wantStatus    Status
	}{
		{name: "safe", value: 1000000, wantMonitored: 2, wantStatus: Safe},
		{name: "warning", value: 750000, wantMonitored: 1.5, wantStatus: Warning},
		{name: "topup", value: 700000, wantMonitored: 1.4, wantStatus: TopUp},
		{name: "topup between thresholds", value: 675000, wantMonitored: 1.35, wantStatus: TopUp},
		{name: "danger", value: 650000, wantMonitored: 1.3, wantStatus: Danger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := &AdjustedAsset{Asset: Asset{ID: "a"}, CurrentValue: M(tt.value)}
			p := Classify(loan, asset, DefaultThresholds())
			if p.Convention != Collateral {
				t.Errorf("Classify() convention = %s, want collateral", p.Convention)
			}
			if p.Status != tt.wantStatus {
				t.Errorf("Classify() status = %s, want %s", p.Status, tt.wantStatus)
			}
			if !p.Monitored.Equal(R(tt.wantMonitored)) {
				t.Errorf("Classify() monitored = %s, want %v", p.Monitored, tt.wantMonitored)
			}
			assertMoney(t, "TopUpLine", p.TopUpLine, 700000)
			assertMoney(t, "DangerLine", p.DangerLine, 650000)
		})
	}
}

func TestClassifyStressedPledge(t *testing.T) {
	// the pledge example: 1,000,000 crashed by 35% is 650,000, exactly the liquidation line.
	assets := Adjust([]Asset{investment("a", 1000000)}, Stress{MarketCrash: R(0.35)})
	loan := Liability{Type: Pledge, Principal: M(500000), RelatedAssetID: "a"}
	p := Classify(loan, &assets[0], DefaultThresholds())
	if p.Status != Danger {
		t.Errorf("status = %s, want danger (monitored %s)", p.Status, p.Monitored)
	}
}

func TestClassifyDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		loan  Liability
		asset *AdjustedAsset
	}{
		{name: "missing asset", loan: Liability{Type: Policy, Principal: M(1000), RelatedAssetID: "gone"}},
		{name: "zero principal", loan: Liability{Type: Pledge, RelatedAssetID: "a"}, asset: &AdjustedAsset{CurrentValue: M(1000)}},
		{name: "worthless asset", loan: Liability{Type: Policy, Principal: M(1000), RelatedAssetID: "a"}, asset: &AdjustedAsset{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Classify(tt.loan, tt.asset, DefaultThresholds())
			if p.Status != Safe {
				t.Errorf("status = %s, want safe", p.Status)
			}
			if !p.Ratio.IsZero() || !p.Monitored.IsZero() || !p.TopUpLine.IsZero() || !p.DangerLine.IsZero() {
				t.Errorf("ratios and lines must be zero, got %+v", p)
			}
			if p.Alert() {
				t.Errorf("Alert() = true, want false")
			}
		})
	}
}

func TestThresholdTableFor(t *testing.T) {
	table := DefaultThresholds()
	tests := []struct {
		name string
		loan Liability
		want Thresholds
	}{
		{name: "pledge default", loan: Liability{Type: Pledge}, want: Thresholds{R(1.4), R(1.3)}},
		{name: "policy default", loan: Liability{Type: Policy}, want: Thresholds{R(0.7), R(0.8)}},
		{name: "stored thresholds win", loan: Liability{Type: Policy, MaintenanceThreshold: R(0.5), LiquidateThreshold: R(0.6)}, want: Thresholds{R(0.5), R(0.6)}},
		{name: "partial override", loan: Liability{Type: Pledge, MaintenanceThreshold: R(1.5)}, want: Thresholds{R(1.5), R(1.3)}},
	}
	for _, tt := range tests {
		got := table.For(tt.loan)
		if !got.Maintenance.Equal(tt.want.Maintenance) || !got.Liquidate.Equal(tt.want.Liquidate) {
			t.Errorf("%s: For() = %v, want %v", tt.name, got, tt.want)
		}
	}

	custom := ThresholdTable{Policy: {Maintenance: R(0.5), Liquidate: R(0.6)}}
	if got := custom.For(Liability{Type: Pledge}); !got.Maintenance.Equal(R(1.4)) {
		t.Errorf("a table without the type must fall back to the defaults, got %v", got)
	}
}

func TestPositionROI(t *testing.T) {
	asset := &AdjustedAsset{
		Asset:        Asset{Cost: M(1000000), RealizedDividend: M(100000)},
		CurrentValue: M(1200000),
	}
	p := Classify(Liability{Type: Policy, Principal: M(100), RelatedAssetID: "a"}, asset, DefaultThresholds())
	assertPercent(t, "ROI", p.ROI, 30)

	asset.Cost = Money{}
	p = Classify(Liability{Type: Policy, Principal: M(100), RelatedAssetID: "a"}, asset, DefaultThresholds())
	assertPercent(t, "ROI with no cost", p.ROI, 0)
}
