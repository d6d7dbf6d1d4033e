package leverage

import "testing"

func TestAdjust(t *testing.T) {
	assets := []Asset{
		investment("stocks", 1000000),
		{ID: "home", Type: RealEstate, MarketValue: M(4700000)},
		{ID: "cash", Type: Cash, MarketValue: M(420000)},
	}

	tests := []struct {
		name  string
		crash float64
		want  []float64
	}{
		{name: "no crash is identity", crash: 0, want: []float64{1000000, 4700000, 420000}},
		{name: "25% crash", crash: 0.25, want: []float64{750000, 4700000, 420000}},
		{name: "50% haircut", crash: 0.5, want: []float64{500000, 4700000, 420000}},
		{name: "35% crash", crash: 0.35, want: []float64{650000, 4700000, 420000}},
		{name: "crash over 100% is not clamped", crash: 1.2, want: []float64{-200000, 4700000, 420000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjust(assets, Stress{MarketCrash: R(tt.crash)})
			if len(got) != len(tt.want) {
				t.Fatalf("Adjust() returned %d assets, want %d", len(got), len(tt.want))
			}
			for i, a := range got {
				assertMoney(t, a.ID, a.CurrentValue, tt.want[i])
				if !a.MarketValue.Equal(assets[i].MarketValue) {
					t.Errorf("Adjust() modified the market value of %s", a.ID)
				}
			}
		})
	}
}

func TestAdjustNonInvestmentsIgnoreCrash(t *testing.T) {
	for _, typ := range []AssetType{RealEstate, Cash} {
		for _, crash := range []float64{0, 0.1, 0.5} {
			a := Asset{ID: "x", Type: typ, MarketValue: M(123456.78)}
			got := Adjust([]Asset{a}, Stress{MarketCrash: R(crash)})[0]
			if !got.CurrentValue.Equal(a.MarketValue) {
				t.Errorf("%s at crash %v: currentValue = %s, want %s", typ, crash, got.CurrentValue, a.MarketValue)
			}
		}
	}
}
