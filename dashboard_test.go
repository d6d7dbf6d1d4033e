package leverage

import (
	"testing"
	"time"

	"github.com/etnz/leverage/date"
)

var testDay = date.New(2025, time.June, 15)

func TestNewDashboardDefault(t *testing.T) {
	tests := []struct {
		name   string
		stress Stress
		want   map[string]float64
	}{
		{
			name: "no stress",
			want: map[string]float64{
				"TotalAssets":         14604000,
				"TotalLiabilities":    8580000,
				"NetWorth":            6024000,
				"TotalProfit":         1771001,
				"NetInvestmentEquity": 6464000,
				"TotalLiquidity":      7244000,
			},
		},
		{
			name:   "20% crash and 1% hike",
			stress: Stress{MarketCrash: R(0.2), InterestHike: R(0.01)},
			want: map[string]float64{
				"TotalAssets":         12707200,
				"TotalLiabilities":    8580000,
				"NetWorth":            4127200,
				"TotalProfit":         1771001, // unstressed by design
				"NetInvestmentEquity": 4567200,
				"TotalLiquidity":      5347200,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDashboard(Default(), tt.stress, DefaultThresholds(), testDay)
			got := map[string]Money{
				"TotalAssets":         d.TotalAssets,
				"TotalLiabilities":    d.TotalLiabilities,
				"NetWorth":            d.NetWorth,
				"TotalProfit":         d.TotalProfit,
				"NetInvestmentEquity": d.NetInvestmentEquity,
				"TotalLiquidity":      d.TotalLiquidity,
			}
			for name, want := range tt.want {
				assertMoney(t, name, got[name], want)
			}
			assertPercent(t, "ROI", d.ROI, 12.8613)
		})
	}
}

func TestNewDashboardCashFlow(t *testing.T) {
	d := NewDashboard(Default(), Stress{}, DefaultThresholds(), testDay)
	assertCents(t, "MonthlyInterestExpense", d.MonthlyInterestExpense, 9062.08)
	assertCents(t, "MonthlyTotalExpense", d.MonthlyTotalExpense, 59062.08)
	assertCents(t, "NetCashFlow", d.NetCashFlow, 37937.92)
	assertMoney(t, "FixedPayments", d.ExpenseDetail.FixedPayments, 50000)
	assertMoney(t, "MonthlyIncome", d.MonthlyIncome, 97000)
	assertPercent(t, "FireProgress", d.FireProgress, 30.12)
	if d.CashFlowStatus != Surplus {
		t.Errorf("CashFlowStatus = %s, want surplus", d.CashFlowStatus)
	}

	d = NewDashboard(Default(), Stress{InterestHike: R(0.01)}, DefaultThresholds(), testDay)
	assertCents(t, "stressed MonthlyInterestExpense", d.MonthlyInterestExpense, 16212.08)
	assertCents(t, "stressed NetCashFlow", d.NetCashFlow, 30787.92)
}

func TestMonthlyInterest(t *testing.T) {
	hike := R(0.012)
	policy := Liability{Type: Policy, Principal: M(1200000), InterestRate: R(0.03)}
	assertMoney(t, "policy", policy.MonthlyInterest(hike), 4200) // 1.2M * 4.2% / 12
	mortgage := Liability{Type: Mortgage, Principal: M(1200000), InterestRate: R(0.03)}
	assertMoney(t, "mortgage", mortgage.MonthlyInterest(hike), 1200) // hike only
	assertMoney(t, "mortgage without hike", mortgage.MonthlyInterest(Ratio{}), 0)
}

func TestCashFlowStatusFlipsAtZero(t *testing.T) {
	s := Snapshot{IncomeExpense: IncomeExpense{MonthlyActiveIncome: M(50000), MonthlyBaseLivingExpense: M(50000)}}
	d := NewDashboard(s, Stress{}, DefaultThresholds(), testDay)
	if !d.NetCashFlow.IsZero() || d.CashFlowStatus != Surplus {
		t.Errorf("balanced month: net %s status %s, want 0 surplus", d.NetCashFlow, d.CashFlowStatus)
	}

	s.IncomeExpense.MonthlyBaseLivingExpense = M(50000.01)
	d = NewDashboard(s, Stress{}, DefaultThresholds(), testDay)
	if d.CashFlowStatus != Deficit {
		t.Errorf("net %s status %s, want deficit", d.NetCashFlow, d.CashFlowStatus)
	}
}

func TestNewDashboardDivideByZeroGuards(t *testing.T) {
	s := Snapshot{
		Assets:      []Asset{{ID: "gift", Type: Investment, MarketValue: M(1000)}},
		Liabilities: []Liability{{ID: "l", Type: Policy, RelatedAssetID: "gift"}},
	}
	d := NewDashboard(s, Stress{}, DefaultThresholds(), testDay)
	if d.ROI != 0 {
		t.Errorf("ROI = %v, want exactly 0 with no cost", d.ROI)
	}
	if d.FireProgress != 0 {
		t.Errorf("FireProgress = %v, want 0 with no goal", d.FireProgress)
	}
	if len(d.Positions) != 1 || d.Positions[0].Status != Safe {
		t.Errorf("Positions = %v, want one safe position", d.Positions)
	}
	if len(d.Alerts) != 0 {
		t.Errorf("Alerts = %v, want none", d.Alerts)
	}
}

func TestNewDashboardPositions(t *testing.T) {
	s := Snapshot{
		Assets: []Asset{
			investment("stock", 1000000),
			investment("policy", 1000000),
			{ID: "home", Name: "home", Type: RealEstate, MarketValue: M(3000000), Cost: M(2000000), PurchaseDate: date.New(2020, time.January, 1)},
		},
		Liabilities: []Liability{
			{ID: "pledge", Name: "pledge", Type: Pledge, Principal: M(500000), RelatedAssetID: "stock"},
			{ID: "loan", Name: "loan", Type: Policy, Principal: M(600000), RelatedAssetID: "policy"},
			{ID: "orphan", Name: "orphan", Type: Policy, Principal: M(1000), RelatedAssetID: "sold"},
			{ID: "credit", Name: "credit", Type: Credit, Principal: M(300000)},
		},
	}
	d := NewDashboard(s, Stress{MarketCrash: R(0.25)}, DefaultThresholds(), testDay)

	if len(d.Positions) != 3 {
		t.Fatalf("len(Positions) = %d, want 3", len(d.Positions))
	}
	wantStatus := map[string]Status{"pledge": Warning, "loan": Danger, "orphan": Safe}
	for _, p := range d.Positions {
		if p.Status != wantStatus[p.Name()] {
			t.Errorf("%s: status = %s, want %s", p.Name(), p.Status, wantStatus[p.Name()])
		}
	}
	if len(d.Alerts) != 2 {
		t.Errorf("len(Alerts) = %d, want 2", len(d.Alerts))
	}
	if len(d.Obligations) != 1 || d.Obligations[0].ID != "credit" {
		t.Errorf("Obligations = %v, want [credit]", d.Obligations)
	}

	if len(d.Holdings) != 3 {
		t.Fatalf("len(Holdings) = %d, want 3", len(d.Holdings))
	}
	home := d.Holdings[2]
	if home.Position != nil {
		t.Errorf("home has a position: %v", home.Position)
	}
	if home.Held == nil || home.Held.String() != "5y 5m" {
		t.Errorf("home held = %v, want 5y 5m", home.Held)
	}
	assertPercent(t, "home ROI", home.ROI, 50)
	if d.Holdings[0].Position == nil || d.Holdings[0].Position.Liability.ID != "pledge" {
		t.Errorf("stock holding position = %v, want pledge", d.Holdings[0].Position)
	}

	wantEquity := []float64{250000, 150000}
	if len(d.InvestmentEquity) != len(wantEquity) {
		t.Fatalf("InvestmentEquity = %v", d.InvestmentEquity)
	}
	for i, e := range d.InvestmentEquity {
		assertMoney(t, e.Name, e.NetValue, wantEquity[i])
	}
}

func TestAllocation(t *testing.T) {
	d := NewDashboard(Default(), Stress{}, DefaultThresholds(), testDay)

	wantAssets := map[string]float64{"real_estate": 4700000, "cash": 420000, "investment": 9484000}
	if len(d.AssetAllocation) != 3 {
		t.Fatalf("AssetAllocation = %v", d.AssetAllocation)
	}
	for _, it := range d.AssetAllocation {
		assertMoney(t, it.Category, it.Value, wantAssets[it.Category])
	}

	s := Default()
	s.Liabilities = s.Liabilities[:4] // policies only
	d = NewDashboard(s, Stress{}, DefaultThresholds(), testDay)
	if len(d.LiabilityAllocation) != 1 || d.LiabilityAllocation[0].Category != "policy" {
		t.Errorf("LiabilityAllocation = %v, want a single policy bucket", d.LiabilityAllocation)
	}
	assertPercent(t, "share", Share(d.LiabilityAllocation[0], d.LiabilityAllocation), 100)
}
