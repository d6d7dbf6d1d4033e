package leverage

import "github.com/etnz/leverage/date"

// Default returns the sample snapshot used on first run and after a reset.
func Default() Snapshot {
	return Snapshot{
		Assets: []Asset{
			{ID: "p1", Name: "Policy A (annuity)", Type: Investment, MarketValue: M(477000), Cost: M(500000), RealizedDividend: M(12000)},
			{ID: "p2", Name: "Policy B (life)", Type: Investment, MarketValue: M(1477000), Cost: M(1500000), RealizedDividend: M(35000)},
			{ID: "p3", Name: "Policy C (annuity)", Type: Investment, MarketValue: M(1800000), Cost: M(1729999), RealizedDividend: M(80000)},
			{ID: "p4", Name: "Policy D (core)", Type: Investment, MarketValue: M(3280000), Cost: M(3030000), RealizedDividend: M(150000)},
			{ID: "s1", Name: "Pledged stocks", Type: Investment, MarketValue: M(2450000), Cost: M(1890000), RealizedDividend: M(660000), PurchaseDate: date.New(2021, 3, 1)},
			{ID: "r1", Name: "Home (estimate)", Type: RealEstate, MarketValue: M(4700000), Cost: M(4700000)},
			{ID: "c1", Name: "Cash reserve", Type: Cash, MarketValue: M(420000), Cost: M(420000)},
		},
		Liabilities: []Liability{
			{ID: "l1", Name: "Policy A loan", Type: Policy, Principal: M(200000), InterestRate: R(0.0317), RelatedAssetID: "p1"},
			{ID: "l2", Name: "Policy B loan", Type: Policy, Principal: M(650000), InterestRate: R(0.0317), RelatedAssetID: "p2"},
			{ID: "l3", Name: "Policy C loan", Type: Policy, Principal: M(790000), InterestRate: R(0.04), RelatedAssetID: "p3"},
			{ID: "l4", Name: "Policy D loan", Type: Policy, Principal: M(880000), InterestRate: R(0.04), RelatedAssetID: "p4"},
			{ID: "l6", Name: "Stock pledge loan", Type: Pledge, Principal: M(500000), InterestRate: R(0.03), RelatedAssetID: "s1"},
			{ID: "l7", Name: "Mortgage", Type: Mortgage, Principal: M(4604000), InterestRate: R(0.021)},
			{ID: "l8", Name: "Personal credit", Type: Credit, Principal: M(956000), InterestRate: R(0.035)},
		},
		IncomeExpense: IncomeExpense{
			MonthlyActiveIncome:      M(42000),
			MonthlyPassiveIncome:     M(55000),
			MonthlyMortgagePayment:   M(31000),
			MonthlyCreditPayment:     M(13000),
			MonthlyBaseLivingExpense: M(6000),
			FireGoal:                 M(20000000),
			UnusedCreditLimit:        M(360000),
		},
	}
}
