package leverage

import (
	"github.com/etnz/leverage/date"
)

// Dashboard is every figure derived from a snapshot under a stress scenario.
// It is recomputed from scratch on each change, there is no incremental update.
type Dashboard struct {
	On       date.Date `json:"on"`
	Currency string    `json:"currency"`
	Stress   Stress    `json:"stress"`

	Assets           []AdjustedAsset `json:"assets"`
	TotalAssets      Money           `json:"totalAssets"`
	TotalLiabilities Money           `json:"totalLiabilities"`
	NetWorth         Money           `json:"netWorth"`

	MonthlyIncome          Money          `json:"monthlyIncome"`
	MonthlyInterestExpense Money          `json:"monthlyInterestExpense"`
	MonthlyTotalExpense    Money          `json:"monthlyTotalExpense"`
	NetCashFlow            Money          `json:"netCashFlow"`
	CashFlowStatus         CashFlowStatus `json:"cashFlowStatus"`
	ExpenseDetail          ExpenseDetail  `json:"expenseDetail"`

	FireGoal     Money   `json:"fireGoal"`
	FireProgress Percent `json:"fireProgress"`

	TotalCost             Money   `json:"totalCost"`
	TotalRealizedDividend Money   `json:"totalRealizedDividend"`
	TotalProfit           Money   `json:"totalProfit"`
	ROI                   Percent `json:"roi"`

	NetInvestmentEquity Money            `json:"netInvestmentEquity"`
	InvestmentEquity    []EquityDetail   `json:"investmentEquity"`
	CashReserve         Money            `json:"cashReserve"`
	UnusedCreditLimit   Money            `json:"unusedCreditLimit"`
	TotalLiquidity      Money            `json:"totalLiquidity"`
	AssetAllocation     []AllocationItem `json:"assetAllocation"`
	LiabilityAllocation []AllocationItem `json:"liabilityAllocation"`

	Holdings    []Holding   `json:"holdings"`
	Positions   []Position  `json:"positions"`
	Obligations []Liability `json:"obligations"`
	Alerts      []Position  `json:"alerts"`
}

// ExpenseDetail splits the monthly expense between fixed payments and the
// variable interest that moves with the rate hike.
type ExpenseDetail struct {
	FixedPayments     Money `json:"fixedPayments"`
	VariableInterests Money `json:"variableInterests"`
	Total             Money `json:"total"`
}

// EquityDetail is the net value of an investment once its loan is repaid.
type EquityDetail struct {
	Name     string `json:"name"`
	NetValue Money  `json:"netValue"`
}

// AllocationItem is a bucket of the asset or liability breakdown.
type AllocationItem struct {
	Category string `json:"category"`
	Value    Money  `json:"value"`
}

// Holding is an asset seen from the dashboard: its stressed value, its return,
// and the risk of the loan secured against it, if any.
type Holding struct {
	Asset    AdjustedAsset  `json:"asset"`
	ROI      Percent        `json:"roi"`
	Held     *date.Duration `json:"held,omitempty"`
	Position *Position      `json:"position,omitempty"`
}

// NewDashboard computes the dashboard of s under the stress scenario on the given day.
func NewDashboard(s Snapshot, stress Stress, table ThresholdTable, on date.Date) *Dashboard {
	adjusted := Adjust(s.Assets, stress)
	ie := s.IncomeExpense

	d := &Dashboard{
		On:                on,
		Currency:          s.CurrencyOrDefault(),
		Stress:            stress,
		Assets:            adjusted,
		FireGoal:          ie.FireGoal,
		MonthlyIncome:     ie.Income(),
		UnusedCreditLimit: ie.UnusedCreditLimit,
	}

	var totalMarket, investments Money
	for _, a := range adjusted {
		d.TotalAssets = d.TotalAssets.Add(a.CurrentValue)
		totalMarket = totalMarket.Add(a.MarketValue)
		d.TotalCost = d.TotalCost.Add(a.Cost)
		d.TotalRealizedDividend = d.TotalRealizedDividend.Add(a.RealizedDividend)
		switch a.Type {
		case Investment:
			investments = investments.Add(a.CurrentValue)
		case Cash:
			d.CashReserve = d.CashReserve.Add(a.CurrentValue)
		}
	}

	var investmentLoans Money
	for _, l := range s.Liabilities {
		d.TotalLiabilities = d.TotalLiabilities.Add(l.Principal)
		d.MonthlyInterestExpense = d.MonthlyInterestExpense.Add(l.MonthlyInterest(stress.InterestHike))
		if l.Type.AssetBacked() {
			investmentLoans = investmentLoans.Add(l.Principal)
		}
	}

	d.NetWorth = d.TotalAssets.Sub(d.TotalLiabilities)

	d.ExpenseDetail = ExpenseDetail{
		FixedPayments:     ie.FixedPayments(),
		VariableInterests: d.MonthlyInterestExpense,
		Total:             ie.FixedPayments().Add(d.MonthlyInterestExpense),
	}
	d.MonthlyTotalExpense = d.ExpenseDetail.Total
	d.NetCashFlow = d.MonthlyIncome.Sub(d.MonthlyTotalExpense)
	if d.NetCashFlow.IsNegative() {
		d.CashFlowStatus = Deficit
	}

	if !ie.FireGoal.IsZero() {
		d.FireProgress = d.NetWorth.Per(ie.FireGoal).Percent()
	}

	// profit is historical: unstressed market value plus collected dividends.
	d.TotalProfit = totalMarket.Add(d.TotalRealizedDividend).Sub(d.TotalCost)
	if d.TotalCost.IsPositive() {
		d.ROI = d.TotalProfit.Per(d.TotalCost).Percent()
	}

	d.NetInvestmentEquity = investments.Sub(investmentLoans)
	d.TotalLiquidity = Sum(d.NetInvestmentEquity, d.CashReserve, ie.UnusedCreditLimit)

	d.AssetAllocation = allocateAssets(adjusted)
	d.LiabilityAllocation = allocateLiabilities(s.Liabilities)

	d.classify(s.Liabilities, adjusted, table)
	return d
}

// classify fills positions, obligations, alerts, holdings and equity details.
func (d *Dashboard) classify(liabilities []Liability, adjusted []AdjustedAsset, table ThresholdTable) {
	byAsset := make(map[string]*Position)
	for _, l := range liabilities {
		if !l.Leveraged() {
			d.Obligations = append(d.Obligations, l)
			continue
		}
		p := Classify(l, findAdjusted(adjusted, l.RelatedAssetID), table)
		d.Positions = append(d.Positions, p)
		if p.Alert() {
			d.Alerts = append(d.Alerts, p)
		}
	}
	for i := range d.Positions {
		id := d.Positions[i].Liability.RelatedAssetID
		if _, exists := byAsset[id]; !exists {
			byAsset[id] = &d.Positions[i]
		}
	}

	for _, a := range adjusted {
		h := Holding{Asset: a, ROI: a.ROI()}
		if held, ok := a.Held(d.On); ok {
			h.Held = &held
		}
		p := byAsset[a.ID]
		h.Position = p
		d.Holdings = append(d.Holdings, h)

		if a.Type == Investment {
			net := a.CurrentValue
			if p != nil {
				net = net.Sub(p.Liability.Principal)
			}
			d.InvestmentEquity = append(d.InvestmentEquity, EquityDetail{Name: a.Name, NetValue: net})
		}
	}
}

func allocateAssets(adjusted []AdjustedAsset) []AllocationItem {
	var items []AllocationItem
	for _, t := range []AssetType{RealEstate, Cash, Investment} {
		var total Money
		for _, a := range adjusted {
			if a.Type == t {
				total = total.Add(a.CurrentValue)
			}
		}
		items = append(items, AllocationItem{Category: t.String(), Value: total})
	}
	return items
}

// allocateLiabilities drops empty buckets.
func allocateLiabilities(liabilities []Liability) []AllocationItem {
	var items []AllocationItem
	for _, t := range []LiabilityType{Mortgage, Credit, Policy, Pledge} {
		var total Money
		for _, l := range liabilities {
			if l.Type == t {
				total = total.Add(l.Principal)
			}
		}
		if total.IsPositive() {
			items = append(items, AllocationItem{Category: t.String(), Value: total})
		}
	}
	return items
}

// Share returns the part of item in the total of items.
func Share(item AllocationItem, items []AllocationItem) Percent {
	var total Money
	for _, it := range items {
		total = total.Add(it.Value)
	}
	if total.IsZero() {
		return 0
	}
	return item.Value.Per(total).Percent()
}
