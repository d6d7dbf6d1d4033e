package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/leverage"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the headline figures of the dashboard.
func DashboardMarkdown(d *leverage.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	money := func(m leverage.Money) string { return m.Format(d.Currency) }

	doc.H1(fmt.Sprintf("Leverage dashboard on %s", d.On))
	if !d.Stress.IsZero() {
		doc.PlainText(stressLine(d.Stress))
	}

	doc.H2("Balance sheet")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Total assets", money(d.TotalAssets)},
			{"Total liabilities", money(d.TotalLiabilities)},
			{md.Bold("Net worth"), md.Bold(money(d.NetWorth))},
			{"Net investment equity", money(d.NetInvestmentEquity)},
			{"Cash reserve", money(d.CashReserve)},
			{"Unused credit limit", money(d.UnusedCreditLimit)},
			{md.Bold("Total liquidity"), md.Bold(money(d.TotalLiquidity))},
		},
	})

	doc.H2("Monthly cash flow")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Income", money(d.MonthlyIncome)},
			{"Fixed payments", money(d.ExpenseDetail.FixedPayments)},
			{"Interest", money(d.ExpenseDetail.VariableInterests)},
			{"Total expense", money(d.MonthlyTotalExpense)},
			{md.Bold("Net cash flow"), md.Bold(fmt.Sprintf("%s (%s)", d.NetCashFlow.SignedFormat(d.Currency), d.CashFlowStatus))},
		},
	})

	doc.H2("Returns")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Total cost", money(d.TotalCost)},
			{"Realized dividends", money(d.TotalRealizedDividend)},
			{"Total profit", d.TotalProfit.SignedFormat(d.Currency)},
			{"ROI", d.ROI.SignedString()},
		},
	})

	doc.H2("FIRE")
	doc.PlainText(fmt.Sprintf("%s of %s reached.", d.FireProgress, money(d.FireGoal)))

	if len(d.Alerts) > 0 {
		doc.H2("Alerts")
		var items []string
		for _, p := range d.Alerts {
			items = append(items, alertLine(p, d.Currency))
		}
		doc.BulletList(items...)
	}

	return doc.String()
}

func stressLine(s leverage.Stress) string {
	return fmt.Sprintf("Stress test: market crash -%s, interest hike +%s.", s.MarketCrash.Percent(), s.InterestHike.Percent())
}

func alertLine(p leverage.Position, currency string) string {
	switch p.Status {
	case leverage.Danger:
		return fmt.Sprintf("%s: %s, liquidation below %s", md.Bold(p.Name()), statusLabel(p.Status), p.DangerLine.Format(currency))
	case leverage.TopUp:
		return fmt.Sprintf("%s: %s, top-up required below %s", md.Bold(p.Name()), statusLabel(p.Status), p.TopUpLine.Format(currency))
	default:
		return fmt.Sprintf("%s: %s, close to the top-up line %s", md.Bold(p.Name()), statusLabel(p.Status), p.TopUpLine.Format(currency))
	}
}

// statusLabel is the human readable status.
func statusLabel(s leverage.Status) string {
	switch s {
	case leverage.Warning:
		return "warning"
	case leverage.TopUp:
		return "top-up"
	case leverage.Danger:
		return "danger"
	default:
		return "safe"
	}
}
