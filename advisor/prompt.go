package advisor

import (
	"fmt"
	"strings"

	"github.com/etnz/leverage"
)

// SystemInstruction frames the model for the diagnosis.
const SystemInstruction = `You are a rigorous financial actuary. Give defensive investment strategy advice for highly leveraged personal balance sheets.`

// DiagnosisPrompt returns the prompt asking for a health and risk diagnosis of
// the snapshot s, as computed in d under d.Stress.
func DiagnosisPrompt(s leverage.Snapshot, d *leverage.Dashboard) string {
	cur := d.Currency
	var b strings.Builder

	fmt.Fprintln(&b, "You are a senior private banking advisor specialised in leverage arbitrage and in the path to financial independence.")
	fmt.Fprintln(&b, "Analyse the following financial data in depth and give professional advice.")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Core figures")
	fmt.Fprintf(&b, "- Total assets (including real estate): %s\n", d.TotalAssets.Format(cur))
	fmt.Fprintf(&b, "- Total liabilities (mortgage, credit, pledges, policy loans): %s\n", d.TotalLiabilities.Format(cur))
	fmt.Fprintf(&b, "- Net worth: %s\n", d.NetWorth.Format(cur))
	fmt.Fprintf(&b, "- Monthly cash flow: income %s / expenses %s (net %s, %s)\n",
		d.MonthlyIncome.Format(cur), d.MonthlyTotalExpense.Format(cur), d.NetCashFlow.SignedFormat(cur), d.CashFlowStatus)
	fmt.Fprintf(&b, "- Total liquidity reserve: %s (cash %s)\n", d.TotalLiquidity.Format(cur), d.CashReserve.Format(cur))
	fmt.Fprintf(&b, "- FIRE goal: %s (progress %s)\n", d.FireGoal.Format(cur), d.FireProgress)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Stress environment")
	fmt.Fprintf(&b, "- Market crash: -%s\n", d.Stress.MarketCrash.Percent())
	fmt.Fprintf(&b, "- Interest rate hike: +%s\n", d.Stress.InterestHike.Percent())
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Assets")
	for _, a := range d.Assets {
		fmt.Fprintf(&b, "- %s (%s): value %s, cost %s, realized dividends %s\n",
			a.Name, a.Type, a.CurrentValue.Format(cur), a.Cost.Format(cur), a.RealizedDividend.Format(cur))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Liabilities")
	for _, p := range d.Positions {
		fmt.Fprintf(&b, "- %s (%s): principal %s at %s, %s ratio %s, status %s\n",
			p.Liability.Name, p.Liability.Type, p.Liability.Principal.Format(cur), p.Liability.InterestRate.Percent(),
			p.Convention, p.Monitored.Percent(), p.Status)
	}
	for _, l := range d.Obligations {
		fmt.Fprintf(&b, "- %s (%s): principal %s at %s\n", l.Name, l.Type, l.Principal.Format(cur), l.InterestRate.Percent())
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Requirements")
	fmt.Fprintln(&b, "1. **Leverage safety**: under a crash or a rate hike, which position is the most likely to trigger a margin call?")
	fmt.Fprintf(&b, "2. **Income efficiency**: is the liquidity reserve (%s) enough to absorb the interest under stress?\n", d.TotalLiquidity.Format(cur))
	fmt.Fprintf(&b, "3. **Strategy**: towards the FIRE goal (%s), give the most important allocation advice for the next stage.\n", d.FireGoal.Format(cur))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Answer with clear markdown headings and lists.")
	if s.LastSavedTime != "" {
		fmt.Fprintf(&b, "Data last saved on %s.\n", s.LastSavedTime)
	}
	return b.String()
}
