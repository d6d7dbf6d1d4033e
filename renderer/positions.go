package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/leverage"
	md "github.com/nao1215/markdown"
)

// PositionsMarkdown renders the risk of every leveraged position, the other
// obligations and the holdings.
func PositionsMarkdown(d *leverage.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	money := func(m leverage.Money) string { return m.Format(d.Currency) }

	doc.H1(fmt.Sprintf("Positions on %s", d.On))
	if !d.Stress.IsZero() {
		doc.PlainText(stressLine(d.Stress))
	}

	doc.H2("Leveraged positions")
	if len(d.Positions) == 0 {
		doc.PlainText("No leveraged position.")
	} else {
		table := md.TableSet{
			Header: []string{"Position", "Type", "Principal", "Value", "Ratio", "Top-up line", "Danger line", "Status"},
			Rows:   [][]string{},
		}
		for _, p := range d.Positions {
			value := "-"
			if p.Asset != nil {
				value = money(p.Asset.CurrentValue)
			}
			status := statusLabel(p.Status)
			if p.Alert() {
				status = md.Bold(status)
			}
			table.Rows = append(table.Rows, []string{
				p.Name(),
				p.Liability.Type.String(),
				money(p.Liability.Principal),
				value,
				fmt.Sprintf("%s %s", p.Convention, p.Monitored.Percent()),
				money(p.TopUpLine),
				money(p.DangerLine),
				status,
			})
		}
		doc.Table(table)
	}

	if len(d.Obligations) > 0 {
		doc.H2("Other liabilities")
		table := md.TableSet{
			Header: []string{"Liability", "Type", "Principal", "Rate"},
			Rows:   [][]string{},
		}
		for _, l := range d.Obligations {
			table.Rows = append(table.Rows, []string{l.Name, l.Type.String(), money(l.Principal), l.InterestRate.Percent().String()})
		}
		doc.Table(table)
	}

	doc.H2("Holdings")
	table := md.TableSet{
		Header: []string{"Asset", "Type", "Value", "Cost", "ROI", "Held"},
		Rows:   [][]string{},
	}
	for _, h := range d.Holdings {
		held := ""
		if h.Held != nil {
			held = h.Held.String()
		}
		table.Rows = append(table.Rows, []string{
			h.Asset.Name,
			h.Asset.Type.String(),
			money(h.Asset.CurrentValue),
			money(h.Asset.Cost),
			h.ROI.SignedString(),
			held,
		})
	}
	doc.Table(table)

	if len(d.InvestmentEquity) > 0 {
		doc.H2("Investment equity")
		table := md.TableSet{
			Header: []string{"Asset", "Net value"},
			Rows:   [][]string{},
		}
		for _, e := range d.InvestmentEquity {
			table.Rows = append(table.Rows, []string{e.Name, money(e.NetValue)})
		}
		table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(money(d.NetInvestmentEquity))})
		doc.Table(table)
	}

	return doc.String()
}
