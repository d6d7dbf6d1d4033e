package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/leverage"
	md "github.com/nao1215/markdown"
)

// AllocationMarkdown renders the breakdown of assets and liabilities by category.
func AllocationMarkdown(d *leverage.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation on %s", d.On))
	if !d.Stress.IsZero() {
		doc.PlainText(stressLine(d.Stress))
	}

	doc.H2("Assets")
	doc.Table(allocationTable(d.AssetAllocation, d.TotalAssets, d.Currency))

	doc.H2("Liabilities")
	if len(d.LiabilityAllocation) == 0 {
		doc.PlainText("No liability.")
	} else {
		doc.Table(allocationTable(d.LiabilityAllocation, d.TotalLiabilities, d.Currency))
	}

	return doc.String()
}

func allocationTable(items []leverage.AllocationItem, total leverage.Money, currency string) md.TableSet {
	table := md.TableSet{
		Header: []string{"Category", "Value", "Share"},
		Rows:   [][]string{},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{it.Category, it.Value.Format(currency), leverage.Share(it, items).String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(total.Format(currency)), ""})
	return table
}
