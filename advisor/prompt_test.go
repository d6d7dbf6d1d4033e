package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/leverage"
	"github.com/etnz/leverage/date"
)

func TestDiagnosisPrompt(t *testing.T) {
	s := leverage.Default()
	s.Currency = "USD"
	stress := leverage.Stress{MarketCrash: leverage.R(0.2), InterestHike: leverage.R(0.01)}
	d := leverage.NewDashboard(s, stress, leverage.DefaultThresholds(), date.New(2025, time.June, 15))

	got := DiagnosisPrompt(s, d)
	for _, want := range []string{
		"Net worth: $4,127,200.00",
		"Market crash: -20.00%",
		"Interest rate hike: +1.00%",
		"Stock pledge loan (pledge)",
		"Mortgage (mortgage)",
		"1. **Leverage safety**",
		"2. **Income efficiency**",
		"3. **Strategy**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DiagnosisPrompt() does not contain %q:\n%s", want, got)
		}
	}
}
