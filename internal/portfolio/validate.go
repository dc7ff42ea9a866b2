package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/portfolio-dashboard/internal/models"
)

var (
	amountTolerance  = decimal.NewFromFloat(0.01)
	percentTolerance = decimal.NewFromFloat(0.05)
	hundred          = decimal.NewFromInt(100)
)

// Issue describes one inconsistency found in a holdings dataset.
type Issue struct {
	Symbol  string
	Field   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s.%s: %s", i.Symbol, i.Field, i.Message)
}

// Validate checks the precomputed fields of each holding against its
// quantity and prices. Symbols must be present and unique.
func Validate(holdings []models.Holding) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(holdings))

	for _, h := range holdings {
		add := func(field, format string, args ...interface{}) {
			issues = append(issues, Issue{Symbol: h.Symbol, Field: field, Message: fmt.Sprintf(format, args...)})
		}

		if h.Symbol == "" {
			add("symbol", "symbol is empty")
		} else if seen[h.Symbol] {
			add("symbol", "duplicate symbol")
		}
		seen[h.Symbol] = true

		if h.Quantity < 0 {
			add("quantity", "negative quantity %d", h.Quantity)
		}
		if h.AvgPrice < 0 {
			add("avgPrice", "negative price %v", h.AvgPrice)
		}
		if h.CurrentPrice < 0 {
			add("currentPrice", "negative price %v", h.CurrentPrice)
		}

		qty := decimal.NewFromInt(int64(h.Quantity))
		value := decimal.NewFromFloat(h.Value)
		invested := qty.Mul(decimal.NewFromFloat(h.AvgPrice))

		expectedValue := qty.Mul(decimal.NewFromFloat(h.CurrentPrice))
		if value.Sub(expectedValue).Abs().GreaterThan(amountTolerance) {
			add("value", "expected %s, got %s", expectedValue.StringFixed(2), value.StringFixed(2))
		}

		expectedGain := value.Sub(invested)
		gain := decimal.NewFromFloat(h.GainLoss)
		if gain.Sub(expectedGain).Abs().GreaterThan(amountTolerance) {
			add("gainLoss", "expected %s, got %s", expectedGain.StringFixed(2), gain.StringFixed(2))
		}

		if !invested.IsZero() {
			expectedPct := gain.Div(invested).Mul(hundred)
			pct := decimal.NewFromFloat(h.GainLossPercent)
			if pct.Sub(expectedPct).Abs().GreaterThan(percentTolerance) {
				add("gainLossPercent", "expected %s, got %s", expectedPct.StringFixed(2), pct.StringFixed(2))
			}
		}
	}

	return issues
}
