// Package viewmodel derives the holdings table rows from raw holdings and the
// current search and sort selection.
package viewmodel

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bobmcallan/portfolio-dashboard/internal/models"
)

// Derive filters holdings by searchTerm and returns them stably sorted by field
// in the given direction. The input slice is never modified.
//
// A holding matches when its symbol, name or sector contains searchTerm,
// ignoring case. An empty term matches every holding.
func Derive(holdings []models.Holding, searchTerm string, field models.SortField, dir models.SortDirection) []models.Holding {
	filtered := Filter(holdings, searchTerm)

	cmp := comparator(field, dir)
	slices.SortStableFunc(filtered, cmp)
	return filtered
}

// Filter returns the holdings matching searchTerm in their original order.
func Filter(holdings []models.Holding, searchTerm string) []models.Holding {
	term := strings.ToLower(searchTerm)
	out := make([]models.Holding, 0, len(holdings))
	for _, h := range holdings {
		if matches(h, term) {
			out = append(out, h)
		}
	}
	return out
}

func matches(h models.Holding, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(h.Symbol), lowerTerm) ||
		strings.Contains(strings.ToLower(h.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(h.Sector), lowerTerm)
}

// comparator builds the ordering for field. Numeric fields compare by
// difference, string fields by English collation. Values that are missing or
// of an unknown field compare equal so the stable sort leaves them in place.
func comparator(field models.SortField, dir models.SortDirection) func(a, b models.Holding) int {
	sign := 1
	if dir == models.Descending {
		sign = -1
	}

	if field.IsNumeric() {
		return func(a, b models.Holding) int {
			av, _ := numericValue(a, field)
			bv, _ := numericValue(b, field)
			return sign * signOf(av-bv)
		}
	}

	// Collator keeps scratch buffers, so each comparator owns one.
	col := collate.New(language.English)
	return func(a, b models.Holding) int {
		av, aok := stringValue(a, field)
		bv, bok := stringValue(b, field)
		if !aok || !bok {
			return 0
		}
		return sign * col.CompareString(av, bv)
	}
}

func numericValue(h models.Holding, field models.SortField) (float64, bool) {
	switch field {
	case models.SortQuantity:
		return float64(h.Quantity), true
	case models.SortAvgPrice:
		return h.AvgPrice, true
	case models.SortCurrentPrice:
		return h.CurrentPrice, true
	case models.SortValue:
		return h.Value, true
	case models.SortGainLoss:
		return h.GainLoss, true
	case models.SortGainLossPercent:
		return h.GainLossPercent, true
	}
	return 0, false
}

func stringValue(h models.Holding, field models.SortField) (string, bool) {
	switch field {
	case models.SortSymbol:
		return h.Symbol, true
	case models.SortName:
		return h.Name, true
	case models.SortSector:
		return h.Sector, true
	case models.SortMarketCap:
		if h.MarketCap == nil {
			return "", false
		}
		return *h.MarketCap, true
	}
	return "", false
}

func signOf(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}
