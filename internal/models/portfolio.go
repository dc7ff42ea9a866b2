// Package models defines data structures for the portfolio dashboard
package models

// Holding is one stock position. Value, GainLoss and GainLossPercent are
// precomputed by the data provider and carried through unchanged.
type Holding struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	AvgPrice        float64 `json:"avgPrice"`
	CurrentPrice    float64 `json:"currentPrice"`
	Sector          string  `json:"sector"`
	MarketCap       *string `json:"marketCap,omitempty"` // nil when the provider omits it
	Value           float64 `json:"value"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}

// MarketCapLabel returns the market-cap category, or "" when absent.
func (h Holding) MarketCapLabel() string {
	if h.MarketCap == nil {
		return ""
	}
	return *h.MarketCap
}

// InvestedAmount returns quantity x average price.
func (h Holding) InvestedAmount() float64 {
	return float64(h.Quantity) * h.AvgPrice
}

// CloneHoldings returns a copy of the slice; MarketCap pointers are duplicated
// so the copy shares no memory with the source.
func CloneHoldings(src []Holding) []Holding {
	out := make([]Holding, len(src))
	for i, h := range src {
		if h.MarketCap != nil {
			mc := *h.MarketCap
			h.MarketCap = &mc
		}
		out[i] = h
	}
	return out
}

// AllocationSlice is the value and share of one allocation bucket.
type AllocationSlice struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// Allocation groups portfolio value by sector and by market-cap category.
type Allocation struct {
	BySector    map[string]AllocationSlice `json:"bySector"`
	ByMarketCap map[string]AllocationSlice `json:"byMarketCap"`
}

// TimelinePoint is one month-start observation. Date is "YYYY-MM-DD".
type TimelinePoint struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Nifty50   float64 `json:"nifty50"`
	Gold      float64 `json:"gold"`
}

// PeriodReturns holds trailing returns in percent.
type PeriodReturns struct {
	OneMonth    float64 `json:"1month"`
	ThreeMonths float64 `json:"3months"`
	OneYear     float64 `json:"1year"`
}

// Return series keys used in Performance.Returns.
const (
	SeriesPortfolio = "portfolio"
	SeriesNifty50   = "nifty50"
	SeriesGold      = "gold"
)

// Performance is the historical value timeline plus trailing returns per series.
type Performance struct {
	Timeline []TimelinePoint          `json:"timeline"`
	Returns  map[string]PeriodReturns `json:"returns"`
}

// Performer identifies the best or worst position in the summary.
type Performer struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	GainPercent float64 `json:"gainPercent"`
}

// Summary is the headline statistics block of the dashboard.
type Summary struct {
	TotalValue           float64   `json:"totalValue"`
	TotalInvested        float64   `json:"totalInvested"`
	TotalGainLoss        float64   `json:"totalGainLoss"`
	TotalGainLossPercent float64   `json:"totalGainLossPercent"`
	TopPerformer         Performer `json:"topPerformer"`
	WorstPerformer       Performer `json:"worstPerformer"`
	DiversificationScore float64   `json:"diversificationScore"`
	RiskLevel            string    `json:"riskLevel"`
}
