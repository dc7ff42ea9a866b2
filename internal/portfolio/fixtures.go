package portfolio

import "github.com/bobmcallan/portfolio-dashboard/internal/models"

func strPtr(s string) *string { return &s }

// sampleHoldings is the fixed holdings dataset served by the dashboard.
// WIPRO carries no market-cap category.
var sampleHoldings = []models.Holding{
	{
		Symbol:          "RELIANCE",
		Name:            "Reliance Industries Ltd",
		Quantity:        50,
		AvgPrice:        2450,
		CurrentPrice:    2680.5,
		Sector:          "Energy",
		MarketCap:       strPtr("Large"),
		Value:           134025,
		GainLoss:        11525,
		GainLossPercent: 9.4,
	},
	{
		Symbol:          "INFY",
		Name:            "Infosys Limited",
		Quantity:        100,
		AvgPrice:        1800,
		CurrentPrice:    2010.75,
		Sector:          "Technology",
		MarketCap:       strPtr("Large"),
		Value:           201075,
		GainLoss:        21075,
		GainLossPercent: 11.7,
	},
	{
		Symbol:          "TCS",
		Name:            "Tata Consultancy Services Ltd",
		Quantity:        75,
		AvgPrice:        3500,
		CurrentPrice:    3850.25,
		Sector:          "Technology",
		MarketCap:       strPtr("Large"),
		Value:           288768.75,
		GainLoss:        26268.75,
		GainLossPercent: 10.0,
	},
	{
		Symbol:          "HDFC",
		Name:            "HDFC Bank Ltd",
		Quantity:        200,
		AvgPrice:        1500,
		CurrentPrice:    1468.5,
		Sector:          "Banking",
		MarketCap:       strPtr("Large"),
		Value:           293700,
		GainLoss:        -6300,
		GainLossPercent: -2.1,
	},
	{
		Symbol:          "ICICI",
		Name:            "ICICI Bank Ltd",
		Quantity:        150,
		AvgPrice:        950,
		CurrentPrice:    1025.75,
		Sector:          "Banking",
		MarketCap:       strPtr("Large"),
		Value:           153862.5,
		GainLoss:        11362.5,
		GainLossPercent: 8.0,
	},
	{
		Symbol:          "SUNPHARMA",
		Name:            "Sun Pharmaceutical Industries Ltd",
		Quantity:        100,
		AvgPrice:        1200,
		CurrentPrice:    1360,
		Sector:          "Healthcare",
		MarketCap:       strPtr("Large"),
		Value:           136000,
		GainLoss:        16000,
		GainLossPercent: 13.3,
	},
	{
		Symbol:          "WIPRO",
		Name:            "Wipro Ltd",
		Quantity:        120,
		AvgPrice:        450,
		CurrentPrice:    485.5,
		Sector:          "Technology",
		Value:           58260,
		GainLoss:        4260,
		GainLossPercent: 7.9,
	},
	{
		Symbol:          "AXISBANK",
		Name:            "Axis Bank Ltd",
		Quantity:        80,
		AvgPrice:        1100,
		CurrentPrice:    1165.25,
		Sector:          "Banking",
		MarketCap:       strPtr("Large"),
		Value:           93220,
		GainLoss:        5220,
		GainLossPercent: 5.9,
	},
	{
		Symbol:          "BAJFINANCE",
		Name:            "Bajaj Finance Ltd",
		Quantity:        50,
		AvgPrice:        7500,
		CurrentPrice:    8200,
		Sector:          "Financial",
		MarketCap:       strPtr("Large"),
		Value:           410000,
		GainLoss:        35000,
		GainLossPercent: 9.3,
	},
	{
		Symbol:          "M&M",
		Name:            "Mahindra & Mahindra Ltd",
		Quantity:        60,
		AvgPrice:        1800,
		CurrentPrice:    1950,
		Sector:          "Automobile",
		MarketCap:       strPtr("Large"),
		Value:           117000,
		GainLoss:        9000,
		GainLossPercent: 8.3,
	},
	{
		Symbol:          "LT",
		Name:            "Larsen & Toubro Ltd",
		Quantity:        40,
		AvgPrice:        3200,
		CurrentPrice:    3450,
		Sector:          "Infrastructure",
		MarketCap:       strPtr("Large"),
		Value:           138000,
		GainLoss:        10000,
		GainLossPercent: 7.8,
	},
	{
		Symbol:          "KOTAKBANK",
		Name:            "Kotak Mahindra Bank Ltd",
		Quantity:        70,
		AvgPrice:        1800,
		CurrentPrice:    1885,
		Sector:          "Banking",
		MarketCap:       strPtr("Large"),
		Value:           131950,
		GainLoss:        5950,
		GainLossPercent: 4.7,
	},
}

var sampleAllocation = models.Allocation{
	BySector: map[string]models.AllocationSlice{
		"Technology": {Value: 250000, Percentage: 35.7},
		"Banking":    {Value: 180000, Percentage: 25.7},
		"Energy":     {Value: 134025, Percentage: 19.1},
		"Healthcare": {Value: 136000, Percentage: 19.4},
	},
	ByMarketCap: map[string]models.AllocationSlice{
		"Large": {Value: 1970711.25, Percentage: 65.0},
		"Mid":   {Value: 175000.00, Percentage: 25.0},
		"Small": {Value: 70000.00, Percentage: 10.0},
	},
}

var samplePerformance = models.Performance{
	Timeline: []models.TimelinePoint{
		{Date: "2024-01-01", Portfolio: 650000, Nifty50: 21000, Gold: 62000},
		{Date: "2024-02-01", Portfolio: 665000, Nifty50: 21500, Gold: 63200},
		{Date: "2024-03-01", Portfolio: 680000, Nifty50: 22100, Gold: 64500},
		{Date: "2024-04-01", Portfolio: 690000, Nifty50: 22800, Gold: 65800},
		{Date: "2024-05-01", Portfolio: 695000, Nifty50: 23200, Gold: 66900},
		{Date: "2024-06-01", Portfolio: 700000, Nifty50: 23500, Gold: 68000},
	},
	Returns: map[string]models.PeriodReturns{
		models.SeriesPortfolio: {OneMonth: 2.3, ThreeMonths: 8.1, OneYear: 15.7},
		models.SeriesNifty50:   {OneMonth: 1.8, ThreeMonths: 6.2, OneYear: 12.4},
		models.SeriesGold:      {OneMonth: -0.5, ThreeMonths: 4.1, OneYear: 8.9},
	},
}

var sampleSummary = models.Summary{
	TotalValue:           2215711.25,
	TotalInvested:        1900000,
	TotalGainLoss:        315711.25,
	TotalGainLossPercent: 16.67,
	TopPerformer: models.Performer{
		Symbol:      "BAJFINANCE",
		Name:        "Bajaj Finance Ltd",
		GainPercent: 28.5,
	},
	WorstPerformer: models.Performer{
		Symbol:      "HDFC",
		Name:        "HDFC Bank Ltd",
		GainPercent: -2.1,
	},
	DiversificationScore: 8.2,
	RiskLevel:            "Moderate",
}
