package portfolio

import (
	"bytes"
	"fmt"
	"slices"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/portfolio-dashboard/internal/common"
	"github.com/bobmcallan/portfolio-dashboard/internal/models"
)

// sliceColors are assigned to allocation slices in order.
var sliceColors = []string{"0088FE", "00C49F", "FFBB28", "FF8042", "8884D8", "82CA9D", "FFC658"}

// RenderPerformanceChart renders a PNG line chart of the performance timeline.
// Three series: Portfolio (blue), Nifty 50 (green) and Gold (amber).
// Returns raw PNG bytes.
func RenderPerformanceChart(perf *models.Performance) ([]byte, error) {
	if perf == nil || len(perf.Timeline) < 2 {
		n := 0
		if perf != nil {
			n = len(perf.Timeline)
		}
		return nil, fmt.Errorf("need at least 2 data points, got %d", n)
	}

	points := perf.Timeline
	xValues := make([]time.Time, len(points))
	portfolioY := make([]float64, len(points))
	niftyY := make([]float64, len(points))
	goldY := make([]float64, len(points))

	for i, p := range points {
		d, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid timeline date %q: %w", p.Date, err)
		}
		xValues[i] = d
		portfolioY[i] = p.Portfolio
		niftyY[i] = p.Nifty50
		goldY[i] = p.Gold
	}

	series := func(name, color string, width float64, y []float64) chart.TimeSeries {
		return chart.TimeSeries{
			Name: name,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(color),
				StrokeWidth: width,
			},
			XValues: xValues,
			YValues: y,
		}
	}

	graph := chart.Chart{
		Title:  "Portfolio Performance",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 2006")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return common.FormatINRCompact(f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			series("Portfolio", "8884d8", 2.5, portfolioY),
			series("Nifty 50", "82ca9d", 1.5, niftyY),
			series("Gold", "ffc658", 1.5, goldY),
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderAllocationChart renders a PNG pie chart of an allocation breakdown.
// Slices are drawn in key order so repeated renders are identical.
func RenderAllocationChart(title string, buckets map[string]models.AllocationSlice) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, fmt.Errorf("allocation %q has no slices", title)
	}

	keys := sortedKeys(buckets)
	values := make([]chart.Value, 0, len(keys))
	for i, k := range keys {
		s := buckets[k]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s", k, common.FormatPercent(s.Percentage, 1)),
			Value: s.Value,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(sliceColors[i%len(sliceColors)]),
			},
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  480,
		Height: 480,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

func sortedKeys(m map[string]models.AllocationSlice) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
