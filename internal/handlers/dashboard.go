package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"slices"

	"github.com/bobmcallan/portfolio-dashboard/internal/common"
	"github.com/bobmcallan/portfolio-dashboard/internal/config"
	"github.com/bobmcallan/portfolio-dashboard/internal/models"
	"github.com/bobmcallan/portfolio-dashboard/internal/portfolio"
	"github.com/bobmcallan/portfolio-dashboard/internal/viewmodel"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

// columnLabels are the holdings table headers.
var columnLabels = map[models.SortField]string{
	models.SortSymbol:          "Symbol",
	models.SortName:            "Name",
	models.SortSector:          "Sector",
	models.SortMarketCap:       "Market Cap",
	models.SortQuantity:        "Qty",
	models.SortAvgPrice:        "Avg Price",
	models.SortCurrentPrice:    "Current Price",
	models.SortValue:           "Value",
	models.SortGainLoss:        "Gain/Loss",
	models.SortGainLossPercent: "Gain %",
}

var templateFuncs = template.FuncMap{
	"inr":        common.FormatINR,
	"inrCompact": common.FormatINRCompact,
	"pct":        func(v float64) string { return common.FormatPercent(v, 2) },
	"pct1":       func(v float64) string { return common.FormatPercent(v, 1) },
	"trend": func(v float64) string {
		if v >= 0 {
			return "gain"
		}
		return "loss"
	},
}

// SortColumn is one holdings table header. Href applies the sort toggle for
// Field to the current view.
type SortColumn struct {
	Label     string
	Field     models.SortField
	Href      string
	Active    bool
	Indicator string
	Numeric   bool
}

// AllocationRow is one allocation bucket in display order.
type AllocationRow struct {
	Name string
	models.AllocationSlice
}

// ReturnsRow is the trailing returns of one series.
type ReturnsRow struct {
	Label string
	models.PeriodReturns
}

// DashboardPage is the data rendered by dashboard.html.
type DashboardPage struct {
	Version string
	DevMode bool

	Summary    *models.Summary
	SummaryErr string

	SectorRows    []AllocationRow
	MarketCapRows []AllocationRow
	AllocationErr string

	Returns        []ReturnsRow
	PerformanceErr string

	Holdings viewmodel.State
	Rows     []models.Holding
	Columns  []SortColumn
}

// DashboardHandler renders the portfolio dashboard. View state travels in the
// query string: q (search), sort (field) and dir (asc|desc).
type DashboardHandler struct {
	logger    *common.Logger
	source    portfolio.Source
	templates *template.Template
	devMode   bool
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(logger *common.Logger, source portfolio.Source, devMode bool) *DashboardHandler {
	templates := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS,
		"templates/*.html", "templates/partials/*.html"))

	return &DashboardHandler{
		logger:    logger,
		source:    source,
		templates: templates,
		devMode:   devMode,
	}
}

// ServeHTTP handles GET /.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !RequireMethod(w, r, "GET") {
		return
	}

	page := h.buildPage(r)

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "dashboard.html").Str("error", err.Error()).Msg("failed to render dashboard")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *DashboardHandler) buildPage(r *http.Request) *DashboardPage {
	ctx := r.Context()
	q := r.URL.Query()

	page := &DashboardPage{
		Version: config.GetVersion(),
		DevMode: h.devMode,
	}

	state := viewmodel.NewState()
	state = viewmodel.OnSearchChange(state, q.Get("q"))
	state.SortField = viewmodel.ParseSortField(q.Get("sort"))
	state.SortDirection = viewmodel.ParseSortDirection(q.Get("dir"))

	if holdings, err := h.source.Holdings(ctx); err != nil {
		h.logFailure("holdings", err)
		state = viewmodel.OnFetchFailed(state, err)
	} else {
		state = viewmodel.OnFetchComplete(state, holdings)
	}
	page.Holdings = state
	page.Rows = viewmodel.Rows(state)
	page.Columns = sortColumns(state)

	if summary, err := h.source.Summary(ctx); err != nil {
		h.logFailure("summary", err)
		page.SummaryErr = err.Error()
	} else {
		page.Summary = summary
	}

	if alloc, err := h.source.Allocation(ctx); err != nil {
		h.logFailure("allocation", err)
		page.AllocationErr = err.Error()
	} else {
		page.SectorRows = allocationRows(alloc.BySector)
		page.MarketCapRows = allocationRows(alloc.ByMarketCap)
	}

	if perf, err := h.source.Performance(ctx); err != nil {
		h.logFailure("performance", err)
		page.PerformanceErr = err.Error()
	} else {
		page.Returns = returnsRows(perf)
	}

	return page
}

func (h *DashboardHandler) logFailure(dataset string, err error) {
	if h.logger != nil {
		h.logger.Warn().Str("dataset", dataset).Err(err).Msg("dashboard fetch failed")
	}
}

// sortColumns builds the table headers for s. Each link carries the state
// that selecting the column would produce.
func sortColumns(s viewmodel.State) []SortColumn {
	cols := make([]SortColumn, 0, len(models.SortFields))
	for _, f := range models.SortFields {
		next := viewmodel.OnSortToggle(s, f)
		col := SortColumn{
			Label:     columnLabels[f],
			Field:     f,
			Href:      dashboardURL(next),
			Active:    s.SortField == f,
			Indicator: "↕",
			Numeric:   f.IsNumeric(),
		}
		if col.Active {
			col.Indicator = "↑"
			if s.SortDirection == models.Descending {
				col.Indicator = "↓"
			}
		}
		cols = append(cols, col)
	}
	return cols
}

// dashboardURL encodes the view state of s as a dashboard link.
func dashboardURL(s viewmodel.State) string {
	v := url.Values{}
	if s.SearchTerm != "" {
		v.Set("q", s.SearchTerm)
	}
	v.Set("sort", string(s.SortField))
	v.Set("dir", string(s.SortDirection))
	return "/?" + v.Encode()
}

func allocationRows(m map[string]models.AllocationSlice) []AllocationRow {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([]AllocationRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, AllocationRow{Name: name, AllocationSlice: m[name]})
	}
	return rows
}

func returnsRows(perf *models.Performance) []ReturnsRow {
	series := []struct{ key, label string }{
		{models.SeriesPortfolio, "Portfolio"},
		{models.SeriesNifty50, "Nifty 50"},
		{models.SeriesGold, "Gold"},
	}
	rows := make([]ReturnsRow, 0, len(series))
	for _, s := range series {
		if r, ok := perf.Returns[s.key]; ok {
			rows = append(rows, ReturnsRow{Label: s.label, PeriodReturns: r})
		}
	}
	return rows
}
