package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bobmcallan/portfolio-dashboard/internal/cache"
	"github.com/bobmcallan/portfolio-dashboard/internal/common"
	"github.com/bobmcallan/portfolio-dashboard/internal/models"
	"github.com/bobmcallan/portfolio-dashboard/internal/portfolio"
)

// PortfolioHandler serves the /api/portfolio datasets and the chart images
// drawn from them.
type PortfolioHandler struct {
	logger *common.Logger
	source portfolio.Source
	cache  *cache.BodyCache
}

// NewPortfolioHandler creates a handler over source. A nil or disabled cache
// encodes every response afresh.
func NewPortfolioHandler(logger *common.Logger, source portfolio.Source, bodyCache *cache.BodyCache) *PortfolioHandler {
	return &PortfolioHandler{
		logger: logger,
		source: source,
		cache:  bodyCache,
	}
}

// HandleHoldings handles GET /api/portfolio/holdings.
func (h *PortfolioHandler) HandleHoldings(w http.ResponseWriter, r *http.Request) {
	h.serveJSON(w, r, "holdings", func(ctx context.Context) (interface{}, error) {
		holdings, err := h.source.Holdings(ctx)
		if err != nil {
			return nil, err
		}
		if holdings == nil {
			holdings = []models.Holding{}
		}
		return holdings, nil
	})
}

// HandleAllocation handles GET /api/portfolio/allocation.
func (h *PortfolioHandler) HandleAllocation(w http.ResponseWriter, r *http.Request) {
	h.serveJSON(w, r, "allocation", func(ctx context.Context) (interface{}, error) {
		return h.source.Allocation(ctx)
	})
}

// HandlePerformance handles GET /api/portfolio/performance.
func (h *PortfolioHandler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	h.serveJSON(w, r, "performance", func(ctx context.Context) (interface{}, error) {
		return h.source.Performance(ctx)
	})
}

// HandleSummary handles GET /api/portfolio/summary.
func (h *PortfolioHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	h.serveJSON(w, r, "summary", func(ctx context.Context) (interface{}, error) {
		return h.source.Summary(ctx)
	})
}

// HandlePerformanceChart handles GET /api/portfolio/charts/performance.png.
func (h *PortfolioHandler) HandlePerformanceChart(w http.ResponseWriter, r *http.Request) {
	h.servePNG(w, r, "performance chart", func(ctx context.Context) ([]byte, error) {
		perf, err := h.source.Performance(ctx)
		if err != nil {
			return nil, err
		}
		return portfolio.RenderPerformanceChart(perf)
	})
}

// HandleSectorChart handles GET /api/portfolio/charts/sector.png.
func (h *PortfolioHandler) HandleSectorChart(w http.ResponseWriter, r *http.Request) {
	h.servePNG(w, r, "sector chart", func(ctx context.Context) ([]byte, error) {
		a, err := h.source.Allocation(ctx)
		if err != nil {
			return nil, err
		}
		return portfolio.RenderAllocationChart("Sector Allocation", a.BySector)
	})
}

// HandleMarketCapChart handles GET /api/portfolio/charts/marketcap.png.
func (h *PortfolioHandler) HandleMarketCapChart(w http.ResponseWriter, r *http.Request) {
	h.servePNG(w, r, "market cap chart", func(ctx context.Context) ([]byte, error) {
		a, err := h.source.Allocation(ctx)
		if err != nil {
			return nil, err
		}
		return portfolio.RenderAllocationChart("Market Cap Distribution", a.ByMarketCap)
	})
}

// serveJSON answers with the encoded dataset, or 500 with a fixed message
// naming the dataset when the source fails.
func (h *PortfolioHandler) serveJSON(w http.ResponseWriter, r *http.Request, dataset string, fetch func(context.Context) (interface{}, error)) {
	h.serve(w, r, "application/json", "Failed to fetch portfolio "+dataset, func(ctx context.Context) ([]byte, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return append(body, '\n'), nil
	})
}

func (h *PortfolioHandler) servePNG(w http.ResponseWriter, r *http.Request, what string, render func(context.Context) ([]byte, error)) {
	h.serve(w, r, "image/png", "Failed to render "+what, render)
}

func (h *PortfolioHandler) serve(w http.ResponseWriter, r *http.Request, contentType, failMsg string, produce func(context.Context) ([]byte, error)) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	key := cache.MakeKey(http.MethodGet, r.URL.Path)
	if cached, ok := h.cache.Get(key); ok {
		writeBody(w, cached)
		return
	}

	body, err := produce(r.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error().Str("path", r.URL.Path).Err(err).Msg(failMsg)
		}
		WriteError(w, http.StatusInternalServerError, failMsg)
		return
	}

	entry := &cache.CachedBody{ContentType: contentType, Body: body}
	h.cache.Set(key, entry)
	writeBody(w, entry)
}

func writeBody(w http.ResponseWriter, b *cache.CachedBody) {
	w.Header().Set("Content-Type", b.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(b.Body)
}
