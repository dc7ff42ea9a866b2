package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/portfolio-dashboard/internal/common"
	"github.com/bobmcallan/portfolio-dashboard/internal/models"
	"github.com/bobmcallan/portfolio-dashboard/internal/portfolio"
	"github.com/bobmcallan/portfolio-dashboard/internal/viewmodel"
)

// HoldingsResult is the get_holdings payload.
type HoldingsResult struct {
	Search        string               `json:"search"`
	SortField     models.SortField     `json:"sort_field"`
	SortDirection models.SortDirection `json:"sort_direction"`
	Count         int                  `json:"count"`
	Holdings      []models.Holding     `json:"holdings"`
}

// RegisterTools adds the portfolio tools to s and returns how many were added.
func RegisterTools(s *server.MCPServer, source portfolio.Source, logger *common.Logger) int {
	tools := []server.ServerTool{
		{Tool: HoldingsTool(), Handler: HoldingsToolHandler(source, logger)},
		{Tool: AllocationTool(), Handler: datasetHandler("allocation", logger, func(ctx context.Context) (interface{}, error) {
			return source.Allocation(ctx)
		})},
		{Tool: PerformanceTool(), Handler: datasetHandler("performance", logger, func(ctx context.Context) (interface{}, error) {
			return source.Performance(ctx)
		})},
		{Tool: SummaryTool(), Handler: datasetHandler("summary", logger, func(ctx context.Context) (interface{}, error) {
			return source.Summary(ctx)
		})},
		{Tool: VersionTool(), Handler: VersionToolHandler()},
	}
	for _, t := range tools {
		s.AddTool(t.Tool, t.Handler)
	}
	return len(tools)
}

func sortFieldNames() []string {
	names := make([]string, len(models.SortFields))
	for i, f := range models.SortFields {
		names[i] = string(f)
	}
	return names
}

// HoldingsTool returns the mcp.Tool definition for get_holdings.
func HoldingsTool() mcp.Tool {
	return mcp.NewTool("get_holdings",
		mcp.WithDescription("List portfolio holdings as shown in the dashboard table. "+
			"Optionally filter by a case-insensitive substring of symbol, name or sector, and sort by any column."),
		mcp.WithString("search",
			mcp.Description("Substring to match against symbol, name or sector. Empty returns all holdings."),
		),
		mcp.WithString("sort_field",
			mcp.Description("Column to sort by. Defaults to symbol."),
			mcp.Enum(sortFieldNames()...),
		),
		mcp.WithString("sort_direction",
			mcp.Description("asc or desc. Defaults to asc."),
			mcp.Enum(string(models.Ascending), string(models.Descending)),
		),
	)
}

// HoldingsToolHandler fetches holdings from source and applies the requested
// search and sort.
func HoldingsToolHandler(source portfolio.Source, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		search := r.GetString("search", "")

		field := models.SortSymbol
		if raw := r.GetString("sort_field", ""); raw != "" {
			field = models.SortField(raw)
			if !field.IsValid() {
				return errorResult(fmt.Sprintf("Error: invalid sort_field %q (valid: %s)", raw, strings.Join(sortFieldNames(), ", "))), nil
			}
		}

		dir := models.Ascending
		if raw := r.GetString("sort_direction", ""); raw != "" {
			dir = models.SortDirection(raw)
			if dir != models.Ascending && dir != models.Descending {
				return errorResult(fmt.Sprintf("Error: invalid sort_direction %q (valid: asc, desc)", raw)), nil
			}
		}

		log := toolLogger(logger, "get_holdings")
		start := time.Now()

		state := viewmodel.NewState()
		state = viewmodel.OnSearchChange(state, search)
		state.SortField = field
		state.SortDirection = dir

		holdings, err := source.Holdings(ctx)
		if err != nil {
			state = viewmodel.OnFetchFailed(state, err)
			log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("tool failed")
			return errorResult("Failed to fetch portfolio holdings: " + state.Err), nil
		}
		state = viewmodel.OnFetchComplete(state, holdings)
		rows := viewmodel.Rows(state)

		log.Debug().Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("tool complete")

		return jsonResult(HoldingsResult{
			Search:        search,
			SortField:     field,
			SortDirection: dir,
			Count:         len(rows),
			Holdings:      rows,
		}), nil
	}
}

// AllocationTool returns the mcp.Tool definition for get_allocation.
func AllocationTool() mcp.Tool {
	return mcp.NewTool("get_allocation",
		mcp.WithDescription("Get portfolio value and percentage share by sector and by market-cap category."),
	)
}

// PerformanceTool returns the mcp.Tool definition for get_performance.
func PerformanceTool() mcp.Tool {
	return mcp.NewTool("get_performance",
		mcp.WithDescription("Get the monthly value timeline of the portfolio against Nifty 50 and gold, "+
			"with 1 month, 3 month and 1 year returns."),
	)
}

// SummaryTool returns the mcp.Tool definition for get_summary.
func SummaryTool() mcp.Tool {
	return mcp.NewTool("get_summary",
		mcp.WithDescription("Get headline portfolio statistics: totals, gain/loss, top and worst performer, "+
			"diversification score and risk level."),
	)
}

// datasetHandler returns a handler that answers with one dataset as JSON.
func datasetHandler(dataset string, logger *common.Logger, fetch func(context.Context) (interface{}, error)) server.ToolHandlerFunc {
	tool := "get_" + dataset
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, tool)
		start := time.Now()

		v, err := fetch(ctx)
		if err != nil {
			log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("tool failed")
			return errorResult("Failed to fetch portfolio " + dataset), nil
		}

		log.Debug().Dur("elapsed", time.Since(start)).Msg("tool complete")
		return jsonResult(v), nil
	}
}

// toolLogger tags a logger with a fresh correlation id and the tool name.
func toolLogger(logger *common.Logger, tool string) *common.Logger {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	l := logger.WithCorrelationId(uuid.NewString())
	l.Debug().Str("tool", tool).Msg("tool call")
	return l
}
