package server

import (
	"net/http"

	"github.com/bobmcallan/portfolio-dashboard/internal/handlers"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	a := s.app

	// Dashboard page (HTML templates)
	mux.Handle("/", a.DashboardHandler)

	// MCP endpoint (JSON-RPC over HTTP)
	if a.MCPHandler != nil {
		mux.Handle("/mcp", a.MCPHandler)
	}

	// Portfolio datasets
	mux.HandleFunc("/api/portfolio/holdings", GetOnly(a.PortfolioHandler.HandleHoldings))
	mux.HandleFunc("/api/portfolio/allocation", GetOnly(a.PortfolioHandler.HandleAllocation))
	mux.HandleFunc("/api/portfolio/performance", GetOnly(a.PortfolioHandler.HandlePerformance))
	mux.HandleFunc("/api/portfolio/summary", GetOnly(a.PortfolioHandler.HandleSummary))

	// Chart images
	mux.HandleFunc("/api/portfolio/charts/performance.png", GetOnly(a.PortfolioHandler.HandlePerformanceChart))
	mux.HandleFunc("/api/portfolio/charts/sector.png", GetOnly(a.PortfolioHandler.HandleSectorChart))
	mux.HandleFunc("/api/portfolio/charts/marketcap.png", GetOnly(a.PortfolioHandler.HandleMarketCapChart))

	// Service routes
	mux.HandleFunc("/api/health", a.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", a.VersionHandler.ServeHTTP)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", handlers.APINotFound)

	return mux
}
