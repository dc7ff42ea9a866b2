// Package mcp exposes the portfolio datasets and the holdings view as MCP tools.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/portfolio-dashboard/internal/common"
	"github.com/bobmcallan/portfolio-dashboard/internal/config"
	"github.com/bobmcallan/portfolio-dashboard/internal/portfolio"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	server     *mcpserver.MCPServer
	logger     *common.Logger
}

// NewServer builds an MCP server with every portfolio tool registered and
// returns it with the tool count.
func NewServer(source portfolio.Source, logger *common.Logger) (*mcpserver.MCPServer, int) {
	s := mcpserver.NewMCPServer(
		"portfolio-dashboard",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)
	n := RegisterTools(s, source, logger)
	return s, n
}

// NewHandler creates the MCP handler serving source.
func NewHandler(source portfolio.Source, logger *common.Logger) *Handler {
	s, toolCount := NewServer(source, logger)

	streamable := mcpserver.NewStreamableHTTPServer(s,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", toolCount).
		Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		server:     s,
		logger:     logger,
	}
}

// Server returns the underlying MCP server.
func (h *Handler) Server() *mcpserver.MCPServer {
	return h.server
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
