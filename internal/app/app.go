package app

import (
	"context"
	"strings"

	"github.com/bobmcallan/portfolio-dashboard/internal/cache"
	"github.com/bobmcallan/portfolio-dashboard/internal/client"
	"github.com/bobmcallan/portfolio-dashboard/internal/common"
	"github.com/bobmcallan/portfolio-dashboard/internal/config"
	"github.com/bobmcallan/portfolio-dashboard/internal/handlers"
	"github.com/bobmcallan/portfolio-dashboard/internal/mcp"
	"github.com/bobmcallan/portfolio-dashboard/internal/portfolio"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	// Dataset served by the JSON API.
	Fixtures *portfolio.StaticSource
	// Source read by the dashboard page and the MCP tools: the fixtures in
	// process, or a PortfolioClient when source.url is set.
	Source portfolio.Source
	Cache  *cache.BodyCache

	// HTTP handlers
	HealthHandler    *handlers.HealthHandler
	VersionHandler   *handlers.VersionHandler
	PortfolioHandler *handlers.PortfolioHandler
	DashboardHandler *handlers.DashboardHandler
	MCPHandler       *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config:   cfg,
		Logger:   logger,
		Fixtures: portfolio.NewStaticSource(),
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("running in dev mode")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	a.initSource()
	a.checkFixtures()
	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initSource selects the data source for the dashboard and MCP tools.
func (a *App) initSource() {
	if url := a.Config.Source.URL; url != "" {
		a.Source = client.NewPortfolioClient(url, a.Config.Source.GetTimeout())
		a.Logger.Info().
			Str("url", url).
			Dur("timeout", a.Config.Source.GetTimeout()).
			Msg("dashboard reads portfolio data over HTTP")
		return
	}
	a.Source = a.Fixtures
	a.Logger.Info().Msg("dashboard reads the built-in portfolio dataset")
}

// checkFixtures logs every inconsistency in the served holdings. Issues
// never stop the server.
func (a *App) checkFixtures() {
	holdings, err := a.Fixtures.Holdings(context.Background())
	if err != nil {
		a.Logger.Warn().Err(err).Msg("failed to load holdings for validation")
		return
	}

	issues := portfolio.Validate(holdings)
	for _, issue := range issues {
		a.Logger.Warn().
			Str("symbol", issue.Symbol).
			Str("field", issue.Field).
			Str("issue", issue.Message).
			Msg("holding data inconsistent")
	}
	a.Logger.Debug().
		Int("holdings", len(holdings)).
		Int("issues", len(issues)).
		Msg("holdings validated")
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.Cache = cache.New(a.Config.Cache.GetTTL(), a.Config.Cache.MaxEntries)
	if !a.Cache.Enabled() {
		a.Logger.Info().Msg("response cache disabled")
	}

	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.PortfolioHandler = handlers.NewPortfolioHandler(a.Logger, a.Fixtures, a.Cache)
	a.DashboardHandler = handlers.NewDashboardHandler(a.Logger, a.Source, a.Config.IsDevMode())
	a.MCPHandler = mcp.NewHandler(a.Source, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
