// Package portfolio provides the dashboard's portfolio data: the sample
// dataset, the sources that serve it, consistency checks and chart rendering.
package portfolio

import (
	"context"
	"maps"

	"github.com/bobmcallan/portfolio-dashboard/internal/models"
)

// HoldingsSource supplies the ordered holdings of a portfolio.
type HoldingsSource interface {
	Holdings(ctx context.Context) ([]models.Holding, error)
}

// Source supplies every dataset the dashboard displays.
type Source interface {
	HoldingsSource
	Allocation(ctx context.Context) (*models.Allocation, error)
	Performance(ctx context.Context) (*models.Performance, error)
	Summary(ctx context.Context) (*models.Summary, error)
}

// StaticSource serves the built-in sample dataset. Every call returns fresh
// copies, so callers may modify results without affecting later calls.
type StaticSource struct{}

// NewStaticSource returns a source backed by the sample dataset.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Holdings returns the sample holdings in their fixed order.
func (s *StaticSource) Holdings(_ context.Context) ([]models.Holding, error) {
	return models.CloneHoldings(sampleHoldings), nil
}

// Allocation returns the sample sector and market-cap breakdown.
func (s *StaticSource) Allocation(_ context.Context) (*models.Allocation, error) {
	return &models.Allocation{
		BySector:    maps.Clone(sampleAllocation.BySector),
		ByMarketCap: maps.Clone(sampleAllocation.ByMarketCap),
	}, nil
}

// Performance returns the sample timeline and trailing returns.
func (s *StaticSource) Performance(_ context.Context) (*models.Performance, error) {
	timeline := make([]models.TimelinePoint, len(samplePerformance.Timeline))
	copy(timeline, samplePerformance.Timeline)
	return &models.Performance{
		Timeline: timeline,
		Returns:  maps.Clone(samplePerformance.Returns),
	}, nil
}

// Summary returns the sample headline statistics.
func (s *StaticSource) Summary(_ context.Context) (*models.Summary, error) {
	summary := sampleSummary
	return &summary, nil
}
