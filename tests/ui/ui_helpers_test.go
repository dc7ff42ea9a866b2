package tests

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bobmcallan/portfolio-dashboard/internal/app"
	"github.com/bobmcallan/portfolio-dashboard/internal/common"
	"github.com/bobmcallan/portfolio-dashboard/internal/config"
	"github.com/bobmcallan/portfolio-dashboard/internal/server"
	commontest "github.com/bobmcallan/portfolio-dashboard/tests/common"
)

// startDashboard runs the full server stack on a loopback listener.
func startDashboard(t *testing.T) string {
	t.Helper()

	application, err := app.New(config.NewDefaultConfig(), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	ts := httptest.NewServer(server.New(application).Handler())
	t.Cleanup(func() {
		ts.Close()
		application.Close()
	})
	return ts.URL
}

// newBrowser skips the test when no Chrome binary is installed.
func newBrowser(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	if testing.Short() {
		t.Skip("browser tests skipped in -short mode")
	}
	if !commontest.ChromeAvailable() {
		t.Skip("chrome not found on PATH")
	}
	return commontest.NewBrowserContext(commontest.BrowserConfigFromTest())
}

// takeScreenshot saves a full-page capture under the results directory.
func takeScreenshot(t *testing.T, ctx context.Context, name string) {
	t.Helper()
	path := filepath.Join(commontest.GetScreenshotDir("ui"), name+".png")
	if err := commontest.Screenshot(ctx, path); err != nil {
		t.Logf("screenshot %s failed: %v", name, err)
	}
}

func rowSymbols(t *testing.T, ctx context.Context) []string {
	t.Helper()
	symbols, err := commontest.AttrValues(ctx, "#holdings-table tbody tr[data-symbol]", "data-symbol")
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	return symbols
}
