// Package common holds helpers shared by the browser test suites.
package common

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// TestConfig is read from tests/ui/test_config.toml when present.
type TestConfig struct {
	Results struct {
		Dir string `toml:"dir"`
	} `toml:"results"`
	Browser struct {
		Headless    bool `toml:"headless"`
		TimeoutSecs int  `toml:"timeout_seconds"`
	} `toml:"browser"`
}

var (
	globalConfig     *TestConfig
	globalConfigOnce sync.Once
)

// LoadTestConfig returns the suite configuration, loaded once.
func LoadTestConfig() *TestConfig {
	globalConfigOnce.Do(func() {
		globalConfig = &TestConfig{}
		globalConfig.Results.Dir = "tests/results"
		globalConfig.Browser.Headless = true
		globalConfig.Browser.TimeoutSecs = 30

		configPaths := []string{
			"tests/ui/test_config.toml",
			"test_config.toml",
		}

		for _, path := range configPaths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if err := toml.Unmarshal(data, globalConfig); err == nil {
				return
			}
		}
	})
	return globalConfig
}

// BrowserConfigFromTest builds browser settings from the suite configuration.
func BrowserConfigFromTest() *BrowserConfig {
	cfg := LoadTestConfig()
	timeout := time.Duration(cfg.Browser.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BrowserConfig{Headless: cfg.Browser.Headless, Timeout: timeout}
}

// GetScreenshotDir returns a per-suite directory for screenshots,
// honouring PORTFOLIO_TEST_RESULTS_DIR.
func GetScreenshotDir(subdir string) string {
	base := os.Getenv("PORTFOLIO_TEST_RESULTS_DIR")
	if base == "" {
		base = LoadTestConfig().Results.Dir
		if wd, err := os.Getwd(); err == nil && filepath.Base(wd) == "ui" {
			base = filepath.Join("..", "..", base)
		}
	}
	dir := filepath.Join(base, subdir)
	os.MkdirAll(dir, 0755)
	return dir
}
