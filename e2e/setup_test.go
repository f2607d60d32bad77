//go:build e2e

// Package e2e holds the storefront scenarios. They drive a real browser
// against BASE_URL and only build with the e2e tag.
package e2e

import (
	"fmt"
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/browser"
	"github.com/adyen/storefront-e2e/internal/config"
	"github.com/adyen/storefront-e2e/internal/fixtures"
)

var suite *fixtures.Suite

// TestMain checks the storefront answers, then starts the browser shared by
// every scenario.
func TestMain(m *testing.M) {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("loading .env", zap.Error(err))
	}
	cfg := config.Load()
	if _, err := browser.CheckSite(cfg.BaseURL, log); err != nil {
		log.Warn("storefront did not answer, scenarios may fail", zap.String("url", cfg.BaseURL), zap.Error(err))
	}

	suite, err = fixtures.NewSuite(log)
	if err != nil {
		log.Fatal("starting scenario suite", zap.Error(err))
	}

	code := m.Run()
	if err := suite.Close(); err != nil {
		log.Warn("stopping browser", zap.Error(err))
	}
	log.Sync()
	os.Exit(code)
}

// newFixtures marks t parallel and opens its browser session.
func newFixtures(t *testing.T) *fixtures.Fixtures {
	t.Helper()
	t.Parallel()
	return suite.New(t)
}
