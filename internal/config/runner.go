package config

import (
	"fmt"
	"strings"
	"time"
)

// Worker and retry defaults. CI runs fewer workers and retries flaky tests.
const (
	ciWorkers    = 3
	ciRetries    = 2
	localWorkers = 5
	localRetries = 0
)

// RunnerConfig controls how the scenario suite is executed.
type RunnerConfig struct {
	CI bool `envconfig:"CI" default:"false"`

	// WorkerCount and RetryCount of -1 mean "pick by environment".
	WorkerCount int `envconfig:"E2E_WORKERS" default:"-1"`
	RetryCount  int `envconfig:"E2E_RETRIES" default:"-1"`

	TestTimeout   time.Duration `envconfig:"E2E_TEST_TIMEOUT" default:"2m"`
	ExpectTimeout time.Duration `envconfig:"E2E_EXPECT_TIMEOUT" default:"10s"`
	SetupTimeout  time.Duration `envconfig:"E2E_SETUP_TIMEOUT" default:"30s"`

	Package      string `envconfig:"E2E_PACKAGE" default:"./e2e/..."`
	Tags         string `envconfig:"E2E_TAGS" default:"e2e"`
	ArtifactsDir string `envconfig:"E2E_ARTIFACTS_DIR" default:"test-results"`
	Browser      string `envconfig:"E2E_BROWSER" default:"chromium"`

	// NavigationRate caps page navigations per second per process. Zero disables pacing.
	NavigationRate float64 `envconfig:"E2E_NAV_RATE" default:"0"`
	// PriceSliderMax is the price at the right edge of the listing price slider.
	PriceSliderMax float64 `envconfig:"E2E_PRICE_SLIDER_MAX" default:"1000"`

	RecordVideo bool `envconfig:"E2E_RECORD_VIDEO" default:"true"`
	// Attempt is set by the runner on retries; 0 is the first run.
	Attempt int `envconfig:"E2E_ATTEMPT" default:"0"`
}

// TraceEnabled reports whether this attempt records a playwright trace. Only
// the first retry is traced.
func (c RunnerConfig) TraceEnabled() bool {
	return c.Attempt == 1
}

// LoadRunner reads RunnerConfig from the process environment.
func LoadRunner() (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := processEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("processing runner config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating runner config: %w", err)
	}
	return cfg, nil
}

// Validate checks values envconfig cannot.
func (c RunnerConfig) Validate() error {
	var problems []string
	switch c.Browser {
	case "chromium", "firefox", "webkit":
	default:
		problems = append(problems, fmt.Sprintf("E2E_BROWSER must be chromium, firefox or webkit, got %q", c.Browser))
	}
	if c.PriceSliderMax <= 0 {
		problems = append(problems, "E2E_PRICE_SLIDER_MAX must be positive")
	}
	if c.NavigationRate < 0 {
		problems = append(problems, "E2E_NAV_RATE must not be negative")
	}
	if c.TestTimeout <= 0 {
		problems = append(problems, "E2E_TEST_TIMEOUT must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// Workers returns the number of scenarios allowed to run in parallel.
func (c RunnerConfig) Workers() int {
	if c.WorkerCount > 0 {
		return c.WorkerCount
	}
	if c.CI {
		return ciWorkers
	}
	return localWorkers
}

// Retries returns how many times a failing scenario is re-run.
func (c RunnerConfig) Retries() int {
	if c.RetryCount >= 0 {
		return c.RetryCount
	}
	if c.CI {
		return ciRetries
	}
	return localRetries
}
