package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunner_Defaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("E2E_WORKERS", "")
	t.Setenv("E2E_RETRIES", "")

	cfg, err := LoadRunner()
	require.NoError(t, err)

	assert.False(t, cfg.CI)
	assert.Equal(t, 5, cfg.Workers())
	assert.Equal(t, 0, cfg.Retries())
	assert.Equal(t, 2*time.Minute, cfg.TestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ExpectTimeout)
	assert.Equal(t, "./e2e/...", cfg.Package)
	assert.Equal(t, "chromium", cfg.Browser)
	assert.Equal(t, 1000.0, cfg.PriceSliderMax)
}

func TestLoadRunner_CI(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("E2E_WORKERS", "")
	t.Setenv("E2E_RETRIES", "")

	cfg, err := LoadRunner()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers())
	assert.Equal(t, 2, cfg.Retries())
}

func TestLoadRunner_BlankValuesUseDefaults(t *testing.T) {
	for _, key := range []string{
		"CI", "E2E_WORKERS", "E2E_RETRIES", "E2E_NAV_RATE", "E2E_TEST_TIMEOUT",
		"E2E_PRICE_SLIDER_MAX", "E2E_RECORD_VIDEO", "E2E_ATTEMPT", "E2E_BROWSER",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadRunner()
	require.NoError(t, err)

	assert.False(t, cfg.CI)
	assert.Equal(t, 5, cfg.Workers())
	assert.Equal(t, 0, cfg.Retries())
	assert.Zero(t, cfg.NavigationRate)
	assert.Equal(t, 2*time.Minute, cfg.TestTimeout)
	assert.Equal(t, 1000.0, cfg.PriceSliderMax)
	assert.True(t, cfg.RecordVideo)
	assert.Equal(t, "chromium", cfg.Browser)
}

func TestLoadRunner_ExplicitCountsWin(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("E2E_WORKERS", "8")
	t.Setenv("E2E_RETRIES", "0")

	cfg, err := LoadRunner()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers())
	assert.Equal(t, 0, cfg.Retries())
}

func TestRunnerConfig_Validate(t *testing.T) {
	valid := RunnerConfig{Browser: "chromium", PriceSliderMax: 1000, TestTimeout: time.Minute}

	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*RunnerConfig) {}},
		{name: "unknown browser", mutate: func(c *RunnerConfig) { c.Browser = "opera" }, wantErr: "E2E_BROWSER"},
		{name: "zero slider max", mutate: func(c *RunnerConfig) { c.PriceSliderMax = 0 }, wantErr: "E2E_PRICE_SLIDER_MAX"},
		{name: "negative rate", mutate: func(c *RunnerConfig) { c.NavigationRate = -1 }, wantErr: "E2E_NAV_RATE"},
		{name: "zero test timeout", mutate: func(c *RunnerConfig) { c.TestTimeout = 0 }, wantErr: "E2E_TEST_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadArtifactStorage(t *testing.T) {
	t.Setenv("ARTIFACTS_S3_ENABLED", "true")
	t.Setenv("ARTIFACTS_S3_BUCKET", "runs")

	cfg, err := LoadArtifactStorage()
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "runs", cfg.Bucket)
	assert.Equal(t, "localhost:9000", cfg.Endpoint)
}

func TestLoadArtifactStorage_BlankValuesUseDefaults(t *testing.T) {
	t.Setenv("ARTIFACTS_S3_ENABLED", "")
	t.Setenv("ARTIFACTS_S3_USE_SSL", "")
	t.Setenv("ARTIFACTS_S3_BUCKET", "")

	cfg, err := LoadArtifactStorage()
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.UseSSL)
	assert.Equal(t, "storefront-e2e", cfg.Bucket)
}

func TestLoadServerConfig(t *testing.T) {
	assert.Equal(t, "8080", LoadServerConfig(envFrom(nil)).Port)
	assert.Equal(t, "9090", LoadServerConfig(envFrom(map[string]string{"STUB_PORT": "9090"})).Port)
}

func TestLoadPostgresConfig(t *testing.T) {
	t.Run("missing required fields are all reported", func(t *testing.T) {
		_, err := LoadPostgresConfig(envFrom(map[string]string{"POSTGRES_USER": "shop"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POSTGRES_PASSWORD")
		assert.Contains(t, err.Error(), "POSTGRES_DB")
		assert.Contains(t, err.Error(), "POSTGRES_HOSTNAME")
		assert.NotContains(t, err.Error(), "POSTGRES_USER")
	})

	t.Run("connection string with schema", func(t *testing.T) {
		cfg, err := LoadPostgresConfig(envFrom(map[string]string{
			"POSTGRES_USER":     "shop",
			"POSTGRES_PASSWORD": "secret",
			"POSTGRES_DB":       "storefront",
			"POSTGRES_HOSTNAME": "db",
			"POSTGRES_SCHEMA":   "run_1",
		}))
		require.NoError(t, err)
		assert.Equal(t,
			"host=db port=5432 user=shop password=secret dbname=storefront sslmode=disable search_path=run_1",
			cfg.ConnectionString())
	})
}
