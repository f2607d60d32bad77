package config

import (
	"fmt"
)

// ArtifactStorageConfig holds the S3/MinIO location failure artifacts are
// uploaded to after a run.
type ArtifactStorageConfig struct {
	Enabled         bool   `envconfig:"ARTIFACTS_S3_ENABLED" default:"false"`
	Endpoint        string `envconfig:"ARTIFACTS_S3_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"ARTIFACTS_S3_ACCESS_KEY_ID" default:"minioadmin"`
	SecretAccessKey string `envconfig:"ARTIFACTS_S3_SECRET_ACCESS_KEY" default:"minioadmin"`
	Bucket          string `envconfig:"ARTIFACTS_S3_BUCKET" default:"storefront-e2e"`
	UseSSL          bool   `envconfig:"ARTIFACTS_S3_USE_SSL" default:"false"`
}

// LoadArtifactStorage reads ArtifactStorageConfig from the process environment.
func LoadArtifactStorage() (ArtifactStorageConfig, error) {
	var cfg ArtifactStorageConfig
	if err := processEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("processing artifact storage config: %w", err)
	}
	if cfg.Enabled && cfg.Bucket == "" {
		return cfg, fmt.Errorf("ARTIFACTS_S3_BUCKET is required when uploads are enabled")
	}
	return cfg, nil
}
