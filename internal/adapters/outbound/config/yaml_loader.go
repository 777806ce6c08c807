package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mendkit/mendkit/internal/domain"
)

const fileName = ".mendkit.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .mendkit.yaml from
// the project root. A missing file yields the defaults.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

func (l *YAMLLoader) Load(root string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var overrides domain.ProjectConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg := mergeConfig(domain.DefaultConfig(), overrides)
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// mergeConfig overlays explicit overrides on top of the defaults.
// Non-empty values always win; list overrides replace whole lists.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if len(override.ExcludeDirs) > 0 {
		result.ExcludeDirs = override.ExcludeDirs
	}
	if len(override.IgnoreFiles) > 0 {
		result.IgnoreFiles = override.IgnoreFiles
	}
	if len(override.SuspiciousExtensions) > 0 {
		result.SuspiciousExtensions = override.SuspiciousExtensions
	}
	if len(override.CaseExemptExtensions) > 0 {
		result.CaseExemptExtensions = override.CaseExemptExtensions
	}
	if override.PublishDir != "" {
		result.PublishDir = override.PublishDir
	}
	if override.Advisory.BaseURL != "" {
		result.Advisory.BaseURL = override.Advisory.BaseURL
	}
	if override.Advisory.Model != "" {
		result.Advisory.Model = override.Advisory.Model
	}
	if override.Advisory.TimeoutSeconds != 0 {
		result.Advisory.TimeoutSeconds = override.Advisory.TimeoutSeconds
	}

	return result
}
