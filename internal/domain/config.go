package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProjectConfig holds project-level configuration loaded from
// .mendkit.yaml. Zero values fall back to the documented defaults.
type ProjectConfig struct {
	// ExcludeDirs are substrings matched against directory paths; any
	// directory whose root-relative path contains one is skipped whole.
	ExcludeDirs []string `yaml:"exclude_dirs"    json:"exclude_dirs,omitempty"`
	// IgnoreFiles are nuisance filenames never reported or listed.
	IgnoreFiles []string `yaml:"ignore_files"    json:"ignore_files,omitempty"`
	// SuspiciousExtensions trigger bad-extension issues.
	SuspiciousExtensions []string `yaml:"suspicious_extensions"  json:"suspicious_extensions,omitempty"`
	// CaseExemptExtensions are never flagged for uppercase letters and
	// keep their case through the deterministic planner.
	CaseExemptExtensions []string `yaml:"case_exempt_extensions" json:"case_exempt_extensions,omitempty"`
	// PublishDir is the directory the static-hosting target serves from.
	PublishDir string `yaml:"publish_dir"     json:"publish_dir,omitempty"`

	Advisory AdvisoryConfig `yaml:"advisory"        json:"advisory,omitempty"`
}

// AdvisoryConfig configures the external fix-advisory service.
type AdvisoryConfig struct {
	BaseURL        string `yaml:"base_url"        json:"base_url,omitempty"`
	Model          string `yaml:"model"           json:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
}

// Timeout returns the advisory request timeout as a duration.
func (a AdvisoryConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		ExcludeDirs:          []string{"node_modules", ".git", "__pycache__", "vendor", "dist", ".mendkit"},
		IgnoreFiles:          []string{".DS_Store", "Thumbs.db"},
		SuspiciousExtensions: []string{".jx", ".htm", ".cssx"},
		CaseExemptExtensions: []string{".md", ".txt", ".json", ".gitignore"},
		PublishDir:           "public",
		Advisory: AdvisoryConfig{
			BaseURL:        "https://generativelanguage.googleapis.com",
			Model:          "gemini-pro",
			TimeoutSeconds: 30,
		},
	}
}

// Validate catches config values the pipeline cannot work with.
func (c ProjectConfig) Validate() error {
	if c.PublishDir != "" && strings.ContainsAny(c.PublishDir, `/\`) {
		return fmt.Errorf("publish_dir %q must be a plain directory name", c.PublishDir)
	}
	for _, ext := range c.SuspiciousExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("suspicious extension %q must start with a dot", ext)
		}
	}
	for _, ext := range c.CaseExemptExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("case-exempt extension %q must start with a dot", ext)
		}
	}
	if c.Advisory.TimeoutSeconds < 0 {
		return fmt.Errorf("advisory timeout_seconds must not be negative")
	}
	return nil
}

// IsIgnoredFile reports whether name is a nuisance file the walker skips.
func (c ProjectConfig) IsIgnoredFile(name string) bool {
	for _, f := range c.IgnoreFiles {
		if name == f {
			return true
		}
	}
	return false
}

// IsSuspiciousExt reports whether the (lower-cased) extension is in the
// suspicious set.
func (c ProjectConfig) IsSuspiciousExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range c.SuspiciousExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// IsCaseExempt reports whether a filename's extension exempts it from the
// uppercase rule. Extensions are compared case-insensitively.
func (c ProjectConfig) IsCaseExempt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range c.CaseExemptExtensions {
		if ext == s {
			return true
		}
	}
	return false
}
