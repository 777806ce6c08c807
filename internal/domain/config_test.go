package domain_test

import (
	"testing"
	"time"

	"github.com/mendkit/mendkit/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Contains(t, cfg.ExcludeDirs, "node_modules")
	assert.Contains(t, cfg.IgnoreFiles, ".DS_Store")
	assert.Equal(t, "public", cfg.PublishDir)
	assert.Equal(t, 30*time.Second, cfg.Advisory.Timeout())
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PublishDir = "a/b"
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.SuspiciousExtensions = []string{"htm"}
	assert.Error(t, cfg.Validate(), "extensions must carry the dot")

	cfg = domain.DefaultConfig()
	cfg.Advisory.TimeoutSeconds = -1
	assert.Error(t, cfg.Validate())
}

func TestConfigExtensionHelpers(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.True(t, cfg.IsSuspiciousExt(".htm"))
	assert.True(t, cfg.IsSuspiciousExt(".HTM"), "extension checks are case-insensitive")
	assert.False(t, cfg.IsSuspiciousExt(".html"))

	assert.True(t, cfg.IsCaseExempt(".md"))
	assert.True(t, cfg.IsCaseExempt(".MD"))
	assert.False(t, cfg.IsCaseExempt(".go"))

	assert.True(t, cfg.IsIgnoredFile("Thumbs.db"))
	assert.False(t, cfg.IsIgnoredFile("thumbs.db"))
}

func TestFixActionValidate(t *testing.T) {
	assert.NoError(t, domain.FixAction{Action: domain.ActionRename, From: "a", To: "b"}.Validate())
	assert.NoError(t, domain.FixAction{Action: domain.ActionCreate, To: "b"}.Validate())

	assert.ErrorIs(t, domain.FixAction{Action: domain.ActionRename, To: "b"}.Validate(), domain.ErrMissingFrom)
	assert.ErrorIs(t, domain.FixAction{Action: domain.ActionRename, From: "a"}.Validate(), domain.ErrMissingTo)
	assert.ErrorIs(t, domain.FixAction{Action: "delete", From: "a", To: "b"}.Validate(), domain.ErrUnknownAction)
}

func TestFileEntryRel(t *testing.T) {
	assert.Equal(t, "app.js", domain.FileEntry{Dir: ".", Name: "app.js"}.Rel())
	assert.Equal(t, "src/app.js", domain.FileEntry{Dir: "src", Name: "app.js"}.Rel())
}
