package fixer_test

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendkit/mendkit/internal/adapters/outbound/fixer"
	"github.com/mendkit/mendkit/internal/domain"
)

func seed(t *testing.T, fs billy.Filesystem, path, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, path, []byte(content), 0644))
}

func read(t *testing.T, fs billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestApplier_Rename(t *testing.T) {
	fs := memfs.New()
	seed(t, fs, "public/index.htm", "<h1>hi</h1>")

	a := fixer.NewWithFilesystem(fs, nil)
	log := a.Apply("", []domain.FixAction{
		{Action: domain.ActionRename, From: "public/index.htm", To: "public/index.html", Reason: "extension"},
	})

	require.Len(t, log.Applied, 1)
	assert.Empty(t, log.Skipped)
	assert.Equal(t, "<h1>hi</h1>", read(t, fs, "public/index.html"), "content must survive the rename")
	_, err := fs.Stat("public/index.htm")
	assert.Error(t, err)
}

func TestApplier_RenameCreatesParentDirs(t *testing.T) {
	fs := memfs.New()
	seed(t, fs, "index.htm", "x")

	a := fixer.NewWithFilesystem(fs, nil)
	log := a.Apply("", []domain.FixAction{
		{Action: domain.ActionRename, From: "index.htm", To: "public/index.html"},
	})

	require.Len(t, log.Applied, 1)
	assert.Equal(t, "x", read(t, fs, "public/index.html"))
}

func TestApplier_RenameMissingSourceIsSkipped(t *testing.T) {
	fs := memfs.New()

	a := fixer.NewWithFilesystem(fs, nil)
	log := a.Apply("", []domain.FixAction{
		{Action: domain.ActionRename, From: "nope.js", To: "yes.js"},
	})

	assert.Empty(t, log.Applied)
	require.Len(t, log.Skipped, 1)
	assert.Contains(t, log.Skipped[0].Error, "source missing")
}

func TestApplier_Create(t *testing.T) {
	fs := memfs.New()

	a := fixer.NewWithFilesystem(fs, nil)
	log := a.Apply("", []domain.FixAction{
		{Action: domain.ActionCreate, To: "public/index.html"},
	})

	require.Len(t, log.Applied, 1)
	content := read(t, fs, "public/index.html")
	assert.NotEmpty(t, content)
	assert.Contains(t, content, "<html>")
}

func TestApplier_CreateExistingIsSkipped(t *testing.T) {
	fs := memfs.New()
	seed(t, fs, "public/index.html", "original")

	a := fixer.NewWithFilesystem(fs, nil)
	log := a.Apply("", []domain.FixAction{
		{Action: domain.ActionCreate, To: "public/index.html"},
	})

	assert.Empty(t, log.Applied)
	require.Len(t, log.Skipped, 1)
	assert.Equal(t, "original", read(t, fs, "public/index.html"), "existing files are never overwritten")
}

func TestApplier_BatchContinuesPastFailures(t *testing.T) {
	fs := memfs.New()
	seed(t, fs, "a.js", "a")

	a := fixer.NewWithFilesystem(fs, nil)
	log := a.Apply("", []domain.FixAction{
		{Action: domain.ActionRename, From: "missing.js", To: "x.js"},
		{Action: "delete", From: "a.js", To: "b.js"},
		{Action: domain.ActionRename, From: "a.js", To: "b.js"},
	})

	require.Len(t, log.Applied, 1)
	assert.Equal(t, "b.js", log.Applied[0].Action.To)
	assert.Len(t, log.Skipped, 2)
}

func TestApplier_SameSourceAndDestination(t *testing.T) {
	fs := memfs.New()
	seed(t, fs, "a.js", "a")

	a := fixer.NewWithFilesystem(fs, nil)
	log := a.Apply("", []domain.FixAction{
		{Action: domain.ActionRename, From: "a.js", To: "a.js"},
	})

	assert.Empty(t, log.Applied)
	require.Len(t, log.Skipped, 1)
}
