package domain_test

import (
	"testing"

	"github.com/mendkit/mendkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	cfg := domain.DefaultConfig()

	tests := []struct {
		in   string
		want string
	}{
		{"foo bar.JX", "foo-bar.js"},
		{"Weird File!.jx", "weird-file.js"},
		{"page.htm", "page.html"},
		{"style.cssx", "style.css"},
		{"Script.PY", "script.py"},
		{"WeirdFile.js", "weird-file.js"},
		{"already-clean.js", "already-clean.js"},
		{"My Notes.md", "My-Notes.md"},
		{"README.md", "README.md"},
		{".gitignore", ".gitignore"},
		{"a@b.css", "a-b.css"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.CleanName(tt.in, cfg), "CleanName(%q)", tt.in)
	}
}

func TestCleanName_Idempotent(t *testing.T) {
	cfg := domain.DefaultConfig()
	for _, name := range []string{"foo bar.JX", "Weird File!.jx", "Index.HTM", "My Notes.md"} {
		once := domain.CleanName(name, cfg)
		assert.Equal(t, once, domain.CleanName(once, cfg), "cleaning %q twice", name)
	}
}

func planFor(files ...domain.FileEntry) []domain.FixAction {
	cfg := domain.DefaultConfig()
	listing := &domain.Listing{RootPath: "/tmp/site", Files: files}
	issues := domain.ClassifyListing(listing, cfg)
	return domain.PlanFixes(listing, issues, cfg)
}

func TestPlanFixes_RenamesOffenders(t *testing.T) {
	actions := planFor(
		domain.FileEntry{Dir: "public", Name: "index.html"},
		domain.FileEntry{Dir: "src", Name: "Weird File!.jx"},
	)
	require.Len(t, actions, 1)
	assert.Equal(t, domain.ActionRename, actions[0].Action)
	assert.Equal(t, "src/Weird File!.jx", actions[0].From)
	assert.Equal(t, "src/weird-file.js", actions[0].To)
	assert.NotEmpty(t, actions[0].Reason)
}

func TestPlanFixes_PublishIndexHtm(t *testing.T) {
	actions := planFor(domain.FileEntry{Dir: "public", Name: "index.htm"})
	require.Len(t, actions, 1)
	assert.Equal(t, domain.ActionRename, actions[0].Action)
	assert.Equal(t, "public/index.htm", actions[0].From)
	assert.Equal(t, "public/index.html", actions[0].To)
}

func TestPlanFixes_RootIndexHtmMovesToPublish(t *testing.T) {
	actions := planFor(domain.FileEntry{Dir: ".", Name: "index.htm"})
	require.Len(t, actions, 1)
	assert.Equal(t, "index.htm", actions[0].From)
	assert.Equal(t, "public/index.html", actions[0].To)
}

func TestPlanFixes_CreatesPlaceholderIndex(t *testing.T) {
	actions := planFor(domain.FileEntry{Dir: "src", Name: "app.js"})
	require.Len(t, actions, 1)
	assert.Equal(t, domain.ActionCreate, actions[0].Action)
	assert.Equal(t, "public/index.html", actions[0].To)
}

func TestPlanFixes_NoPlaceholderWhenRenameProvidesIndex(t *testing.T) {
	actions := planFor(domain.FileEntry{Dir: ".", Name: "index.htm"})
	for _, a := range actions {
		assert.NotEqual(t, domain.ActionCreate, a.Action,
			"the rename already yields public/index.html")
	}
}

func TestPlanFixes_CollidingDestinationsStayDistinct(t *testing.T) {
	actions := planFor(
		domain.FileEntry{Dir: "public", Name: "index.html"},
		domain.FileEntry{Dir: "src", Name: "Foo Bar.js"},
		domain.FileEntry{Dir: "src", Name: "foo-bar!.js"},
	)
	require.Len(t, actions, 2)
	assert.Equal(t, "src/foo-bar.js", actions[0].To)
	assert.Equal(t, "src/foo-bar-2.js", actions[1].To,
		"the second rename must not overwrite the first")
}

func TestPlanFixes_MisplacedIndexIsReportOnly(t *testing.T) {
	actions := planFor(
		domain.FileEntry{Dir: "src", Name: "index.html"},
		domain.FileEntry{Dir: "public", Name: "index.html"},
	)
	assert.Empty(t, actions, "misplaced index.html is surfaced as an issue, never moved")
}

func TestPlanFixes_Idempotent(t *testing.T) {
	cfg := domain.DefaultConfig()
	listing := &domain.Listing{RootPath: "/tmp/site", Files: []domain.FileEntry{
		{Dir: "public", Name: "index.htm"},
		{Dir: ".", Name: "Weird File!.jx"},
	}}
	issues := domain.ClassifyListing(listing, cfg)
	actions := domain.PlanFixes(listing, issues, cfg)
	require.NotEmpty(t, actions)

	// Apply the plan to the listing in memory and run the pipeline again.
	renamed := make(map[string]string)
	for _, a := range actions {
		if a.Action == domain.ActionRename {
			renamed[a.From] = a.To
		}
	}
	var after []domain.FileEntry
	for _, e := range listing.Files {
		rel := e.Rel()
		if to, ok := renamed[rel]; ok {
			rel = to
		}
		dir, name := ".", rel
		if i := lastSlash(rel); i >= 0 {
			dir, name = rel[:i], rel[i+1:]
		}
		after = append(after, domain.FileEntry{Dir: dir, Name: name})
	}
	second := &domain.Listing{RootPath: listing.RootPath, Files: after}
	secondIssues := domain.ClassifyListing(second, cfg)
	assert.Empty(t, secondIssues)
	assert.Empty(t, domain.PlanFixes(second, secondIssues, cfg))
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
