package advisor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendkit/mendkit/internal/adapters/outbound/advisor"
	"github.com/mendkit/mendkit/internal/domain"
)

func advisoryServer(t *testing.T, handler http.HandlerFunc) *advisor.Gemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := domain.DefaultConfig().Advisory
	cfg.BaseURL = srv.URL
	cfg.TimeoutSeconds = 2
	return advisor.New(cfg, "test-key", nil)
}

func geminiText(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{map[string]interface{}{"text": text}},
				},
			},
		},
	}
}

func sampleListing() *domain.Listing {
	return &domain.Listing{
		RootPath: "/tmp/site",
		Files:    []domain.FileEntry{{Dir: ".", Name: "index.htm"}},
		Tree:     "site/\n  index.htm\n",
	}
}

func TestGemini_ProposeParsesProseWrappedJSON(t *testing.T) {
	g := advisoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		text := "Here is my analysis.\n```json\n" +
			`{"fixes": [{"action": "rename", "from": "index.htm", "to": "public/index.html", "reason": "entry point"}]}` +
			"\n```\nGood luck!"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(geminiText(text))
	})

	fixes, err := g.Propose(context.Background(), sampleListing(), nil)
	require.NoError(t, err)
	require.Len(t, fixes, 1)
	assert.Equal(t, domain.ActionRename, fixes[0].Action)
	assert.Equal(t, "public/index.html", fixes[0].To)
}

func TestGemini_ProposeHTTPErrorFails(t *testing.T) {
	g := advisoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := g.Propose(context.Background(), sampleListing(), nil)
	assert.ErrorContains(t, err, "500")
}

func TestGemini_ProposeNoCandidatesFails(t *testing.T) {
	g := advisoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := g.Propose(context.Background(), sampleListing(), nil)
	assert.Error(t, err)
}

func TestGemini_ProposeRejectsInvalidActions(t *testing.T) {
	g := advisoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		text := `{"fixes": [{"action": "delete", "from": "a", "to": "b", "reason": "nope"}]}`
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(geminiText(text))
	})

	_, err := g.Propose(context.Background(), sampleListing(), nil)
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}

func TestGemini_ProposeMislabeledContentType(t *testing.T) {
	// Some proxies relabel JSON bodies as text/plain; the client must
	// still decode the payload.
	g := advisoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		text := `{"fixes": [{"action": "create", "to": "public/index.html", "reason": "missing"}]}`
		w.Header().Set("Content-Type", "text/plain")
		_ = json.NewEncoder(w).Encode(geminiText(text))
	})

	fixes, err := g.Propose(context.Background(), sampleListing(), nil)
	require.NoError(t, err)
	require.Len(t, fixes, 1)
	assert.Equal(t, domain.ActionCreate, fixes[0].Action)
}

func TestParseFixes(t *testing.T) {
	fixes, err := advisor.ParseFixes(`prose {"fixes": [{"action": "create", "to": "public/index.html", "reason": "missing"}]} more prose`)
	require.NoError(t, err)
	require.Len(t, fixes, 1)
	assert.Equal(t, domain.ActionCreate, fixes[0].Action)
}

func TestParseFixes_BracesInsideStrings(t *testing.T) {
	fixes, err := advisor.ParseFixes(`{"fixes": [{"action": "create", "to": "public/index.html", "reason": "handles {braces} in text"}]}`)
	require.NoError(t, err)
	require.Len(t, fixes, 1)
}

func TestParseFixes_Malformed(t *testing.T) {
	cases := []string{
		"no json here at all",
		"{ unbalanced",
		`{"fixes": "not a list"}`,
	}
	for _, text := range cases {
		_, err := advisor.ParseFixes(text)
		assert.Error(t, err, "input %q", text)
	}
}
