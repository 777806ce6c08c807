package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/mendkit/mendkit/internal/domain"
)

// Gemini implements domain.FixAdvisor against the Gemini generateContent
// API. Any failure — transport, non-200 status, malformed payload, schema
// violation — surfaces as an error so the caller can fall back to the
// deterministic planner.
type Gemini struct {
	client *resty.Client
	model  string
	apiKey string
	log    hclog.Logger
}

func New(cfg domain.AdvisoryConfig, apiKey string, log hclog.Logger) *Gemini {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout())
	client.SetLogger(newRestyLogger(log))
	return &Gemini{
		client: client,
		model:  cfg.Model,
		apiKey: apiKey,
		log:    log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// fixResponse is the strict contract expected inside the model's prose.
type fixResponse struct {
	Fixes []domain.FixAction `json:"fixes"`
}

func (g *Gemini) Propose(ctx context.Context, listing *domain.Listing, issues []domain.Issue) ([]domain.FixAction, error) {
	prompt := buildPrompt(listing, issues)

	var out generateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return nil, fmt.Errorf("advisory request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("advisory service returned %d", resp.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("advisory response has no candidates")
	}

	text := out.Candidates[0].Content.Parts[0].Text
	return ParseFixes(text)
}

// ParseFixes extracts the first balanced JSON object from free-text model
// output and validates it against the fix contract. Anything that does not
// strictly match is rejected.
func ParseFixes(text string) ([]domain.FixAction, error) {
	block, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var parsed fixResponse
	dec := json.NewDecoder(strings.NewReader(block))
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing advisory fixes: %w", err)
	}
	for i, fix := range parsed.Fixes {
		if err := fix.Validate(); err != nil {
			return nil, fmt.Errorf("advisory fix %d: %w", i, err)
		}
	}
	return parsed.Fixes, nil
}

// extractJSONObject returns the first balanced {...} block in text,
// tracking string literals so braces inside values do not confuse the
// depth count.
func extractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errors.New("no JSON object in advisory response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", errors.New("unbalanced JSON object in advisory response")
}

func buildPrompt(listing *domain.Listing, issues []domain.Issue) string {
	var b strings.Builder
	b.WriteString("Analyze this web project structure and propose fixes for static-site deployment.\n\n")
	b.WriteString("CURRENT FILE STRUCTURE:\n")
	b.WriteString(listing.Tree)
	b.WriteString("\nDETECTED ISSUES:\n")
	for _, issue := range issues {
		fmt.Fprintf(&b, "- [%s] %s\n", issue.Kind, issue.Message)
	}
	b.WriteString(`
Respond with a JSON object of this exact shape:
{
  "fixes": [
    {"action": "rename|create", "from": "current_path", "to": "new_path", "reason": "explanation"}
  ]
}

Focus on:
- static hosting deployment requirements (index.html under public/)
- file naming conventions (lowercase, no spaces or special characters)
- standard file extensions
`)
	return b.String()
}
