package domain

import (
	"fmt"
	"path"
	"strings"

	"github.com/fatih/camelcase"
)

// extensionRewrites maps suspicious or legacy extensions to their
// canonical replacements. Extensions not listed are simply lower-cased.
var extensionRewrites = map[string]string{
	".jx":   ".js",
	".htm":  ".html",
	".cssx": ".css",
}

// CleanName returns the normalized form of a filename: spaces and banned
// characters become hyphens, CamelCase stems become kebab-case, and the
// extension is rewritten or lower-cased. Filenames with a case-exempt
// extension keep their case; only spaces and banned characters change.
func CleanName(name string, cfg ProjectConfig) string {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	stem = hyphenate(stem)

	if cfg.IsCaseExempt(ext) {
		if stem == "" {
			return ext
		}
		return stem + ext
	}

	stem = kebabCase(stem)
	if rewritten, ok := extensionRewrites[strings.ToLower(ext)]; ok {
		ext = rewritten
	} else {
		ext = strings.ToLower(ext)
	}
	return stem + ext
}

// hyphenate replaces spaces and banned characters with hyphens, then
// collapses runs and trims the ends.
func hyphenate(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || strings.ContainsRune(bannedChars, r) {
			return '-'
		}
		return r
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// kebabCase lower-cases a stem, splitting CamelCase runs into separate
// hyphenated words so "WeirdFile" becomes "weird-file" rather than
// "weirdfile".
func kebabCase(s string) string {
	var words []string
	for _, token := range strings.Split(s, "-") {
		if token == "" {
			continue
		}
		for _, w := range camelcase.Split(token) {
			words = append(words, strings.ToLower(w))
		}
	}
	return strings.Join(words, "-")
}

// PlanFixes is the deterministic fix strategy: one rename per offending
// file, plus the publish-directory index guarantees. It needs no external
// service and is the fallback when the advisory strategy fails.
func PlanFixes(l *Listing, issues []Issue, cfg ProjectConfig) []FixAction {
	kindsByPath := make(map[string]map[IssueKind]bool)
	for _, issue := range issues {
		if kindsByPath[issue.Path] == nil {
			kindsByPath[issue.Path] = make(map[IssueKind]bool)
		}
		kindsByPath[issue.Path][issue.Kind] = true
	}

	var actions []FixAction
	targets := make(map[string]bool)

	for _, e := range l.Files {
		kinds := kindsByPath[e.Rel()]
		if !needsRename(kinds) {
			continue
		}

		var to, reason string
		if e.Name == "index.htm" && (e.Dir == "." || e.Dir == cfg.PublishDir) {
			// The site entry point always ends up at <publish>/index.html,
			// moving it from the root when necessary.
			to = cfg.PublishDir + "/index.html"
			reason = fmt.Sprintf("site entry point belongs at %s/index.html", cfg.PublishDir)
		} else {
			cleaned := CleanName(e.Name, cfg)
			if e.Dir == "." {
				to = cleaned
			} else {
				to = e.Dir + "/" + cleaned
			}
			reason = renameReason(kinds)
		}

		if to == e.Rel() {
			continue
		}
		to = uniqueTarget(to, targets)
		actions = append(actions, FixAction{
			Action: ActionRename,
			From:   e.Rel(),
			To:     to,
			Reason: reason,
		})
		targets[to] = true
	}

	if cfg.PublishDir != "" {
		index := cfg.PublishDir + "/index.html"
		legacy := cfg.PublishDir + "/index.htm"
		if !l.Contains(index) && !l.Contains(legacy) && !targets[index] {
			actions = append(actions, FixAction{
				Action: ActionCreate,
				To:     index,
				Reason: fmt.Sprintf("static hosting expects %s", index),
			})
		}
	}

	return actions
}

// uniqueTarget suffixes a destination that an earlier rename in the same
// plan already claims, so two sources never collapse into one file.
func uniqueTarget(to string, targets map[string]bool) string {
	if !targets[to] {
		return to
	}
	ext := path.Ext(to)
	stem := strings.TrimSuffix(to, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if !targets[candidate] {
			return candidate
		}
	}
}

// needsRename reports whether any of the issue kinds carries a
// deterministic rename. Misplaced index.html files are reported but not
// moved automatically.
func needsRename(kinds map[IssueKind]bool) bool {
	return kinds[KindSpace] || kinds[KindSpecialChar] ||
		kinds[KindUppercase] || kinds[KindBadExtension]
}

func renameReason(kinds map[IssueKind]bool) string {
	var parts []string
	if kinds[KindSpace] {
		parts = append(parts, "spaces")
	}
	if kinds[KindSpecialChar] {
		parts = append(parts, "special characters")
	}
	if kinds[KindUppercase] {
		parts = append(parts, "uppercase letters")
	}
	if kinds[KindBadExtension] {
		parts = append(parts, "suspicious extension")
	}
	return "normalize filename: " + strings.Join(parts, ", ")
}
