package domain

import (
	"fmt"
	"path"
	"strings"
)

// bannedChars are the characters that make a filename a special-char
// offender, checked after spaces, hyphens and underscores are stripped.
const bannedChars = "!@#$%^&*()"

// A namingRule inspects one file entry and returns an issue, or nil when
// the rule does not apply.
type namingRule func(e FileEntry, cfg ProjectConfig) *Issue

// namingRules is the ordered rule table. Every rule runs for every file;
// all matches are kept, in table order.
var namingRules = []namingRule{
	spaceRule,
	specialCharRule,
	uppercaseRule,
	badExtensionRule,
	misplacedIndexRule,
}

// Classify evaluates the full rule table against one file and returns the
// matching issues in rule order.
func Classify(e FileEntry, cfg ProjectConfig) []Issue {
	var issues []Issue
	for _, rule := range namingRules {
		if issue := rule(e, cfg); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

// ClassifyListing runs the classifier over every file of a listing.
func ClassifyListing(l *Listing, cfg ProjectConfig) []Issue {
	var issues []Issue
	for _, e := range l.Files {
		issues = append(issues, Classify(e, cfg)...)
	}
	return issues
}

func spaceRule(e FileEntry, _ ProjectConfig) *Issue {
	if !strings.Contains(e.Name, " ") {
		return nil
	}
	return &Issue{
		Path:     e.Rel(),
		Kind:     KindSpace,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("spaces in filename: %s", e.Name),
	}
}

func specialCharRule(e FileEntry, _ ProjectConfig) *Issue {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, e.Name)
	if !strings.ContainsAny(stripped, bannedChars) {
		return nil
	}
	return &Issue{
		Path:     e.Rel(),
		Kind:     KindSpecialChar,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("special characters in filename: %s", e.Name),
	}
}

func uppercaseRule(e FileEntry, cfg ProjectConfig) *Issue {
	if e.Name == strings.ToLower(e.Name) || cfg.IsCaseExempt(path.Ext(e.Name)) {
		return nil
	}
	return &Issue{
		Path:     e.Rel(),
		Kind:     KindUppercase,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("uppercase letters in filename: %s", e.Name),
	}
}

func badExtensionRule(e FileEntry, cfg ProjectConfig) *Issue {
	ext := path.Ext(e.Name)
	if !cfg.IsSuspiciousExt(ext) {
		return nil
	}
	severity := SeverityWarning
	message := fmt.Sprintf("suspicious file extension: %s", e.Name)
	// index.htm is the site entry point; a wrong extension there breaks
	// static-site deployment outright.
	if e.Name == "index.htm" {
		severity = SeverityCritical
		message = fmt.Sprintf("site entry point has .htm extension: %s", e.Rel())
	}
	return &Issue{
		Path:     e.Rel(),
		Kind:     KindBadExtension,
		Severity: severity,
		Message:  message,
	}
}

func misplacedIndexRule(e FileEntry, cfg ProjectConfig) *Issue {
	if e.Name != "index.html" || cfg.PublishDir == "" {
		return nil
	}
	if e.Dir == cfg.PublishDir || strings.HasPrefix(e.Dir, cfg.PublishDir+"/") {
		return nil
	}
	return &Issue{
		Path:     e.Rel(),
		Kind:     KindMisplacedIndex,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("index.html outside %s/: %s", cfg.PublishDir, e.Rel()),
	}
}
