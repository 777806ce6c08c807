package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mendkit/mendkit/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)

	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderScan renders the project health report.
func RenderScan(report *domain.ScanReport) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("mendkit") + "  " + dimStyle.Render("project health report"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %s %d    %s %d    %s %d\n",
		dimStyle.Render("files"), report.FileCount,
		dimStyle.Render("directories"), report.DirCount,
		dimStyle.Render("issues"), len(report.Issues))
	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(report.Issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	} else {
		b.WriteString("  " + titleStyle.Render("Issues") + "\n\n")
		for _, issue := range report.Issues {
			renderIssue(&b, issue)
		}
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Recommendations") + "\n\n")
		for _, rec := range report.Recommendations {
			b.WriteString("  " + dimStyle.Render("→") + " " + rec + "\n")
		}
	}

	return b.String()
}

// RenderHeal renders the outcome of a heal run.
func RenderHeal(report *domain.HealReport) string {
	var b strings.Builder

	mode := "heal"
	if report.DryRun {
		mode = "heal (dry run)"
	}
	b.WriteString("  " + headerStyle.Render("mendkit") + "  " + dimStyle.Render(mode))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %s %s    %s %s\n",
		dimStyle.Render("run"), report.RunID,
		dimStyle.Render("strategy"), report.Strategy)
	if report.CommitHash != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("commit"), report.CommitHash)
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(report.Issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s\n\n", titleStyle.Render(fmt.Sprintf("%d issues", len(report.Issues))))
	for _, issue := range report.Issues {
		renderIssue(&b, issue)
	}

	if report.DryRun {
		fmt.Fprintf(&b, "\n  %s\n\n", titleStyle.Render(fmt.Sprintf("Planned fixes (%d)", len(report.Planned))))
		for _, action := range report.Planned {
			renderAction(&b, action)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "\n  %s\n\n", titleStyle.Render(fmt.Sprintf("Applied fixes (%d)", len(report.Applied))))
	for _, rec := range report.Applied {
		b.WriteString("  " + passStyle.Render("✓") + " " + rec.Description + "\n")
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "\n  %s\n\n", titleStyle.Render(fmt.Sprintf("Skipped (%d)", len(report.Skipped))))
		for _, rec := range report.Skipped {
			b.WriteString("  " + failStyle.Render("✗") + " " + rec.Description +
				"  " + dimStyle.Render(rec.Error) + "\n")
		}
	}

	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := warnStyle.Render(string(issue.Kind))
	if issue.Severity == domain.SeverityCritical {
		tag = failStyle.Render(string(issue.Kind))
	}
	fmt.Fprintf(b, "  %s  %s\n", tag, issue.Message)
}

func renderAction(b *strings.Builder, action domain.FixAction) {
	switch action.Action {
	case domain.ActionRename:
		fmt.Fprintf(b, "  %s %s → %s  %s\n",
			warnStyle.Render("rename"), action.From, action.To, dimStyle.Render(action.Reason))
	case domain.ActionCreate:
		fmt.Fprintf(b, "  %s %s  %s\n",
			warnStyle.Render("create"), action.To, dimStyle.Render(action.Reason))
	}
}
