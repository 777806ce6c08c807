package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/mendkit/mendkit/internal/domain"
)

// HealOptions controls a heal run.
type HealOptions struct {
	// DryRun stops after planning; nothing is written.
	DryRun bool
	// Deterministic skips the advisory service even when one is wired.
	Deterministic bool
}

// HealService orchestrates the full pipeline:
// scan → classify → propose (advisory with deterministic fallback) →
// apply → report.
type HealService struct {
	scanner domain.ProjectScanner
	config  domain.ConfigLoader
	advisor domain.FixAdvisor
	applier domain.FixApplier
	git     domain.GitInfo
	history domain.RunHistory
	log     hclog.Logger
}

// NewHealService wires the pipeline. advisor, git and history may be nil;
// the service then runs deterministically and skips the corresponding
// report fields.
func NewHealService(
	scanner domain.ProjectScanner,
	config domain.ConfigLoader,
	advisor domain.FixAdvisor,
	applier domain.FixApplier,
	git domain.GitInfo,
	history domain.RunHistory,
	log hclog.Logger,
) *HealService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &HealService{
		scanner: scanner,
		config:  config,
		advisor: advisor,
		applier: applier,
		git:     git,
		history: history,
		log:     log,
	}
}

func (s *HealService) HealProject(ctx context.Context, root string, opts HealOptions) (*domain.HealReport, error) {
	cfg, err := s.config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	listing, err := s.scanner.Scan(root, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	issues := domain.ClassifyListing(listing, cfg)

	report := &domain.HealReport{
		RunID:     uuid.NewString(),
		RootPath:  listing.RootPath,
		Timestamp: time.Now(),
		DryRun:    opts.DryRun,
		Issues:    issues,
	}

	report.Strategy, report.Planned = s.propose(ctx, cfg, listing, issues, opts)

	if !opts.DryRun {
		fixLog := s.applier.Apply(listing.RootPath, report.Planned)
		report.Applied = fixLog.Applied
		report.Skipped = fixLog.Skipped
	}

	if s.git != nil && s.git.IsGitRepo(listing.RootPath) {
		if hash, err := s.git.CommitHash(listing.RootPath); err == nil {
			report.CommitHash = hash
		}
	}

	if s.history != nil && !opts.DryRun {
		entry := domain.RunEntry{
			Timestamp:  report.Timestamp.Format(time.RFC3339),
			RunID:      report.RunID,
			Strategy:   report.Strategy,
			CommitHash: report.CommitHash,
			Issues:     len(report.Issues),
			Applied:    len(report.Applied),
			Skipped:    len(report.Skipped),
		}
		if err := s.history.Save(listing.RootPath, entry); err != nil {
			s.log.Warn("saving run history", "error", err)
		}
	}

	return report, nil
}

// propose picks the fix strategy. Advisory failures are logged and fall
// back to the deterministic planner, so a heal run always completes with
// some plan, possibly empty.
func (s *HealService) propose(ctx context.Context, cfg domain.ProjectConfig, listing *domain.Listing, issues []domain.Issue, opts HealOptions) (string, []domain.FixAction) {
	if s.advisor != nil && !opts.Deterministic {
		actx, cancel := context.WithTimeout(ctx, cfg.Advisory.Timeout())
		defer cancel()

		actions, err := s.advisor.Propose(actx, listing, issues)
		if err == nil {
			return domain.StrategyAdvisory, actions
		}
		s.log.Warn("advisory strategy failed, falling back to deterministic", "error", err)
	}
	return domain.StrategyDeterministic, domain.PlanFixes(listing, issues, cfg)
}
