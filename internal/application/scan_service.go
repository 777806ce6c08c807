package application

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/mendkit/mendkit/internal/domain"
)

// ScanService runs the read-only half of the pipeline: walk the tree,
// classify every file, and report issues and recommendations without
// touching the filesystem.
type ScanService struct {
	scanner domain.ProjectScanner
	config  domain.ConfigLoader
	log     hclog.Logger
}

func NewScanService(scanner domain.ProjectScanner, config domain.ConfigLoader, log hclog.Logger) *ScanService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &ScanService{scanner: scanner, config: config, log: log}
}

func (s *ScanService) ScanProject(root string) (*domain.ScanReport, error) {
	cfg, err := s.config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	listing, err := s.scanner.Scan(root, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	issues := domain.ClassifyListing(listing, cfg)
	s.log.Debug("scan complete", "files", len(listing.Files), "issues", len(issues))

	return &domain.ScanReport{
		RootPath:        listing.RootPath,
		FileCount:       len(listing.Files),
		DirCount:        listing.DirCount,
		Issues:          issues,
		Recommendations: recommendations(listing, cfg),
	}, nil
}

func recommendations(l *domain.Listing, cfg domain.ProjectConfig) []string {
	var recs []string
	if cfg.PublishDir != "" && !l.Contains(cfg.PublishDir+"/index.html") {
		recs = append(recs, fmt.Sprintf("Create %s/index.html for static deployment", cfg.PublishDir))
	}
	if !l.Contains("netlify.toml") {
		recs = append(recs, "Add netlify.toml for deployment config")
	}
	return recs
}
