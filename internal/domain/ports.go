package domain

import "context"

// FileEntry is one regular file found by the walker. Dir is the directory
// relative to the scan root ("." for the root itself).
type FileEntry struct {
	Dir  string `json:"dir"`
	Name string `json:"name"`
}

// Rel returns the entry's path relative to the scan root, always with
// forward slashes.
func (e FileEntry) Rel() string {
	if e.Dir == "" || e.Dir == "." {
		return e.Name
	}
	return e.Dir + "/" + e.Name
}

// Listing holds the result of walking a project directory.
type Listing struct {
	RootPath string      `json:"root_path"`
	Files    []FileEntry `json:"files"`
	DirCount int         `json:"directory_count"`
	Tree     string      `json:"tree"`
}

// Contains reports whether the listing holds a file at the given
// root-relative path.
func (l *Listing) Contains(rel string) bool {
	for _, f := range l.Files {
		if f.Rel() == rel {
			return true
		}
	}
	return false
}

// ProjectScanner walks a project directory and returns its file listing.
type ProjectScanner interface {
	Scan(root string, cfg ProjectConfig) (*Listing, error)
}

// FixAdvisor proposes fixes for the given listing and issues. The advisory
// implementation may fail (network, malformed payload); callers fall back
// to the deterministic planner.
type FixAdvisor interface {
	Propose(ctx context.Context, listing *Listing, issues []Issue) ([]FixAction, error)
}

// FixApplier applies a batch of actions under the given root, one action
// at a time, never aborting the batch on a single failure.
type FixApplier interface {
	Apply(root string, actions []FixAction) *FixLog
}

// ConfigLoader loads the project configuration for a root directory.
type ConfigLoader interface {
	Load(root string) (ProjectConfig, error)
}

// GitInfo exposes repository metadata for a project directory.
type GitInfo interface {
	IsGitRepo(root string) bool
	CommitHash(root string) (string, error)
}

// RunHistory persists heal-run summaries.
type RunHistory interface {
	Save(root string, entry RunEntry) error
	Load(root string) ([]RunEntry, error)
}
