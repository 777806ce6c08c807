package domain

import "time"

// IssueKind classifies a naming or structure problem found for one file.
type IssueKind string

const (
	KindSpace          IssueKind = "space"
	KindSpecialChar    IssueKind = "special_char"
	KindUppercase      IssueKind = "uppercase"
	KindBadExtension   IssueKind = "bad_extension"
	KindMisplacedIndex IssueKind = "misplaced_index"
)

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Issue represents one problem detected for one file. Immutable once
// produced by the classifier.
type Issue struct {
	Path     string    `json:"path"`
	Kind     IssueKind `json:"kind"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
}

const (
	ActionRename = "rename"
	ActionCreate = "create"
)

// FixAction is a proposed filesystem mutation with a justification.
// Produced by the deterministic planner or parsed from an advisory
// response; consumed by the applier.
type FixAction struct {
	Action string `json:"action"`
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// Validate rejects actions the applier cannot execute. Advisory responses
// are untrusted, so every parsed action passes through here.
func (a FixAction) Validate() error {
	switch a.Action {
	case ActionRename:
		if a.From == "" {
			return ErrMissingFrom
		}
		if a.To == "" {
			return ErrMissingTo
		}
	case ActionCreate:
		if a.To == "" {
			return ErrMissingTo
		}
	default:
		return ErrUnknownAction
	}
	return nil
}

// FixRecord is one append-only entry in the log of applied or skipped
// actions.
type FixRecord struct {
	Action      FixAction `json:"action"`
	Description string    `json:"description"`
	Error       string    `json:"error,omitempty"`
}

// FixLog collects the outcome of applying a batch of actions. A failing
// action lands in Skipped and never aborts the rest of the batch.
type FixLog struct {
	Applied []FixRecord `json:"applied"`
	Skipped []FixRecord `json:"skipped"`
}

// ScanReport is the result of the scan-only pipeline.
type ScanReport struct {
	RootPath        string   `json:"root_path"`
	FileCount       int      `json:"file_count"`
	DirCount        int      `json:"directory_count"`
	Issues          []Issue  `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

const (
	StrategyDeterministic = "deterministic"
	StrategyAdvisory      = "advisory"
)

// HealReport is the result of a full heal run: the issues found, the plan
// that was chosen, and what actually happened on disk.
type HealReport struct {
	RunID      string      `json:"run_id"`
	RootPath   string      `json:"root_path"`
	Strategy   string      `json:"strategy"`
	CommitHash string      `json:"commit_hash,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	DryRun     bool        `json:"dry_run"`
	Issues     []Issue     `json:"issues"`
	Planned    []FixAction `json:"planned"`
	Applied    []FixRecord `json:"applied,omitempty"`
	Skipped    []FixRecord `json:"skipped,omitempty"`
}

// RunEntry is one line of the persisted heal-run history.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	RunID      string `json:"run_id"`
	Strategy   string `json:"strategy"`
	CommitHash string `json:"commit_hash,omitempty"`
	Issues     int    `json:"issues"`
	Applied    int    `json:"applied"`
	Skipped    int    `json:"skipped"`
}
