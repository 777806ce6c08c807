package cli

import (
	"errors"
	"fmt"
)

// IssueCountError carries the number of unresolved issues out of the scan
// command so automated checks can read it from the process exit code.
type IssueCountError struct {
	Count int
}

func (e *IssueCountError) Error() string {
	return fmt.Sprintf("%d unresolved issues", e.Count)
}

// ExitCode maps an Execute error to a process exit code: nil is 0, an
// IssueCountError is its count, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ice *IssueCountError
	if errors.As(err, &ice) {
		return ice.Count
	}
	return 1
}
