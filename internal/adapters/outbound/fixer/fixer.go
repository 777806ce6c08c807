package fixer

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hashicorp/go-hclog"

	"github.com/mendkit/mendkit/internal/domain"
)

const placeholderHTML = `<!DOCTYPE html>
<html>
  <head><title>Welcome</title></head>
  <body>
    <h1>Welcome</h1>
    <p>Placeholder page generated by mendkit.</p>
  </body>
</html>
`

const placeholderText = "# Created by mendkit\n"

// Applier implements domain.FixApplier on top of a billy filesystem.
// Production use chroots into the project root via osfs; tests inject an
// in-memory filesystem.
type Applier struct {
	fs  billy.Filesystem
	log hclog.Logger
}

func New(log hclog.Logger) *Applier {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Applier{log: log}
}

// NewWithFilesystem returns an applier bound to the given filesystem,
// ignoring the root passed to Apply.
func NewWithFilesystem(fs billy.Filesystem, log hclog.Logger) *Applier {
	a := New(log)
	a.fs = fs
	return a
}

// Apply executes each action independently. A failing action is logged and
// recorded as skipped; the rest of the batch always runs.
func (a *Applier) Apply(root string, actions []domain.FixAction) *domain.FixLog {
	fs := a.fs
	if fs == nil {
		fs = osfs.New(root)
	}

	log := &domain.FixLog{}
	for _, action := range actions {
		desc, err := a.applyOne(fs, action)
		if err != nil {
			a.log.Warn("fix skipped", "action", action.Action, "to", action.To, "error", err)
			log.Skipped = append(log.Skipped, domain.FixRecord{
				Action:      action,
				Description: desc,
				Error:       err.Error(),
			})
			continue
		}
		a.log.Info("fix applied", "action", action.Action, "to", action.To)
		log.Applied = append(log.Applied, domain.FixRecord{Action: action, Description: desc})
	}
	return log
}

func (a *Applier) applyOne(fs billy.Filesystem, action domain.FixAction) (string, error) {
	if err := action.Validate(); err != nil {
		return "", err
	}

	switch action.Action {
	case domain.ActionRename:
		desc := fmt.Sprintf("renamed %s -> %s", action.From, action.To)
		if action.From == action.To {
			return desc, errors.New("source and destination are the same")
		}
		if _, err := fs.Stat(action.From); err != nil {
			return desc, fmt.Errorf("source missing: %w", err)
		}
		if dir := path.Dir(action.To); dir != "." {
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return desc, fmt.Errorf("creating %s: %w", dir, err)
			}
		}
		if err := fs.Rename(action.From, action.To); err != nil {
			return desc, err
		}
		return desc, nil

	case domain.ActionCreate:
		desc := fmt.Sprintf("created %s", action.To)
		if _, err := fs.Stat(action.To); err == nil {
			return desc, errors.New("destination already exists")
		} else if !errors.Is(err, os.ErrNotExist) {
			return desc, err
		}
		if dir := path.Dir(action.To); dir != "." {
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return desc, fmt.Errorf("creating %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(fs, action.To, []byte(placeholderFor(action.To)), 0644); err != nil {
			return desc, err
		}
		return desc, nil
	}

	return "", domain.ErrUnknownAction
}

func placeholderFor(to string) string {
	if strings.HasSuffix(to, ".html") {
		return placeholderHTML
	}
	return placeholderText
}
