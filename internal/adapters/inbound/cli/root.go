package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mendkit",
		Short: "Heal messy project trees",
		Long:  "mendkit walks a project directory, flags files with problematic names or extensions, and proposes or applies renames so the tree deploys cleanly as a static site.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScanCmd(&verbose))
	cmd.AddCommand(newHealCmd(&verbose))
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.As(err, new(*IssueCountError)) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "mendkit",
		Level:  level,
		Output: os.Stderr,
	})
}
