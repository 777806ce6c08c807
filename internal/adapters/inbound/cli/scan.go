package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mendkit/mendkit/internal/adapters/outbound/config"
	"github.com/mendkit/mendkit/internal/adapters/outbound/scanner"
	"github.com/mendkit/mendkit/internal/adapters/outbound/tui"
	"github.com/mendkit/mendkit/internal/application"
)

func newScanCmd(verbose *bool) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a project for naming and structure issues",
		Long:  "Walk the project tree and report problematic filenames, suspicious extensions, and deployment recommendations. The exit code equals the number of issues found.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			log := newLogger(*verbose)
			svc := application.NewScanService(scanner.New(log), config.New(), log)

			report, err := svc.ScanProject(absPath)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderScan(report))
			}

			if n := len(report.Issues); n > 0 {
				return &IssueCountError{Count: n}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}
