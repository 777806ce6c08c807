package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mendkit/mendkit/internal/adapters/outbound/advisor"
	"github.com/mendkit/mendkit/internal/adapters/outbound/config"
	"github.com/mendkit/mendkit/internal/adapters/outbound/fixer"
	"github.com/mendkit/mendkit/internal/adapters/outbound/gitinfo"
	"github.com/mendkit/mendkit/internal/adapters/outbound/history"
	"github.com/mendkit/mendkit/internal/adapters/outbound/scanner"
	"github.com/mendkit/mendkit/internal/adapters/outbound/tui"
	"github.com/mendkit/mendkit/internal/application"
	"github.com/mendkit/mendkit/internal/domain"
)

const apiKeyEnv = "GEMINI_API_KEY"

func newHealCmd(verbose *bool) *cobra.Command {
	var (
		apiKey     string
		dryRun     bool
		noAI       bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "heal [path]",
		Short: "Fix naming and structure issues, with AI advice when available",
		Long:  "Scan the project, propose fixes via the advisory AI service (falling back to built-in rules on any failure), and apply them. Use --dry-run to inspect the plan and --no-ai to skip the advisory service entirely.",
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

			key := apiKey
			if key == "" {
				key = os.Getenv(apiKeyEnv)
			}
			// Fail fast, before any filesystem mutation.
			if !noAI && key == "" {
				return errors.New("advisory healing requires an API key: set " + apiKeyEnv + ", pass --api-key, or use --no-ai")
			}

			log := newLogger(*verbose)
			cfgLoader := config.New()
			cfg, err := cfgLoader.Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			var adv domain.FixAdvisor
			if !noAI {
				adv = advisor.New(cfg.Advisory, key, log)
			}

			svc := application.NewHealService(
				scanner.New(log),
				cfgLoader,
				adv,
				fixer.New(log),
				gitinfo.New(),
				history.New(),
				log,
			)

			report, err := svc.HealProject(cmd.Context(), absPath, application.HealOptions{
				DryRun:        dryRun,
				Deterministic: noAI,
			})
			if err != nil {
				return fmt.Errorf("heal failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHeal(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Advisory service API key (defaults to $"+apiKeyEnv+")")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the fix plan without applying it")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "Use only the deterministic fix rules")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}
