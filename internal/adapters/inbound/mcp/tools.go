package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mendkit/mendkit/internal/adapters/outbound/advisor"
	"github.com/mendkit/mendkit/internal/adapters/outbound/config"
	"github.com/mendkit/mendkit/internal/adapters/outbound/fixer"
	"github.com/mendkit/mendkit/internal/adapters/outbound/gitinfo"
	"github.com/mendkit/mendkit/internal/adapters/outbound/history"
	"github.com/mendkit/mendkit/internal/adapters/outbound/scanner"
	"github.com/mendkit/mendkit/internal/application"
	"github.com/mendkit/mendkit/internal/domain"
)

// registerTools registers the mendkit MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("mendkit_scan",
			mcplib.WithDescription("Scan the project for naming and structure issues; returns the health report as JSON"),
		),
		handleScan(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("mendkit_heal",
			mcplib.WithDescription("Fix naming and structure issues and return the heal report. Uses the advisory AI service when GEMINI_API_KEY is set, built-in rules otherwise."),
			mcplib.WithBoolean("dry_run", mcplib.Description("Show the fix plan without applying it")),
			mcplib.WithBoolean("deterministic", mcplib.Description("Skip the advisory service and use only built-in rules")),
		),
		handleHeal(projectPath),
	)
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewScanService(scanner.New(nil), config.New(), nil)
		report, err := svc.ScanProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleHeal(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dryRun, _ := request.GetArguments()["dry_run"].(bool)
		deterministic, _ := request.GetArguments()["deterministic"].(bool)

		cfgLoader := config.New()
		cfg, err := cfgLoader.Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		// Without a key the advisory strategy cannot run; heal
		// deterministically instead of failing the tool call.
		var adv domain.FixAdvisor
		key := os.Getenv("GEMINI_API_KEY")
		if key != "" && !deterministic {
			adv = advisor.New(cfg.Advisory, key, nil)
		} else {
			deterministic = true
		}

		svc := application.NewHealService(
			scanner.New(nil),
			cfgLoader,
			adv,
			fixer.New(nil),
			gitinfo.New(),
			history.New(),
			nil,
		)

		report, err := svc.HealProject(ctx, projectPath, application.HealOptions{
			DryRun:        dryRun,
			Deterministic: deterministic,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("heal failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
