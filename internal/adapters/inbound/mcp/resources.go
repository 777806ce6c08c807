package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mendkit/mendkit/internal/adapters/outbound/config"
	"github.com/mendkit/mendkit/internal/adapters/outbound/scanner"
	"github.com/mendkit/mendkit/internal/application"
)

// registerResources registers the mendkit MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"mendkit://report",
			"Health Report",
			mcplib.WithResourceDescription("Current naming and structure health report for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			"mendkit://config",
			"Effective Config",
			mcplib.WithResourceDescription("Effective project configuration after merging .mendkit.yaml over defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			"mendkit://listing",
			"File Listing",
			mcplib.WithResourceDescription("Indented tree listing of the project files"),
			mcplib.WithMIMEType("text/plain"),
		),
		handleListingResource(projectPath),
	)
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := application.NewScanService(scanner.New(nil), config.New(), nil)
		report, err := svc.ScanProject(projectPath)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "mendkit://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "mendkit://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleListingResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		listing, err := scanner.New(nil).Scan(projectPath, cfg)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "mendkit://listing",
				MIMEType: "text/plain",
				Text:     listing.Tree,
			},
		}, nil
	}
}
