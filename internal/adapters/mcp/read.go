package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tidydesk/internal/application"
	"tidydesk/internal/application/commands"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

// RegisterReadTools adds all read-only organizer tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, ws ports.Workspace, classifier *domain.Classifier) {
	s.AddTool(classifyTool(), classifyHandler(classifier))
	s.AddTool(previewTool(), previewHandler(ws, classifier))
	s.AddTool(categoriesTool(), categoriesHandler(classifier))
}

// --- classify ---

func classifyTool() mcp.Tool {
	return mcp.NewTool("classify",
		mcp.WithDescription("Classify filenames into categories without touching the filesystem."),
		mcp.WithString("names",
			mcp.Description("Newline-separated filenames to classify"),
			mcp.Required(),
		),
	)
}

func classifyHandler(classifier *domain.Classifier) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names := splitNames(req.GetString("names", ""))
		if len(names) == 0 {
			return toolError(fmt.Errorf("names is required"))
		}

		cmd := commands.NewClassifyCommand(classifier, names)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, c := range result.Classifications {
			fmt.Fprintf(&sb, "%s → %s/\n", c.Name, c.Category)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- preview ---

func previewTool() mcp.Tool {
	return mcp.NewTool("preview",
		mcp.WithDescription("Dry-run an organize pass and return the planned moves. Never mutates the filesystem."),
		mcp.WithString("dir",
			mcp.Description("Directory to organize"),
			mcp.Required(),
		),
		mcp.WithString("mode",
			mcp.Description("Organization mode: \"type\" (category folders, default) or \"date\" (YYYY/YYYY-MM folders)"),
		),
	)
}

func previewHandler(ws ports.Workspace, classifier *domain.Classifier) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", "")
		if dir == "" {
			return toolError(fmt.Errorf("dir is required"))
		}

		mode, err := application.ParseMode(req.GetString("mode", string(application.ModeType)))
		if err != nil {
			return toolError(err)
		}

		result, err := runOrganize(ctx, ws, classifier, dir, mode, false)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(application.FormatReport(result.Report)), nil
	}
}

// --- categories ---

func categoriesTool() mcp.Tool {
	return mcp.NewTool("categories",
		mcp.WithDescription("List every category the active rules can produce, with the extensions each group claims."),
	)
}

func categoriesHandler(classifier *domain.Classifier) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rules := classifier.Rules()

		byExt := make(map[domain.Category][]string)
		for _, g := range rules.Extensions {
			byExt[g.Category] = g.Match
		}

		var sb strings.Builder
		for _, cat := range rules.Categories() {
			if exts, ok := byExt[cat]; ok {
				fmt.Fprintf(&sb, "%s  (%s)\n", cat, strings.Join(exts, " "))
			} else {
				fmt.Fprintln(&sb, cat)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func runOrganize(ctx context.Context, ws ports.Workspace, classifier *domain.Classifier, dir string, mode domain.Mode, live bool) (*commands.OrganizeResult, error) {
	if mode == domain.ModeDate {
		return commands.NewOrganizeByDateCommand(ws, dir, live).Execute(ctx)
	}
	return commands.NewOrganizeByTypeCommand(ws, classifier, dir, live).Execute(ctx)
}

func splitNames(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
