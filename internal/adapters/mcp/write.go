package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tidydesk/internal/application"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

// RegisterWriteTools adds the mutating organizer tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, ws ports.Workspace, classifier *domain.Classifier) {
	s.AddTool(organizeTool(), organizeHandler(ws, classifier))
}

// --- organize ---

func organizeTool() mcp.Tool {
	return mcp.NewTool("organize",
		mcp.WithDescription("Run a live organize pass, moving files into their destination folders. Use the preview tool first to inspect the plan."),
		mcp.WithString("dir",
			mcp.Description("Directory to organize"),
			mcp.Required(),
		),
		mcp.WithString("mode",
			mcp.Description("Organization mode: \"type\" (category folders, default) or \"date\" (YYYY/YYYY-MM folders)"),
		),
	)
}

func organizeHandler(ws ports.Workspace, classifier *domain.Classifier) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", "")
		if dir == "" {
			return toolError(fmt.Errorf("dir is required"))
		}

		mode, err := application.ParseMode(req.GetString("mode", string(application.ModeType)))
		if err != nil {
			return toolError(err)
		}

		result, err := runOrganize(ctx, ws, classifier, dir, mode, true)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(application.FormatReport(result.Report)), nil
	}
}
