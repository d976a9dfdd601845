package mcpserver

import (
	"context"
	"encoding/json"

	"shape-api/internal/shapes/engine"
	"shape-api/internal/shapes/models"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ============================================================
// MCP server (stdio)
// ============================================================

// ShapeGenerator — источник фигур по текстовому описанию.
type ShapeGenerator interface {
	GenerateShapes(ctx context.Context, request string, canvasWidth, canvasHeight int) ([]models.Shape, error)
}

// New собирает MCP-сервер с инструментом generate_shapes.
func New(gen ShapeGenerator) *server.MCPServer {
	s := server.NewMCPServer("ai-shape-generator", "1.0.0")

	s.AddTool(mcp.NewTool("generate_shapes",
		mcp.WithDescription("Generate canvas shapes from natural language description. Takes a user request like 'Add 3 red circles in the top-left' and returns structured shape objects."),
		mcp.WithString("request",
			mcp.Description("Natural language description of shapes to create (e.g., 'Add 3 red circles in the top-left corner')"),
			mcp.Required()),
		mcp.WithNumber("canvas_width", mcp.Description("Canvas width in pixels (default: 1200)")),
		mcp.WithNumber("canvas_height", mcp.Description("Canvas height in pixels (default: 600)")),
	), generateHandler(gen))

	return s
}

func generateHandler(gen ShapeGenerator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		request, _ := args["request"].(string)
		width := intArg(args, "canvas_width", engine.DefaultCanvasWidth)
		height := intArg(args, "canvas_height", engine.DefaultCanvasHeight)

		shapes, err := gen.GenerateShapes(ctx, request, width, height)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(map[string]any{"shapes": shapes})
	}
}

func jsonResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

// intArg читает числовой аргумент инструмента, отбрасывая неположительные.
func intArg(args map[string]any, key string, defaultVal int) int {
	if v, ok := args[key].(float64); ok && v > 0 {
		return int(v)
	}
	return defaultVal
}
