package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"shape-api/internal/common/config"
	"shape-api/internal/generator"
	"shape-api/internal/mcpserver"

	"github.com/mark3labs/mcp-go/server"
)

// ============================================================
// MCP Shape Server (stdio)
// ============================================================

func main() {
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Fatalf("[MCP] OPENAI_API_KEY is not set")
	}

	gen := generator.New(cfg.OpenAIKey, cfg.OpenAIModel)

	// Прямой тестовый режим: запрос берётся из аргументов командной строки
	if len(os.Args) > 1 {
		runDirect(gen, strings.Join(os.Args[1:], " "))
		return
	}

	log.Printf("[MCP] AI Shape Generator ready on stdio (model: %s)", cfg.OpenAIModel)

	if err := server.ServeStdio(mcpserver.New(gen)); err != nil {
		log.Fatalf("[MCP] server error: %v", err)
	}
}

// runDirect генерирует фигуры по одному запросу и печатает результат в stdout.
func runDirect(gen *generator.Generator, request string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shapes, err := gen.GenerateShapes(ctx, request, 0, 0)
	if err != nil {
		out, _ := json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
		fmt.Println(string(out))
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(map[string]any{"shapes": shapes}, "", "  ")
	fmt.Println(string(out))
}
