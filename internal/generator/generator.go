package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"shape-api/internal/shapes/engine"
	"shape-api/internal/shapes/geometry"
	"shape-api/internal/shapes/models"

	"github.com/sashabaranov/go-openai"
)

// ============================================================
// Shape generator (OpenAI boundary)
// ============================================================

const maxCompletionTokens = 1024

// ErrorKind — машинно-читаемый тип для ошибок генерации на границе API.
const ErrorKind = "generation_failed"

// GenerationError — ошибка генерации фигур. Не смешивается
// с ошибками операций ядра.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}

func generationFailed(format string, args ...any) *GenerationError {
	return &GenerationError{Message: fmt.Sprintf(format, args...)}
}

// Generator превращает текстовые запросы в фигуры через chat completions.
type Generator struct {
	client *openai.Client
	model  string
}

// New создает генератор. Пустая модель заменяется на gpt-4o-mini.
func New(apiKey, model string) *Generator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Generator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateShapes запрашивает у модели фигуры по текстовому описанию
// и возвращает проверенный список.
func (g *Generator) GenerateShapes(ctx context.Context, request string, canvasWidth, canvasHeight int) ([]models.Shape, error) {
	if strings.TrimSpace(request) == "" {
		return nil, generationFailed("request cannot be empty")
	}
	if canvasWidth <= 0 {
		canvasWidth = engine.DefaultCanvasWidth
	}
	if canvasHeight <= 0 {
		canvasHeight = engine.DefaultCanvasHeight
	}

	log.Printf("[AI] generating shapes for request: %q", request)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: maxCompletionTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(request, canvasWidth, canvasHeight)},
		},
	})
	if err != nil {
		return nil, generationFailed("completion request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, generationFailed("model returned no choices")
	}

	shapes, err := ParseShapesResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	log.Printf("[AI] generated %d shapes", len(shapes))
	return shapes, nil
}

// ParseShapesResponse разбирает ответ модели: снимает markdown-обрамление,
// требует ключ "shapes" и проверяет каждую фигуру.
func ParseShapesResponse(raw string) ([]models.Shape, error) {
	cleaned := stripFences(strings.TrimSpace(raw))

	var payload struct {
		Shapes json.RawMessage `json:"shapes"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, generationFailed("failed to parse model response: %v", err)
	}
	if payload.Shapes == nil {
		return nil, generationFailed(`invalid response format: missing "shapes" key`)
	}

	var shapes []models.Shape
	if err := json.Unmarshal(payload.Shapes, &shapes); err != nil {
		return nil, generationFailed("failed to decode shapes: %v", err)
	}
	if err := geometry.ValidateAll(shapes); err != nil {
		return nil, generationFailed("model produced an invalid shape: %v", err)
	}
	if shapes == nil {
		shapes = []models.Shape{}
	}
	return shapes, nil
}

// stripFences убирает обрамление ```json ... ``` вокруг ответа.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
