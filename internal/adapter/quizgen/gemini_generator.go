package quizgen

import (
	"context"
	"fmt"
	"time"

	"quiz-forge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// Sampling configuration for quiz generation. Fixed per process; requests
// cannot tune these.
const (
	generationTemperature = 1.0
	generationTopP        = 0.95
	generationTopK        = 40
	generationMaxTokens   = 8192
)

// GeminiTextGenerator implements domain.TextGenerator against the Gemini API
// through langchaingo.
type GeminiTextGenerator struct {
	llm     *googleai.GoogleAI
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiTextGenerator creates a Gemini-backed text generator. The API key
// and model are process-wide configuration; timeout bounds each call since
// the upstream latency is otherwise unbounded.
func NewGeminiTextGenerator(ctx context.Context, apiKey, model string, timeout time.Duration, logger *zap.Logger) (domain.TextGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Initialized Gemini text generator", zap.String("model", model))
	return &GeminiTextGenerator{
		llm:     llm,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// GenerateText performs a single-turn exchange. No retries: a failure here is
// surfaced to the pipeline as an LLM service error.
func (g *GeminiTextGenerator) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemInstruction),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := g.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(generationTemperature),
		llms.WithTopP(generationTopP),
		llms.WithTopK(generationTopK),
		llms.WithMaxTokens(generationMaxTokens),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			g.logger.Error("Gemini request timed out", zap.Duration("timeout", g.timeout))
			return "", domain.NewLLMServiceError(ctx.Err())
		}
		g.logger.Error("Gemini request failed", zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewLLMServiceError(fmt.Errorf("model returned no candidates"))
	}
	return resp.Choices[0].Content, nil
}

var _ domain.TextGenerator = (*GeminiTextGenerator)(nil)
