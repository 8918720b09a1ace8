package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

var (
	// ErrMissingAPIKey is returned when a model call is attempted without an API key.
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrEmptyResponse is returned when the model answers with no text or no embeddings.
	ErrEmptyResponse = errors.New("empty model response")
)

// embedBatchSize is the largest number of texts sent in one EmbedContent call.
const embedBatchSize = 100

// LLMAdapter generates a completion for a prompt.
type LLMAdapter interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmbeddingAdapter embeds texts, returning one vector per input text.
type EmbeddingAdapter interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// GenAIConfig configures the Gemini-backed adapters.
type GenAIConfig struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	Temperature    float32
}

// GenAIAdapter implements LLMAdapter and EmbeddingAdapter with the Gemini API.
// The client is created on first use.
type GenAIAdapter struct {
	cfg GenAIConfig

	mu     sync.Mutex
	client *genai.Client
}

// NewGenAIAdapter constructs a GenAIAdapter.
func NewGenAIAdapter(cfg GenAIConfig) *GenAIAdapter {
	return &GenAIAdapter{cfg: cfg}
}

func (a *GenAIAdapter) getClient(ctx context.Context) (*genai.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  a.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	a.client = client

	return client, nil
}

// Generate sends prompt as a single user message and returns the text of the
// first candidate.
func (a *GenAIAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := a.getClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, a.cfg.Model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{Temperature: genai.Ptr(a.cfg.Temperature)},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}

// Embed returns one embedding per text, batching requests.
func (a *GenAIAdapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return nil, err
	}

	vectors := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += embedBatchSize {
		end := min(start+embedBatchSize, len(texts))

		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
		}

		result, err := client.Models.EmbedContent(ctx, a.cfg.EmbeddingModel, contents, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to embed batch at %d: %w", start, err)
		}

		if len(result.Embeddings) != end-start {
			return nil, fmt.Errorf("embedding batch at %d: got %d vectors for %d texts: %w",
				start, len(result.Embeddings), end-start, ErrEmptyResponse)
		}

		for _, emb := range result.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}

	return vectors, nil
}
