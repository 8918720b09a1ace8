package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAIAdapter_MissingAPIKey(t *testing.T) {
	a := NewGenAIAdapter(GenAIConfig{Model: "gemini-2.5-flash", EmbeddingModel: "gemini-embedding-001"})

	_, err := a.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = a.Embed(context.Background(), []string{"doc"})
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenAIAdapter_EmbedEmptyNeedsNoClient(t *testing.T) {
	a := NewGenAIAdapter(GenAIConfig{})

	vectors, err := a.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
	assert.Nil(t, a.client)
}

func TestGenAIAdapter_ImplementsAdapters(t *testing.T) {
	var a any = NewGenAIAdapter(GenAIConfig{})

	_, ok := a.(LLMAdapter)
	assert.True(t, ok)

	_, ok = a.(EmbeddingAdapter)
	assert.True(t, ok)
}
