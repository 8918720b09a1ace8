package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ZhouZhiping045/FidelityGPT/internal/adapter"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

// ErrEmptyKnowledgeBase is returned when a knowledge base has no documents.
var ErrEmptyKnowledgeBase = errors.New("knowledge base has no documents")

// KnowledgeBase is an in-memory vector index over distortion examples.
type KnowledgeBase struct {
	embedder adapter.EmbeddingAdapter
	logger   *zap.Logger
	docs     []string
	vectors  [][]float32
}

// SplitDocuments splits knowledge-base content into documents on blank lines.
func SplitDocuments(content string) []string {
	var (
		docs    []string
		current []string
	)

	flush := func() {
		if doc := strings.TrimSpace(strings.Join(current, "\n")); doc != "" {
			docs = append(docs, doc)
		}

		current = current[:0]
	}

	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()

			continue
		}

		current = append(current, line)
	}

	flush()

	return docs
}

// LoadKnowledgeBase reads path, splits it into documents and embeds them.
func LoadKnowledgeBase(ctx context.Context, fsAdapter adapter.SourceFSAdapter, embedder adapter.EmbeddingAdapter,
	path m.Path, logger *zap.Logger) (*KnowledgeBase, error) {
	content, err := fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base %s: %w", path, err)
	}

	return NewKnowledgeBase(ctx, embedder, SplitDocuments(string(content)), logger)
}

// NewKnowledgeBase embeds docs and returns the index.
func NewKnowledgeBase(ctx context.Context, embedder adapter.EmbeddingAdapter, docs []string, logger *zap.Logger) (*KnowledgeBase, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(docs) == 0 {
		return nil, ErrEmptyKnowledgeBase
	}

	vectors, err := embedder.Embed(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to embed knowledge base: %w", err)
	}

	if len(vectors) != len(docs) {
		return nil, fmt.Errorf("failed to embed knowledge base: got %d vectors for %d documents", len(vectors), len(docs))
	}

	logger.Info("knowledge base indexed", zap.Int("documents", len(docs)))

	return &KnowledgeBase{
		embedder: embedder,
		logger:   logger,
		docs:     docs,
		vectors:  vectors,
	}, nil
}

// Len returns the number of indexed documents.
func (kb *KnowledgeBase) Len() int {
	return len(kb.docs)
}

// Retrieve returns, for every query, its k most similar documents, flattened
// in query order with duplicates removed.
func (kb *KnowledgeBase) Retrieve(ctx context.Context, queries []string, k int) ([]string, error) {
	if len(queries) == 0 || k <= 0 {
		return nil, nil
	}

	vectors, err := kb.embedder.Embed(ctx, queries)
	if err != nil {
		return nil, fmt.Errorf("failed to embed queries: %w", err)
	}

	if len(vectors) != len(queries) {
		return nil, fmt.Errorf("failed to embed queries: got %d vectors for %d queries", len(vectors), len(queries))
	}

	var docs []string
	for _, vector := range vectors {
		for _, idx := range kb.nearest(vector, k) {
			docs = append(docs, kb.docs[idx])
		}
	}

	unique := dedupe(docs)
	kb.logger.Debug("retrieved documents",
		zap.Int("queries", len(queries)), zap.Int("documents", len(unique)))

	return unique, nil
}

func (kb *KnowledgeBase) nearest(query []float32, k int) []int {
	type scored struct {
		idx   int
		score float64
	}

	scores := make([]scored, len(kb.vectors))
	for i, vector := range kb.vectors {
		scores[i] = scored{idx: i, score: cosine(query, vector)}
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	k = min(k, len(scores))

	out := make([]int, k)
	for i := range k {
		out[i] = scores[i].idx
	}

	return out
}

// FormatDocs joins retrieved documents into a prompt context.
func FormatDocs(docs []string) string {
	return strings.Join(docs, "\n\n")
}

func cosine(a, b []float32) float64 {
	n := min(len(a), len(b))

	var dot, na, nb float64
	for i := range n {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}

	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}
