package domain

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ZhouZhiping045/FidelityGPT/internal/adapter"
	"github.com/ZhouZhiping045/FidelityGPT/internal/domain/salience"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

const weightCacheSize = 16

// Matcher selects the salient lines of a query against a reference corpus.
type Matcher interface {
	// Weights returns the weight table derived from corpus, falling back
	// to the default table when the corpus is unreadable or has no
	// classifiable lines.
	Weights(corpus m.Path) m.CorpusWeights
	// MatchPatterns returns the selected lines of queryLines.
	MatchPatterns(queryLines []string, corpus m.Path) []string
	// Explain returns the selection together with candidate and target counts.
	Explain(queryLines []string, corpus m.Path) m.Selection
	// Reset drops every cached weight table.
	Reset()
}

type matcher struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *zap.Logger
	cache     *lru.Cache[m.Path, m.CorpusWeights]
}

// NewMatcher creates a Matcher that reads corpora through fsAdapter and
// caches their weight tables by path.
func NewMatcher(fsAdapter adapter.SourceFSAdapter, logger *zap.Logger) Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := lru.New[m.Path, m.CorpusWeights](weightCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}

	return &matcher{
		fsAdapter: fsAdapter,
		logger:    logger,
		cache:     cache,
	}
}

func (mt *matcher) Weights(corpus m.Path) m.CorpusWeights {
	if cached, ok := mt.cache.Get(corpus); ok {
		return cached
	}

	weights := mt.loadWeights(corpus)
	mt.cache.Add(corpus, weights)

	return weights
}

func (mt *matcher) loadWeights(corpus m.Path) m.CorpusWeights {
	fallback := m.CorpusWeights{
		Corpus: corpus,
		Source: m.WeightsDefault,
		Counts: m.CategoryCounts{},
		Table:  m.DefaultWeightTable(),
	}

	content, err := mt.fsAdapter.ReadFile(corpus)
	if err != nil {
		mt.logger.Warn("corpus unreadable, using default weights",
			zap.String("corpus", string(corpus)), zap.Error(err))

		return fallback
	}

	table, counts, ok := salience.AnalyzeCorpus(string(content))
	if !ok {
		mt.logger.Warn("corpus has no classifiable lines, using default weights",
			zap.String("corpus", string(corpus)))

		fallback.Counts = counts

		return fallback
	}

	mt.logger.Debug("derived corpus weights",
		zap.String("corpus", string(corpus)), zap.Int("lines", counts.Total()))

	return m.CorpusWeights{
		Corpus: corpus,
		Source: m.WeightsFromCorpus,
		Counts: counts,
		Table:  table,
	}
}

func (mt *matcher) MatchPatterns(queryLines []string, corpus m.Path) []string {
	return salience.Select(queryLines, mt.Weights(corpus).Table)
}

func (mt *matcher) Explain(queryLines []string, corpus m.Path) m.Selection {
	candidates := len(salience.Candidates(queryLines))

	return m.Selection{
		Candidates: candidates,
		Target:     salience.TargetSize(candidates),
		Lines:      salience.SelectClassified(queryLines, mt.Weights(corpus).Table),
	}
}

func (mt *matcher) Reset() {
	mt.cache.Purge()
}
