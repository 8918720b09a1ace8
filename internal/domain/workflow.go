package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ZhouZhiping045/FidelityGPT/internal/adapter"
	"github.com/ZhouZhiping045/FidelityGPT/internal/controller"
	"github.com/ZhouZhiping045/FidelityGPT/internal/domain/salience"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

// answerSuffix is appended to the input file's base name to name its answer file.
const answerSuffix = "_RAG_answer.txt"

// Strategy selects how lines are picked from a block.
type Strategy string

// Available strategies.
const (
	StrategySalience Strategy = "salience"
	StrategyRandom   Strategy = "random"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case StrategySalience, StrategyRandom:
		return s, nil
	case "":
		return StrategySalience, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want %s or %s)", name, StrategySalience, StrategyRandom)
	}
}

// BlockArgs controls when queries are split and the window geometry.
type BlockArgs struct {
	Threshold int
	Size      int
	Overlap   int
}

// WeightsArgs holds the arguments of Weights.
type WeightsArgs struct {
	Corpus m.Path
}

// SelectArgs holds the arguments of Select.
type SelectArgs struct {
	Paths    []m.Path
	Include  []string
	Corpus   m.Path
	Strategy Strategy
	Seed     uint64
	Blocks   BlockArgs
}

// SplitArgs holds the arguments of Split.
type SplitArgs struct {
	Paths   []m.Path
	Include []string
	Size    int
	Overlap int
}

// AnnotateArgs holds the arguments of Annotate.
type AnnotateArgs struct {
	SelectArgs
	KnowledgeBase m.Path
	Output        m.Path
	Reports       m.Path
	RetrieveLog   m.Path
	TopK          int
	Workers       int
}

// EvaluateArgs holds the arguments of Evaluate.
type EvaluateArgs struct {
	GroundTruth m.Path
	ModelOutput m.Path
}

// ViewArgs holds the arguments of View.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations behind the fidelity commands.
type Workflow interface {
	Weights(args WeightsArgs) error
	Select(args SelectArgs) error
	Split(args SplitArgs) error
	Annotate(ctx context.Context, args AnnotateArgs) error
	Evaluate(args EvaluateArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	matcher     Matcher
	llm         adapter.LLMAdapter
	embedder    adapter.EmbeddingAdapter
	logger      *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	matcher Matcher,
	llm adapter.LLMAdapter,
	embedder adapter.EmbeddingAdapter,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		matcher:     matcher,
		llm:         llm,
		embedder:    embedder,
		logger:      logger,
	}
}

func (w *workflow) Weights(args WeightsArgs) error {
	return w.ui.DisplayWeights(w.matcher.Weights(args.Corpus))
}

func (w *workflow) Select(args SelectArgs) error {
	if err := salience.ValidateBlockConfig(args.Blocks.Size, args.Blocks.Overlap); err != nil {
		return err
	}

	queries, err := w.readQueries(args.Paths, args.Include)
	if err != nil {
		return err
	}

	weights := w.matcher.Weights(args.Corpus).Table

	var selections []m.Selection

	for i := range queries {
		selectLines := w.newSelector(args.Strategy, args.Corpus, args.Seed, i)

		for _, block := range queryBlocks(&queries[i], args.Blocks) {
			selection := explainSelection(block, selectLines(block.Lines), weights)
			if args.Strategy == StrategyRandom {
				selection.Target = min(salience.DefaultRandomSample, selection.Candidates)
			}

			selections = append(selections, selection)
		}
	}

	if err := w.ui.Start(controller.WithBrowseMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplaySelections(selections); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) Split(args SplitArgs) error {
	if err := salience.ValidateBlockConfig(args.Size, args.Overlap); err != nil {
		return err
	}

	queries, err := w.readQueries(args.Paths, args.Include)
	if err != nil {
		return err
	}

	var blocks []m.Block

	for i := range queries {
		windows, err := salience.SplitIntoBlocks(queries[i].Lines, args.Size, args.Overlap)
		if err != nil {
			return err
		}

		blocks = append(blocks, toBlocks(&queries[i], windows, args.Size-args.Overlap)...)
	}

	return w.ui.DisplayBlocks(blocks)
}

func (w *workflow) Annotate(ctx context.Context, args AnnotateArgs) error {
	if err := salience.ValidateBlockConfig(args.Blocks.Size, args.Blocks.Overlap); err != nil {
		return err
	}

	files, err := w.fsAdapter.Get(args.Paths, args.Include)
	if err != nil {
		return fmt.Errorf("failed to collect query files: %w", err)
	}

	if len(files) == 0 {
		w.logger.Warn("no query files found")

		return nil
	}

	kb, err := LoadKnowledgeBase(ctx, w.fsAdapter, w.embedder, args.KnowledgeBase, w.logger)
	if err != nil {
		return err
	}

	workers := max(args.Workers, 1)

	if err := w.ui.Start(controller.WithAnnotateMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(workers, len(files))

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)

		for i := range files {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	for workerID := range workers {
		g.Go(func() error {
			for i := range jobs {
				w.ui.DisplayStartingAnnotation(files[i], workerID)

				if err := w.annotateFile(gctx, files[i], i, kb, args); err != nil {
					return err
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.reportStore.RegenerateIndex(args.Reports); err != nil {
		return fmt.Errorf("failed to regenerate report index: %w", err)
	}

	return nil
}

func (w *workflow) Evaluate(args EvaluateArgs) error {
	groundTruth, err := w.fsAdapter.ReadFile(args.GroundTruth)
	if err != nil {
		return fmt.Errorf("failed to read ground truth %s: %w", args.GroundTruth, err)
	}

	modelOutput, err := w.fsAdapter.ReadFile(args.ModelOutput)
	if err != nil {
		return fmt.Errorf("failed to read model output %s: %w", args.ModelOutput, err)
	}

	return w.ui.DisplayEvaluation(Evaluate(string(groundTruth), string(modelOutput)))
}

func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	return w.ui.DisplayReports(reports)
}

// annotateFile runs every query of file through the pipeline, then writes
// the answer file and the reports. An unreadable file is logged and skipped.
func (w *workflow) annotateFile(ctx context.Context, file m.File, fileIndex int, kb *KnowledgeBase, args AnnotateArgs) error {
	log := w.logger.With(zap.String("file", string(file.Path)))

	queries, err := w.fsAdapter.ReadQueries(file.Path)
	if err != nil {
		log.Warn("skipping unreadable query file", zap.Error(err))

		return nil
	}

	selectLines := w.newSelector(args.Strategy, args.Corpus, args.Seed, fileIndex)

	var reports []m.Report

	for i := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}

		reports = append(reports, w.annotateQuery(ctx, log, &queries[i], kb, selectLines, args)...)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	entries := make([]string, 0, len(reports))

	for _, report := range reports {
		if report.Error == nil {
			entries = append(entries, report.Heading()+"\n"+report.Answer+"\n")
		}
	}

	base := strings.SplitN(filepath.Base(string(file.Path)), ".", 2)[0]
	out := w.fsAdapter.JoinPath(string(args.Output), base+answerSuffix)

	if err := w.fsAdapter.WriteFile(out, []byte(strings.Join(entries, "\n"+adapter.QuerySeparator+"\n")), 0o600); err != nil {
		return fmt.Errorf("failed to write answers for %s: %w", file.Path, err)
	}

	if err := w.reportStore.SaveReports(args.Reports, reports); err != nil {
		return fmt.Errorf("failed to save reports for %s: %w", file.Path, err)
	}

	log.Info("annotated query file", zap.Int("queries", len(queries)), zap.Int("answers", len(entries)))

	return nil
}

// annotateQuery labels one query. Queries longer than the threshold are
// split into blocks that share the redundant variables of the whole function.
func (w *workflow) annotateQuery(ctx context.Context, log *zap.Logger, query *m.Query, kb *KnowledgeBase,
	selectLines lineSelector, args AnnotateArgs) []m.Report {
	blocks := queryBlocks(query, args.Blocks)

	split := len(blocks) > 0 && blocks[0].Index >= 0

	variables := ""
	if split {
		answer, err := w.llm.Generate(ctx, VariablePrompt(strings.Join(query.Lines, "\n")))
		if err != nil {
			log.Warn("redundant variable extraction failed", zap.Int("query", query.Index+1), zap.Error(err))
		} else {
			variables = strings.TrimSpace(answer)
		}
	}

	reports := make([]m.Report, 0, len(blocks))

	for _, block := range blocks {
		if ctx.Err() != nil {
			break
		}

		report := m.Report{
			Source:     *query.Source,
			QueryIndex: query.Index,
			BlockIndex: block.Index,
			Selected:   selectLines(block.Lines),
		}

		question := strings.Join(block.Lines, "\n")

		docs, err := kb.Retrieve(ctx, report.Selected, args.TopK)
		if err != nil {
			report.Error = fmt.Errorf("failed to retrieve context: %w", err)
		} else {
			report.Context = FormatDocs(docs)

			subQuery := question
			if !split {
				subQuery = strings.Join(report.Selected, "\n")
			}

			w.appendRetrieveLog(log, args.RetrieveLog, subQuery, report.Context)

			prompt := RAGPrompt(report.Context, question)
			if split {
				prompt = RAGPromptWithVariables(variables, report.Context, question)
			}

			answer, err := w.llm.Generate(ctx, prompt)
			if err != nil {
				report.Error = fmt.Errorf("failed to generate answer: %w", err)
			} else {
				report.Answer = strings.TrimSpace(answer)
			}
		}

		if report.Error != nil {
			log.Warn("skipping "+report.Heading(), zap.Error(report.Error))
		}

		w.ui.DisplayCompletedAnnotation(report)
		reports = append(reports, report)
	}

	return reports
}

func (w *workflow) appendRetrieveLog(log *zap.Logger, path m.Path, subQuery, formatted string) {
	if path == "" {
		return
	}

	entry := fmt.Sprintf("Sub-query:\n%s\nFormatted context:\n%s\n%s\n", subQuery, formatted, adapter.QuerySeparator)
	if err := w.fsAdapter.AppendFile(path, []byte(entry)); err != nil {
		log.Warn("failed to append retrieve log", zap.String("log", string(path)), zap.Error(err))
	}
}

func (w *workflow) readQueries(paths []m.Path, include []string) ([]m.Query, error) {
	files, err := w.fsAdapter.Get(paths, include)
	if err != nil {
		return nil, fmt.Errorf("failed to collect query files: %w", err)
	}

	var queries []m.Query

	for _, file := range files {
		fileQueries, err := w.fsAdapter.ReadQueries(file.Path)
		if err != nil {
			return nil, err
		}

		queries = append(queries, fileQueries...)
	}

	return queries, nil
}

// lineSelector picks the lines of a block that drive retrieval.
type lineSelector func(lines []string) []string

// newSelector returns the selector for strategy. Random selectors are seeded
// with seed+salt so each file gets its own reproducible sequence.
func (w *workflow) newSelector(strategy Strategy, corpus m.Path, seed uint64, salt int) lineSelector {
	if strategy == StrategyRandom {
		rng := salience.NewRand(seed + uint64(salt))

		return func(lines []string) []string {
			return salience.SelectRandom(lines, salience.DefaultRandomSample, rng)
		}
	}

	return func(lines []string) []string {
		return w.matcher.MatchPatterns(lines, corpus)
	}
}

// queryBlocks returns the whole query as a single block unless it is longer
// than the threshold, in which case it is split. The geometry must be valid.
func queryBlocks(query *m.Query, args BlockArgs) []m.Block {
	if len(query.Lines) <= args.Threshold {
		return []m.Block{{Query: query, Index: -1, Lines: query.Lines}}
	}

	windows, err := salience.SplitIntoBlocks(query.Lines, args.Size, args.Overlap)
	if err != nil {
		return []m.Block{{Query: query, Index: -1, Lines: query.Lines}}
	}

	return toBlocks(query, windows, args.Size-args.Overlap)
}

func toBlocks(query *m.Query, windows [][]string, step int) []m.Block {
	blocks := make([]m.Block, 0, len(windows))
	for i, window := range windows {
		blocks = append(blocks, m.Block{Query: query, Index: i, Start: i * step, Lines: window})
	}

	return blocks
}

// explainSelection classifies the selected texts for display.
func explainSelection(block m.Block, selected []string, weights m.WeightTable) m.Selection {
	candidates := len(salience.Candidates(block.Lines))

	lines := make([]m.ClassifiedLine, 0, len(selected))
	for _, text := range selected {
		lines = append(lines, salience.Classify(text, weights))
	}

	return m.Selection{
		Block:      block,
		Candidates: candidates,
		Target:     salience.TargetSize(candidates),
		Lines:      lines,
	}
}
