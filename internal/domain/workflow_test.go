package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ZhouZhiping045/FidelityGPT/internal/adapter"
	adaptermocks "github.com/ZhouZhiping045/FidelityGPT/internal/adapter/mocks"
	controllermocks "github.com/ZhouZhiping045/FidelityGPT/internal/controller/mocks"
	"github.com/ZhouZhiping045/FidelityGPT/internal/domain/salience"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

const sumQuery = `int __fastcall sum(int a1, int a2)
{
  int v3;
  v3 = a1 + a2;
  return v3;
}`

const noopQuery = `void __fastcall noop()
{
}`

const longQuery = `int __fastcall loop(int a1)
{
  int v1;
  v1 = 0;
  while ( a1 )
    v1 += *(_DWORD *)a1;
  return v1;
}`

const variablesAnswer = "**Potential redundant variable: v1."

// The genai client pulls in opencensus, whose stats worker starts in init and never exits.
var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
}

type workflowFixture struct {
	root     string
	fs       *adapter.LocalSourceFSAdapter
	store    adapter.ReportStore
	ui       *controllermocks.MockUI
	llm      *adaptermocks.MockLLMAdapter
	embedder *adaptermocks.MockEmbeddingAdapter

	mu      sync.Mutex
	prompts []string
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		root:     t.TempDir(),
		fs:       adapter.NewLocalSourceFSAdapter(),
		store:    adapter.NewReportStore(),
		ui:       controllermocks.NewMockUI(t),
		llm:      adaptermocks.NewMockLLMAdapter(t),
		embedder: newKeywordEmbedder(t),
	}

	f.write(t, "kb/fidelity_new.c", knowledgeBaseSample)

	return f
}

func (f *workflowFixture) write(t *testing.T, rel, content string) m.Path {
	t.Helper()

	path := filepath.Join(f.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func (f *workflowFixture) path(rel string) m.Path {
	return m.Path(filepath.Join(f.root, rel))
}

func (f *workflowFixture) workflow() Workflow {
	return NewWorkflow(f.fs, f.store, f.ui, NewMatcher(f.fs, zap.NewNop()), f.llm, f.embedder, zap.NewNop())
}

// echoLLM answers the variable prompt with a fixed list and every labelling
// prompt with the question it was asked about.
func (f *workflowFixture) echoLLM(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	question := prompt[strings.Index(prompt, "Question: ")+len("Question: "):]

	if strings.HasPrefix(prompt, "As a program analysis expert") {
		return variablesAnswer + "\n", nil
	}

	return question[:strings.Index(question, "\n**Requirements**")], nil
}

func (f *workflowFixture) expectAnnotateUI() {
	f.ui.EXPECT().Start(mock.Anything).Return(nil)
	f.ui.EXPECT().Close().Return()
	f.ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, mock.Anything).Return()
	f.ui.EXPECT().DisplayStartingAnnotation(mock.Anything, mock.Anything).Return().Maybe()
	f.ui.EXPECT().DisplayCompletedAnnotation(mock.Anything).Return().Maybe()
}

func (f *workflowFixture) annotateArgs(paths ...m.Path) AnnotateArgs {
	return AnnotateArgs{
		SelectArgs: SelectArgs{
			Paths:    paths,
			Corpus:   f.path("corpus/missing.c"),
			Strategy: StrategySalience,
			Blocks:   BlockArgs{Threshold: 50, Size: 50, Overlap: 5},
		},
		KnowledgeBase: f.path("kb/fidelity_new.c"),
		Output:        f.path("out"),
		Reports:       f.path("reports"),
		RetrieveLog:   f.path("out/retrieve.log"),
		TopK:          2,
		Workers:       1,
	}
}

func readString(t *testing.T, path m.Path) string {
	t.Helper()

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)

	return string(content)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "salience", want: StrategySalience},
		{in: " Random ", want: StrategyRandom},
		{in: "", want: StrategySalience},
		{in: "greedy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryBlocks(t *testing.T) {
	query := &m.Query{Lines: strings.Split(longQuery, "\n")}

	t.Run("short query stays whole", func(t *testing.T) {
		blocks := queryBlocks(query, BlockArgs{Threshold: 8, Size: 4, Overlap: 1})

		require.Len(t, blocks, 1)
		assert.Equal(t, -1, blocks[0].Index)
		assert.Equal(t, query.Lines, blocks[0].Lines)
		assert.Same(t, query, blocks[0].Query)
	})

	t.Run("long query is split", func(t *testing.T) {
		blocks := queryBlocks(query, BlockArgs{Threshold: 5, Size: 4, Overlap: 1})

		require.Len(t, blocks, 3)

		for i, block := range blocks {
			assert.Equal(t, i, block.Index)
			assert.Equal(t, i*3, block.Start)
			assert.Equal(t, query.Lines[block.Start:block.End()], block.Lines)
		}

		assert.Equal(t, len(query.Lines), blocks[2].End())
	})
}

func TestWorkflow_Weights(t *testing.T) {
	f := newWorkflowFixture(t)
	corpus := f.write(t, "corpus/fidelity_new.c", "x = 1;\nreturn x;\n")

	f.ui.EXPECT().DisplayWeights(mock.MatchedBy(func(w m.CorpusWeights) bool {
		return w.Source == m.WeightsFromCorpus && w.Corpus == corpus
	})).Return(nil)

	require.NoError(t, f.workflow().Weights(WeightsArgs{Corpus: corpus}))
}

func TestWorkflow_Select(t *testing.T) {
	t.Run("salience explains every block", func(t *testing.T) {
		f := newWorkflowFixture(t)
		queries := f.write(t, "queries/sample.c", sumQuery+"\n/////\n"+noopQuery+"\n")

		var got []m.Selection

		f.ui.EXPECT().Start(mock.Anything).Return(nil)
		f.ui.EXPECT().DisplaySelections(mock.Anything).Run(func(selections []m.Selection) {
			got = selections
		}).Return(nil)
		f.ui.EXPECT().Wait().Return()
		f.ui.EXPECT().Close().Return()

		err := f.workflow().Select(SelectArgs{
			Paths:    []m.Path{queries},
			Corpus:   f.path("corpus/missing.c"),
			Strategy: StrategySalience,
			Blocks:   BlockArgs{Threshold: 50, Size: 50, Overlap: 5},
		})
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, -1, got[0].Block.Index)
		assert.Equal(t, 3, got[0].Candidates)
		assert.Equal(t, 3, got[0].Target)
		assert.ElementsMatch(t, []string{"  int v3;", "  v3 = a1 + a2;", "  return v3;"}, got[0].Texts())

		assert.Zero(t, got[1].Candidates)
		assert.Empty(t, got[1].Lines)
	})

	t.Run("random caps the target at the sample size", func(t *testing.T) {
		f := newWorkflowFixture(t)
		queries := f.write(t, "queries/long.c", longQuery)

		var got []m.Selection

		f.ui.EXPECT().Start(mock.Anything).Return(nil)
		f.ui.EXPECT().DisplaySelections(mock.Anything).Run(func(selections []m.Selection) {
			got = selections
		}).Return(nil)
		f.ui.EXPECT().Wait().Return()
		f.ui.EXPECT().Close().Return()

		err := f.workflow().Select(SelectArgs{
			Paths:    []m.Path{queries},
			Strategy: StrategyRandom,
			Seed:     7,
			Blocks:   BlockArgs{Threshold: 50, Size: 50, Overlap: 5},
		})
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, 5, got[0].Candidates)
		assert.Equal(t, 5, got[0].Target)
		assert.Len(t, got[0].Lines, 5)
	})

	t.Run("invalid geometry", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.workflow().Select(SelectArgs{Blocks: BlockArgs{Size: 4, Overlap: 4}})
		require.ErrorIs(t, err, salience.ErrInvalidBlockConfig)
	})

	t.Run("ui start failure", func(t *testing.T) {
		f := newWorkflowFixture(t)
		queries := f.write(t, "queries/sample.c", sumQuery)

		f.ui.EXPECT().Start(mock.Anything).Return(errors.New("no tty"))

		err := f.workflow().Select(SelectArgs{
			Paths:  []m.Path{queries},
			Blocks: BlockArgs{Threshold: 50, Size: 50, Overlap: 5},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no tty")
	})
}

func TestWorkflow_Split(t *testing.T) {
	f := newWorkflowFixture(t)
	queries := f.write(t, "queries/sample.c", longQuery+"\n/////\n"+noopQuery)

	var got []m.Block

	f.ui.EXPECT().DisplayBlocks(mock.Anything).Run(func(blocks []m.Block) {
		got = blocks
	}).Return(nil)

	require.NoError(t, f.workflow().Split(SplitArgs{Paths: []m.Path{queries}, Size: 4, Overlap: 1}))

	require.Len(t, got, 4)
	assert.Equal(t, 0, got[0].Query.Index)
	assert.Equal(t, 6, got[2].Start)
	assert.Equal(t, 1, got[3].Query.Index)
	assert.Equal(t, 0, got[3].Index)
	assert.Equal(t, strings.Split(noopQuery, "\n"), got[3].Lines)

	err := f.workflow().Split(SplitArgs{Paths: []m.Path{queries}, Size: 0})
	require.ErrorIs(t, err, salience.ErrInvalidBlockConfig)
}

func TestWorkflow_Annotate(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)

	f := newWorkflowFixture(t)
	queries := f.write(t, "queries/sample.c", sumQuery+"\n/////\n"+noopQuery+"\n")

	f.expectAnnotateUI()
	f.llm.EXPECT().Generate(mock.Anything, mock.Anything).RunAndReturn(f.echoLLM)

	require.NoError(t, f.workflow().Annotate(context.Background(), f.annotateArgs(queries)))

	answers := readString(t, f.path("out/sample_RAG_answer.txt"))
	assert.Equal(t, "Query 1:\n"+sumQuery+"\n\n/////\nQuery 2:\n"+noopQuery+"\n", answers)

	// Unsplit queries never ask for redundant variables.
	require.Len(t, f.prompts, 2)
	for _, prompt := range f.prompts {
		assert.NotContains(t, prompt, variablesAnswer)
	}

	log := readString(t, f.path("out/retrieve.log"))
	assert.Equal(t, 2, strings.Count(log, "Sub-query:\n"))
	assert.Contains(t, log, "return 0; // I5\nreturn result; // I5\n")
	assert.True(t, strings.HasSuffix(log, "\n/////\n"))

	reports, err := f.store.LoadReports(f.path("reports"))
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, -1, reports[0].BlockIndex)
	assert.ElementsMatch(t, []string{"  int v3;", "  v3 = a1 + a2;", "  return v3;"}, reports[0].Selected)
	assert.Empty(t, reports[1].Selected)

	_, err = os.Stat(filepath.Join(string(f.path("reports")), "_index.yaml"))
	assert.NoError(t, err)
}

func TestWorkflow_AnnotateSplitQuery(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)

	f := newWorkflowFixture(t)
	queries := f.write(t, "queries/loop.c", longQuery)

	f.expectAnnotateUI()
	f.llm.EXPECT().Generate(mock.Anything, mock.Anything).RunAndReturn(f.echoLLM)

	args := f.annotateArgs(queries)
	args.Blocks = BlockArgs{Threshold: 5, Size: 4, Overlap: 1}

	require.NoError(t, f.workflow().Annotate(context.Background(), args))

	lines := strings.Split(longQuery, "\n")
	// Answers are trimmed, so indented blocks lose their leading whitespace.
	answer := func(from, to int) string {
		return strings.TrimSpace(strings.Join(lines[from:to], "\n"))
	}
	want := []string{
		"Query 1, Block 1:\n" + answer(0, 4) + "\n",
		"Query 1, Block 2:\n" + answer(3, 7) + "\n",
		"Query 1, Block 3:\n" + answer(6, 8) + "\n",
	}
	assert.Equal(t, strings.Join(want, "\n/////\n"), readString(t, f.path("out/loop_RAG_answer.txt")))

	// One variable prompt for the function, then one prompt per block carrying its answer.
	require.Len(t, f.prompts, 4)
	assert.True(t, strings.HasPrefix(f.prompts[0], "As a program analysis expert"))
	assert.Contains(t, f.prompts[0], longQuery)

	for _, prompt := range f.prompts[1:] {
		assert.Contains(t, prompt, variablesAnswer+"\nFirst, the function below may be split into blocks.")
	}

	log := readString(t, f.path("out/retrieve.log"))
	assert.Contains(t, log, "Sub-query:\n"+strings.Join(lines[0:4], "\n")+"\nFormatted context:\n")
}

func TestWorkflow_AnnotateVariableFailureStillLabels(t *testing.T) {
	f := newWorkflowFixture(t)
	queries := f.write(t, "queries/loop.c", longQuery)

	f.expectAnnotateUI()
	f.llm.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "As a program analysis expert")
	})).Return("", errors.New("rate limited")).Once()
	f.llm.EXPECT().Generate(mock.Anything, mock.Anything).RunAndReturn(f.echoLLM)

	args := f.annotateArgs(queries)
	args.Blocks = BlockArgs{Threshold: 5, Size: 4, Overlap: 1}

	require.NoError(t, f.workflow().Annotate(context.Background(), args))

	require.Len(t, f.prompts, 3)
	for _, prompt := range f.prompts {
		assert.Contains(t, prompt, "\n\nFirst, the function below may be split into blocks.")
	}
}

func TestWorkflow_AnnotateSkipsFailedQueries(t *testing.T) {
	f := newWorkflowFixture(t)
	queries := f.write(t, "queries/sample.c", sumQuery+"\n/////\n"+noopQuery)

	f.expectAnnotateUI()
	f.llm.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "noop")
	})).Return("", errors.New("boom"))
	f.llm.EXPECT().Generate(mock.Anything, mock.Anything).RunAndReturn(f.echoLLM)

	require.NoError(t, f.workflow().Annotate(context.Background(), f.annotateArgs(queries)))

	assert.Equal(t, "Query 1:\n"+sumQuery+"\n", readString(t, f.path("out/sample_RAG_answer.txt")))

	reports, err := f.store.LoadReports(f.path("reports"))
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.NoError(t, reports[0].Error)
	require.Error(t, reports[1].Error)
	assert.Contains(t, reports[1].Error.Error(), "boom")
}

func TestWorkflow_AnnotateParallel(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)

	f := newWorkflowFixture(t)
	for _, name := range []string{"a.c", "b.c", "c.c"} {
		f.write(t, "queries/"+name, sumQuery)
	}

	f.ui.EXPECT().Start(mock.Anything).Return(nil)
	f.ui.EXPECT().Close().Return()
	f.ui.EXPECT().DisplayConcurrencyInfo(2, 3).Return()
	f.ui.EXPECT().DisplayStartingAnnotation(mock.Anything, mock.Anything).Return().Times(3)
	f.ui.EXPECT().DisplayCompletedAnnotation(mock.Anything).Return().Times(3)
	f.llm.EXPECT().Generate(mock.Anything, mock.Anything).RunAndReturn(f.echoLLM)

	args := f.annotateArgs(f.path("queries"))
	args.Workers = 2

	require.NoError(t, f.workflow().Annotate(context.Background(), args))

	for _, base := range []string{"a", "b", "c"} {
		assert.Equal(t, "Query 1:\n"+sumQuery+"\n", readString(t, f.path("out/"+base+"_RAG_answer.txt")))
	}

	reports, err := f.store.LoadReports(f.path("reports"))
	require.NoError(t, err)
	assert.Len(t, reports, 3)
}

func TestWorkflow_AnnotateCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)

	f := newWorkflowFixture(t)
	queries := f.write(t, "queries/sample.c", sumQuery)

	f.expectAnnotateUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.workflow().Annotate(ctx, f.annotateArgs(queries))
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(string(f.path("out/sample_RAG_answer.txt")))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkflow_AnnotateNoFiles(t *testing.T) {
	f := newWorkflowFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(f.root, "queries"), 0o750))

	require.NoError(t, f.workflow().Annotate(context.Background(), f.annotateArgs(f.path("queries"))))
}

func TestWorkflow_AnnotateMissingKnowledgeBase(t *testing.T) {
	f := newWorkflowFixture(t)
	queries := f.write(t, "queries/sample.c", sumQuery)

	args := f.annotateArgs(queries)
	args.KnowledgeBase = f.path("kb/missing.c")

	require.Error(t, f.workflow().Annotate(context.Background(), args))
}

func TestWorkflow_Evaluate(t *testing.T) {
	f := newWorkflowFixture(t)
	groundTruth := f.write(t, "eval/ground_truth.c", groundTruthSample)
	modelOutput := f.write(t, "eval/model_output.c", modelOutputSample)

	f.ui.EXPECT().DisplayEvaluation(mock.MatchedBy(func(e m.Evaluation) bool {
		return e.Overall == m.Counts{TP: 2, TN: 5, FP: 1, FN: 1}
	})).Return(nil)

	require.NoError(t, f.workflow().Evaluate(EvaluateArgs{GroundTruth: groundTruth, ModelOutput: modelOutput}))

	err := f.workflow().Evaluate(EvaluateArgs{GroundTruth: groundTruth, ModelOutput: f.path("eval/missing.c")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model output")
}

func TestWorkflow_View(t *testing.T) {
	f := newWorkflowFixture(t)
	source := m.File{Path: "queries/sample.c", Hash: "abc"}

	require.NoError(t, f.store.SaveReports(f.path("reports"), []m.Report{
		{Source: source, QueryIndex: 0, BlockIndex: -1, Answer: "a"},
		{Source: source, QueryIndex: 1, BlockIndex: -1, Answer: "b"},
	}))

	f.ui.EXPECT().DisplayReports(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2 && reports[0].Answer == "a"
	})).Return(nil)

	require.NoError(t, f.workflow().View(ViewArgs{Reports: f.path("reports")}))
}
