package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ZhouZhiping045/FidelityGPT/internal/domain"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var annotateParallelFlag int
var annotateOutputFlag string
var annotateIncludeFlags []string
var annotateStrategyFlag string
var annotateSeedFlag uint64

// annotateCmd represents the annotate command.
var annotateCmd = newAnnotateCmd()

const annotateLongDescription = `Label distorted lines in decompiled functions.

For every query the selected lines are matched against the distortion
knowledge base and the retrieved examples are passed to the language model
together with the function. Queries longer than the block threshold are split
into blocks that share the redundant variables found in the whole function.

Answers are written to <output>/<file>_RAG_answer.txt and every query or
block is also stored as a report that the view command can show.`

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate [paths...]",
		Short: "Run the retrieval-augmented distortion labelling",
		Long:  annotateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := domain.ParseStrategy(annotateStrategyFlag)
			if err != nil {
				return err
			}

			workers := cfg.Workers
			if annotateParallelFlag > 0 {
				workers = annotateParallelFlag
			}

			output := cfg.Paths.OutputDir
			if annotateOutputFlag != "" {
				output = annotateOutputFlag
			}

			return ensureWorkflow(cmd).Annotate(cmd.Context(), domain.AnnotateArgs{
				SelectArgs: domain.SelectArgs{
					Paths:    parsePaths(args),
					Include:  annotateIncludeFlags,
					Corpus:   m.Path(cfg.Paths.Corpus),
					Strategy: strategy,
					Seed:     annotateSeedFlag,
					Blocks:   blockArgs(),
				},
				KnowledgeBase: m.Path(cfg.Paths.KnowledgeBase),
				Output:        m.Path(output),
				Reports:       m.Path(cfg.Paths.ReportsDir),
				RetrieveLog:   m.Path(cfg.Paths.RetrieveLog),
				TopK:          cfg.Retrieval.TopK,
				Workers:       workers,
			})
		},
	}
	cmd.Flags().IntVarP(&annotateParallelFlag, "parallel", "p", 0, "number of query files annotated in parallel (overrides config)")
	cmd.Flags().StringVarP(&annotateOutputFlag, "output", "o", "", "directory of the answer files (overrides config)")
	cmd.Flags().StringArrayVarP(&annotateIncludeFlags, "include", "i", nil, "only read files matching the glob (can be repeated)")
	cmd.Flags().StringVar(&annotateStrategyFlag, "strategy", string(domain.StrategySalience), "line selection strategy (salience or random)")
	cmd.Flags().Uint64Var(&annotateSeedFlag, "seed", 0, "seed of the random strategy")

	return cmd
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
