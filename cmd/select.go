package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ZhouZhiping045/FidelityGPT/internal/domain"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var selectStrategyFlag string
var selectSeedFlag uint64
var selectIncludeFlags []string

// selectCmd represents the select command.
var selectCmd = newSelectCmd()

const selectLongDescription = `Read query files, split queries longer than the block threshold into
overlapping blocks and show which lines of every block would drive retrieval,
together with their category and strength.

The salience strategy picks one line per category first, then tops the
selection up by strength. The random strategy samples lines as a baseline.`

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [paths...]",
		Short: "Show the lines selected from every query",
		Long:  selectLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := domain.ParseStrategy(selectStrategyFlag)
			if err != nil {
				return err
			}

			return ensureWorkflow(cmd).Select(domain.SelectArgs{
				Paths:    parsePaths(args),
				Include:  selectIncludeFlags,
				Corpus:   m.Path(cfg.Paths.Corpus),
				Strategy: strategy,
				Seed:     selectSeedFlag,
				Blocks:   blockArgs(),
			})
		},
	}
	cmd.Flags().StringVar(&selectStrategyFlag, "strategy", string(domain.StrategySalience), "line selection strategy (salience or random)")
	cmd.Flags().Uint64Var(&selectSeedFlag, "seed", 0, "seed of the random strategy")
	cmd.Flags().StringArrayVarP(&selectIncludeFlags, "include", "i", nil, "only read files matching the glob (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
