package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ZhouZhiping045/FidelityGPT/internal/domain"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

// weightsCmd represents the weights command.
var weightsCmd = newWeightsCmd()

func newWeightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show the category weights derived from the corpus",
		Long: `Count how often each syntactic category occurs in the reference corpus and
show the resulting weights. A missing or unclassifiable corpus falls back to
the built-in default weights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ensureWorkflow(cmd).Weights(domain.WeightsArgs{Corpus: m.Path(cfg.Paths.Corpus)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}
