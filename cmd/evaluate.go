package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ZhouZhiping045/FidelityGPT/internal/domain"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

// evaluateCmd represents the evaluate command.
var evaluateCmd = newEvaluateCmd()

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <ground-truth> <model-output>",
		Short: "Compare labelled output against ground truth",
		Long: `Compare the distortion labels of a model output file against a ground truth
file line by line and report confusion counts, accuracy, precision, recall,
F1 and specificity overall and per label, plus the mismatched lines.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ensureWorkflow(cmd).Evaluate(domain.EvaluateArgs{
				GroundTruth: m.Path(args[0]),
				ModelOutput: m.Path(args[1]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
