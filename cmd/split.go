package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ZhouZhiping045/FidelityGPT/internal/domain"
)

var splitBlockSizeFlag int
var splitOverlapFlag int
var splitIncludeFlags []string

// splitCmd represents the split command.
var splitCmd = newSplitCmd()

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [paths...]",
		Short: "Show the block windows of every query",
		Long: `Cut every query into windows of --block-size lines that overlap by --overlap
lines and show their line ranges. Without flags the configured geometry is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, overlap := cfg.Blocks.Size, cfg.Blocks.Overlap
			if cmd.Flags().Changed("block-size") {
				size = splitBlockSizeFlag
			}

			if cmd.Flags().Changed("overlap") {
				overlap = splitOverlapFlag
			}

			return ensureWorkflow(cmd).Split(domain.SplitArgs{
				Paths:   parsePaths(args),
				Include: splitIncludeFlags,
				Size:    size,
				Overlap: overlap,
			})
		},
	}
	cmd.Flags().IntVar(&splitBlockSizeFlag, "block-size", 0, "lines per block")
	cmd.Flags().IntVar(&splitOverlapFlag, "overlap", 0, "lines shared by consecutive blocks")
	cmd.Flags().StringArrayVarP(&splitIncludeFlags, "include", "i", nil, "only read files matching the glob (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
