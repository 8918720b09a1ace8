// Package cmd provides the root command and CLI setup for fidelity.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ZhouZhiping045/FidelityGPT/internal/adapter"
	"github.com/ZhouZhiping045/FidelityGPT/internal/config"
	"github.com/ZhouZhiping045/FidelityGPT/internal/controller"
	"github.com/ZhouZhiping045/FidelityGPT/internal/domain"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var cfg *config.Config
var logger *zap.Logger
var workflow domain.Workflow
var renderer controller.Renderer

// newWorkflow wires the production adapters. Tests replace workflow directly.
var newWorkflow = func(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	llm := adapter.NewGenAIAdapter(adapter.GenAIConfig{
		APIKey:         cfg.APIKey(),
		Model:          cfg.LLM.Model,
		EmbeddingModel: cfg.LLM.EmbeddingModel,
		Temperature:    cfg.LLM.Temperature,
	})

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(),
		controller.NewUI(cmd, renderer),
		domain.NewMatcher(fsAdapter, logger),
		llm,
		llm,
		logger,
	)
}

var configFlag string
var corpusFlag string
var reportsOutputDirFlag string
var verboseFlag bool
var uiFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fidelity",
		Short: "Decompiled code distortion labelling toolkit",
		Long: `Fidelity picks the most informative lines of decompiled functions, retrieves
similar distortion examples for them and asks a language model to label every
distorted line with its distortion type (I1..I6).

Supports Go-style path patterns:
  - ./...            recursively scan current directory
  - ./testdata/...   recursively scan testdata directory
  - a.c b.c          scan individual query files`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultConfigFile, "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&corpusFlag, "corpus", "", "reference corpus used to derive category weights (overrides config)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "directory of stored annotation reports (overrides config)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&uiFlag, "ui", "", "output renderer: auto, plain or tui (overrides config)")

	return cmd
}

func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if corpusFlag != "" {
		loaded.Paths.Corpus = corpusFlag
	}

	if reportsOutputDirFlag != "" {
		loaded.Paths.ReportsDir = reportsOutputDirFlag
	}

	if uiFlag != "" {
		loaded.UI = uiFlag
	}

	renderer, err = controller.ParseRenderer(loaded.UI)
	if err != nil {
		return err
	}

	cfg = loaded

	logger, err = newLogger(verboseFlag)
	if err != nil {
		return err
	}

	return nil
}

// ensureWorkflow builds the production workflow unless one is already set.
func ensureWorkflow(cmd *cobra.Command) domain.Workflow {
	if workflow == nil {
		workflow = newWorkflow(cmd, cfg, logger)
	}

	return workflow
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if verbose {
		zapCfg.Level.SetLevel(zap.DebugLevel)
	}

	return zapCfg.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// parsePaths converts positional arguments to paths, falling back to the
// configured input directory.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{m.Path(cfg.Paths.InputDir)}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func blockArgs() domain.BlockArgs {
	return domain.BlockArgs{
		Threshold: cfg.Blocks.Threshold,
		Size:      cfg.Blocks.Size,
		Overlap:   cfg.Blocks.Overlap,
	}
}
