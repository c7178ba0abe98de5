package main

import (
	"encoding/json"
	"fmt"
	"io"

	"interview-ai/internal/adapter/provider"
	"interview-ai/internal/config"
	"interview-ai/internal/logger"
	"interview-ai/internal/pipeline"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pipelinectl",
		Short:         "Run the interview content pipeline from the command line",
		Long:          "pipelinectl generates interview questions and evaluates answers with the same configuration as the API server.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().Bool("offline", false, "Skip the configured LLM provider and use fallback content only")
	root.PersistentFlags().Bool("verbose", false, "Log pipeline stages to stdout")

	root.AddCommand(newQuestionsCmd())
	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newTokenCmd())
	return root
}

// loadConfig reads the shared configuration and initializes logging when --verbose is set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logger.Level = "debug"
		if err := logger.Initialize(cfg.Logger); err != nil {
			return nil, fmt.Errorf("initialize logger: %w", err)
		}
	}
	return cfg, nil
}

// buildPipeline wires the provider from configuration unless --offline is set
func buildPipeline(cmd *cobra.Command) (*pipeline.Pipeline, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	var gateway provider.Gateway
	if offline, _ := cmd.Flags().GetBool("offline"); !offline {
		gateway, err = provider.NewFromConfig(cmd.Context(), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("create provider: %w", err)
		}
	}
	return pipeline.New(pipeline.Config{Gateway: gateway}), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
