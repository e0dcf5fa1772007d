// Package main provides the promptsmith command-line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alsokkary/promptsmith/config"
	"github.com/alsokkary/promptsmith/internal/logging"
)

var cfg *config.Config

func main() {
	var (
		provider   string
		model      string
		configFile string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "promptsmith",
		Short: "Prompt optimization toolkit and chat agent",
		Long: `promptsmith rewrites prompts through deterministic optimization
techniques, renders prompt templates, scores prompt quality, and provides
an interactive chat agent over Anthropic or OpenAI models.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if configFile != "" {
				if err := cfg.LoadFile(configFile); err != nil {
					return err
				}
			}
			if provider != "" {
				cfg.Provider = provider
			}
			if model != "" {
				cfg.Model = model
			}
			if logLevel != "" {
				if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "LLM provider (anthropic, openai)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "LLM model")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		chatCmd(),
		optimizeCmd(),
		analyzeCmd(),
		templatesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() logging.Logger {
	return logging.NewLogger(cfg.LogLevel)
}
