package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadlens/leadlens-cli/internal/config"
	"github.com/leadlens/leadlens-cli/pkg/gemini"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "leadlens",
	Short: "AI-driven local business lead tool",
	Long:  "Scrapes business listings, checks WhatsApp status for phone numbers, and checks local-search rankings by driving a hosted generative model.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func newGeminiClient() gemini.Client {
	return gemini.NewClient(cfg.Gemini.Key, gemini.WithBaseURL(cfg.Gemini.BaseURL))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
