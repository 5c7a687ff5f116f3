package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codelens/internal/config"
	"codelens/internal/llm"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	apiKeyFlag string
	modelFlag  string
	timeout    time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codelens",
	Short: "codelens - explain code, write commit messages, generate READMEs",
	Long: `codelens is a small CLI that points an LLM at your code.

It can explain a source file in plain English, draft a commit message
from your staged changes, or generate a README.md for a project
directory. Output is rendered for the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// buildClient resolves credentials and constructs the LLM client.
// Flags override the config file; env vars are the last resort.
func buildClient(cfg config.Config) (llm.Client, error) {
	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	pc, err := llm.DetectProvider(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("provider resolved",
		zap.String("provider", string(pc.Provider)),
		zap.String("model", pc.Model))
	return llm.NewClient(pc, logger)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "API key (overrides config file and env)")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Model override")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Per-request timeout")

	// Add commands to root
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
