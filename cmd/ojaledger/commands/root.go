package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ojaledger/ojaledger/cmd/ojaledger/internal/config"
)

var (
	// Global flags
	verbose bool

	// Global configuration (loaded at init time)
	globalConfig  *config.Config
	configLoadErr error
)

var rootCmd = &cobra.Command{
	Use:   "ojaledger",
	Short: "Voice bookkeeping for informal traders",
	Long: `ojaledger - a voice bookkeeping assistant for informal traders.

Traders speak their sales and debts in English, Yoruba, Igbo or Hausa;
ojaledger transcribes, extracts the transactions and keeps the ledger.

Configuration is stored in the OS config directory:
  macOS:   ~/Library/Application Support/ojaledger/config.yaml
  Linux:   ~/.config/ojaledger/config.yaml
  Windows: %AppData%/ojaledger/config.yaml

API keys may also come from GEMINI_API_KEY / OPENAI_API_KEY.

Examples:
  # Run the HTTP server
  ojaledger serve

  # Inspect a trader's ledger
  ojaledger ledger list --owner trader-17

  # Remove a mistaken record, or everything from a bad day
  ojaledger ledger delete --owner trader-17 <id>
  ojaledger ledger delete-day --owner trader-17 2026-03-10`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// GetConfig returns the global configuration, or the deferred load error.
func GetConfig() (*config.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose reports whether --verbose was given.
func IsVerbose() bool {
	return verbose
}
