package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Swoyesh/FinSense/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagEnvFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "finsense",
	Short: "Monthly budget forecaster",
	Long: "Forecast next month's spending per category from a categorized statement\n" +
		"and trim it to fit income minus savings.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadEnv()
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file loaded before reading config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
}

// loadEnv reads the env file when it exists. Variables already set win.
func loadEnv() error {
	if flagEnvFile == "" {
		return nil
	}
	if _, err := os.Stat(flagEnvFile); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(flagEnvFile); err != nil {
		return fmt.Errorf("loading %s: %w", flagEnvFile, err)
	}
	return nil
}

// setupLogger installs a text slog handler on stderr as the default logger.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Server.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
