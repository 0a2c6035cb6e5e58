package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/linefit/config"
	"github.com/arloliu/linefit/internal/logger"
)

var (
	logLevel   string
	logFormat  string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "linefit",
	Short: "Fit a straight line to points by gradient descent",
	Long: `Fit y = intercept + slope*x to a set of points by minimizing the sum of
squared errors with fixed-step batch gradient descent.

Examples:
  linefit interactive                       # Enter points at a prompt
  linefit fit --data points.yaml --compare  # Fit a file and compare with least squares
  linefit encode --in points.yaml --out points.lfd`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !logger.ValidLevel(logLevel) {
			return fmt.Errorf("invalid --log-level %q (must be debug, info, warn, or error)", logLevel)
		}
		if logFormat != "text" && logFormat != "json" {
			return fmt.Errorf("invalid --log-format %q (must be text or json)", logFormat)
		}
		logger.SetDefault(newLogger(logLevel, cmd))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log format: text, json")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML run configuration")
}

// loadConfig returns the configuration named by --config, or the defaults.
// An explicit --log-level wins over the file's log_level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if !cmd.Flags().Changed("log-level") {
		logger.SetDefault(newLogger(cfg.LogLevel, cmd))
	}
	logger.Debug("configuration loaded", "path", configPath)

	return cfg, nil
}

// newLogger builds a stderr logger in the --log-format format.
func newLogger(level string, cmd *cobra.Command) *slog.Logger {
	if logFormat == "json" {
		return logger.New(level, cmd.ErrOrStderr())
	}

	return logger.NewText(level, cmd.ErrOrStderr())
}
