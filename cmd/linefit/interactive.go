package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/linefit/console"
	"github.com/arloliu/linefit/internal/logger"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter points at a prompt and fit a line to them",
	Long: `Show a menu for entering coordinates one at a time. Choosing Finish, or
closing the input, fits a line to the entered points and prints the initial
and final parameters. Points listed in the configuration file are loaded
before the menu is shown.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	session, err := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
		console.WithSeed(cfg.Dataset()),
		console.WithInitial(cfg.Initial),
		console.WithFitOptions(cfg.FitOptions(logger.Default)...),
		console.WithLogger(logger.Default),
	)
	if err != nil {
		return err
	}

	report, err := session.Run()
	if err != nil {
		return err
	}
	if report != nil {
		logger.Debug("session finished", "points", len(report.Points), "steps", report.Steps)
	}

	return nil
}
