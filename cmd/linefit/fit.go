package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/arloliu/linefit/console"
	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/internal/logger"
	"github.com/arloliu/linefit/regression"
)

var (
	fitData    string
	fitCompare bool
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a line to a dataset file",
	Long: `Load a dataset and fit a line to it with the configured learning rate and
step count.

The dataset is either a YAML point list (.yaml, .yml) or a binary dataset
blob written by "linefit encode".

Examples:
  linefit fit --data points.yaml
  linefit fit --data points.lfd --config linefit.yaml --compare`,
	Args: cobra.NoArgs,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringVar(&fitData, "data", "",
		"Dataset file (.yaml/.yml point list or binary blob)")
	fitCmd.Flags().BoolVar(&fitCompare, "compare", false,
		"Also print the closed-form least-squares line")
	_ = fitCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	points, err := dataset.LoadFile(fitData)
	if err != nil {
		return err
	}
	log := logger.With("dataset", fitData)
	log.Info("dataset loaded",
		"points", len(points),
		"fingerprint", fmt.Sprintf("%016x", dataset.Fingerprint(points)),
	)

	params := cfg.Initial
	initialLoss := regression.Loss(points, params)

	res, err := regression.Fit(points, &params, cfg.FitOptions(log)...)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	if !params.IsFinite() {
		log.Warn("fit diverged, try a smaller learning_rate", "intercept", params.Intercept, "slope", params.Slope)
	}

	out := cmd.OutOrStdout()
	summary := regression.Summarize(points, params)
	shown := params.Rounded(6)
	fmt.Fprintf(out, "Points: %d\n", len(points))
	fmt.Fprintf(out, "Initial intercept: %s\nInitial slope: %s\nInitial error: %s\n",
		console.FormatNumber(cfg.Initial.Intercept), console.FormatNumber(cfg.Initial.Slope),
		console.FormatNumber(initialLoss))
	fmt.Fprintf(out, "The number of steps was %d\n", res.Steps)
	fmt.Fprintf(out, "Final intercept: %s\nFinal slope: %s\nFinal error: %s\n",
		console.FormatNumber(shown.Intercept), console.FormatNumber(shown.Slope),
		console.FormatNumber(summary.Loss))
	fmt.Fprintf(out, "R²: %.6f\nRMSE: %.6f\n", summary.RSquared, summary.RMSE)

	if fitCompare {
		printComparison(out, points, params)
	}

	return nil
}

func printComparison(out io.Writer, points dataset.Points, fitted regression.Parameters) {
	exact, err := regression.LeastSquares(points)
	if err != nil {
		fmt.Fprintf(out, "Least squares: undefined (%v)\n", err)
		return
	}

	shown := exact.Rounded(6)
	fmt.Fprintf(out, "Least squares intercept: %s\nLeast squares slope: %s\nLeast squares error: %s\n",
		console.FormatNumber(shown.Intercept), console.FormatNumber(shown.Slope),
		console.FormatNumber(regression.Loss(points, exact)))
	fmt.Fprintf(out, "Max parameter gap: %g\n", max(
		math.Abs(exact.Intercept-fitted.Intercept),
		math.Abs(exact.Slope-fitted.Slope),
	))
}
