// Package regression fits a straight line y = intercept + slope*x to a point
// set by batch gradient descent on the sum of squared errors.
//
// # Loss and gradient
//
// For parameters (a, b) and points (xᵢ, yᵢ):
//
//	residualᵢ = yᵢ - a - b*xᵢ
//	Loss      = Σ residualᵢ²
//	∂Loss/∂a  = Σ -2*residualᵢ
//	∂Loss/∂b  = Σ -2*xᵢ*residualᵢ
//
// Both partial derivatives come from the single PartialDerivative formula,
// selected by a Target.
//
// # Fitting
//
// Fit runs a fixed number of descent steps (100000 by default) with a fixed
// learning rate (0.001 by default). It never stops early: every step reads the
// full gradient at the current parameters, then moves both parameters against
// it. An empty point set yields a zero gradient, so the parameters do not move
// but the step count is still reported in full.
//
//	params := regression.DefaultParameters() // intercept 0, slope 1
//	res, err := regression.Fit(points, &params,
//	    regression.WithLearningRate(0.001),
//	    regression.WithMaxSteps(100000),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Steps, params, regression.Loss(points, params))
//
// Nothing is printed or logged unless the caller passes WithProgress or
// WithLogger.
//
// # Numeric behavior
//
// Overflow is not an error: extreme inputs or an oversized learning rate can
// drive the loss, gradient and parameters to ±Inf or NaN, and those values
// propagate. Parameters.IsFinite lets callers detect it.
//
// LeastSquares gives the closed-form solution for comparison, and Summarize
// reports loss, R² and RMSE for any parameters.
package regression
