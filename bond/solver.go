package bond

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	defaultGuess     = 0.05
	defaultMaxIter   = 300
	defaultTolerance = 1e-8
)

type solveConfig struct {
	guess      float64
	guessSet   bool
	maxIter    int
	tolerance  float64
	bestEffort bool
}

// SolveOption adjusts the yield solver.
type SolveOption func(*solveConfig)

// WithInitialGuess sets the starting per-period yield. Without it the
// solver starts at 0.05, or at firstCashFlow/observedPrice when that begins
// with a smaller residual.
func WithInitialGuess(y float64) SolveOption {
	return func(c *solveConfig) {
		c.guess = y
		c.guessSet = true
	}
}

// WithMaxIterations caps the number of Newton-Raphson steps.
func WithMaxIterations(n int) SolveOption {
	return func(c *solveConfig) { c.maxIter = n }
}

// WithTolerance sets the absolute price residual below which the solver
// accepts an iterate.
func WithTolerance(tol float64) SolveOption {
	return func(c *solveConfig) { c.tolerance = tol }
}

// WithBestEffort makes the solver return its last iterate instead of a
// ConvergenceError when it stops without meeting tolerance. Off by default:
// a non-converged yield is a failure unless the caller opts in.
func WithBestEffort() SolveOption {
	return func(c *solveConfig) { c.bestEffort = true }
}

// SolveYield finds the per-period yield at which the discounted cash flows
// reproduce observedPrice, a dirty price. It runs Newton-Raphson with the
// analytic derivative of the pricing function, mirroring Price exactly, so
// a solved yield prices back to observedPrice within tolerance.
//
// The result is a per-period fraction; annualizing it is the caller's step.
// Identical inputs always produce identical outputs.
func SolveYield(p PeriodInfo, flows []CashFlow, observedPrice float64, opts ...SolveOption) (float64, error) {
	if len(flows) == 0 {
		return 0, &ConfigurationError{Reason: "no cash flows to solve over"}
	}
	if observedPrice <= 0 {
		return 0, &DomainError{Reason: fmt.Sprintf("observed price must be positive, got %g", observedPrice)}
	}

	cfg := solveConfig{guess: defaultGuess, maxIter: defaultMaxIter, tolerance: defaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxIter < 1 {
		return 0, &ConfigurationError{Reason: fmt.Sprintf("max iterations must be at least 1, got %d", cfg.maxIter)}
	}
	if cfg.guess <= -1 {
		return 0, &DomainError{Reason: fmt.Sprintf("initial guess must be above -1, got %g", cfg.guess)}
	}

	residual := func(y float64) float64 {
		return floats.Sum(discountTerms(p, flows, y)) - observedPrice
	}

	y := cfg.guess
	if !cfg.guessSet {
		// Cheap refinement: the first cash flow over the price is a rough
		// running yield. Adopt it only when it starts closer to the root.
		if alt := flows[0].Amount() / observedPrice; alt > -1 && math.Abs(residual(alt)) < math.Abs(residual(y)) {
			y = alt
		}
	}

	for i := 0; i < cfg.maxIter; i++ {
		f := residual(y)
		if math.Abs(f) < cfg.tolerance {
			return y, nil
		}

		d := priceDerivative(p, flows, y)
		if math.Abs(d) < 1e-14 {
			if cfg.bestEffort {
				return y, nil
			}
			return 0, &ConvergenceError{Reason: "hit a vanishing derivative", Iterations: i, LastYield: y, Residual: f}
		}

		next := y - f/d
		if next <= -1 {
			// Step toward the -1 boundary instead of jumping past it.
			next = (y - 1) / 2
		}
		y = next
	}

	f := residual(y)
	if math.Abs(f) < cfg.tolerance {
		return y, nil
	}
	if cfg.bestEffort {
		return y, nil
	}
	return 0, &ConvergenceError{Reason: "did not converge", Iterations: cfg.maxIter, LastYield: y, Residual: f}
}

// priceDerivative returns d(dirty price)/dy at yield y.
func priceDerivative(p PeriodInfo, flows []CashFlow, y float64) float64 {
	shift := 0.0
	if !p.OnCoupon() {
		shift = p.AccruedFraction()
	}

	deriv := 0.0
	for _, cf := range flows {
		e := float64(cf.Period) - shift
		deriv += -e * cf.Amount() / math.Pow(1+y, e+1)
	}
	return deriv
}
