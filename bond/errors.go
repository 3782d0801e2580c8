package bond

import "fmt"

// ConfigurationError reports a malformed bond definition: dates out of
// order, a non-positive frequency, or a coupon series that does not cover
// every remaining period.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "bond: " + e.Reason
}

// DomainError reports a numerically invalid pricing input, such as a period
// yield at or below -1 or a non-positive face value.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "bond: " + e.Reason
}

// ConvergenceError reports that the yield solver stopped without meeting
// tolerance. It carries the last iterate and its residual for diagnostics.
type ConvergenceError struct {
	Reason     string
	Iterations int
	LastYield  float64
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("bond: yield solver %s after %d iterations (last yield %.6g, residual %.6g)",
		e.Reason, e.Iterations, e.LastYield, e.Residual)
}

var (
	// ErrYieldNotProvided is returned by price calculations on a bond whose
	// terms did not include a yield.
	ErrYieldNotProvided = &ConfigurationError{Reason: "yield not provided"}
)
