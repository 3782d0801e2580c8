// Package bond prices coupon-bearing bonds and solves for their yield to
// maturity. All computations are pure functions over immutable inputs, so
// independent bonds can be valued concurrently without coordination.
package bond

import (
	"fmt"
	"time"
)

// Terms defines a coupon bond as supplied by the caller. Coupon and yield
// are in percentage units (8 means 8%); the constructor converts them to
// fractions internally.
type Terms struct {
	TransactionDate time.Time
	MaturityDate    time.Time
	FaceValue       float64
	CouponRate      Rate
	Frequency       int
	Convention      Convention

	// AnnualYield is the annual yield in percent. Leave nil when unknown;
	// price calls that need it report ErrYieldNotProvided.
	AnnualYield *float64
}

// Bond is an immutable coupon bond. Its period layout and cash flow
// schedule are derived once at construction and never change.
type Bond struct {
	terms  Terms
	period PeriodInfo
	flows  []CashFlow
}

// New validates terms and derives the bond's period layout and cash flows.
func New(terms Terms) (*Bond, error) {
	if terms.FaceValue <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("face value must be positive, got %g", terms.FaceValue)}
	}

	period, err := ComputePeriod(terms.Convention, terms.TransactionDate, terms.MaturityDate, terms.Frequency)
	if err != nil {
		return nil, err
	}

	flows, err := BuildCashFlows(terms.FaceValue, terms.CouponRate, terms.Frequency, period.Periods)
	if err != nil {
		return nil, err
	}

	if terms.AnnualYield != nil {
		y := *terms.AnnualYield
		terms.AnnualYield = &y
	}

	return &Bond{terms: terms, period: period, flows: flows}, nil
}

// Period returns the derived coupon period layout for diagnostics.
func (b *Bond) Period() PeriodInfo {
	return b.period
}

// CashFlows returns a copy of the remaining payment schedule.
func (b *Bond) CashFlows() []CashFlow {
	out := make([]CashFlow, len(b.flows))
	copy(out, b.flows)
	return out
}

// HasYield reports whether a yield was supplied at construction.
func (b *Bond) HasYield() bool {
	return b.terms.AnnualYield != nil
}

// Price values the bond at the yield supplied in its terms.
func (b *Bond) Price() (PriceResult, error) {
	if b.terms.AnnualYield == nil {
		return PriceResult{}, ErrYieldNotProvided
	}
	return b.PriceAtYield(*b.terms.AnnualYield)
}

// PriceAtYield values the bond at an annual yield given in percent.
func (b *Bond) PriceAtYield(annualPct float64) (PriceResult, error) {
	y := annualPct / 100 / float64(b.terms.Frequency)
	return Price(b.period, b.flows, y)
}

// YieldToMaturity returns the annual yield, in percent, whose discounted
// cash flows reproduce the observed dirty price.
func (b *Bond) YieldToMaturity(observedPrice float64, opts ...SolveOption) (float64, error) {
	y, err := SolveYield(b.period, b.flows, observedPrice, opts...)
	if err != nil {
		return 0, err
	}
	return y * float64(b.terms.Frequency) * 100, nil
}

// ApproximateYield returns the closed-form annual yield estimate, in
// percent, for an observed dirty price.
func (b *Bond) ApproximateYield(observedPrice float64) (float64, error) {
	ay, err := ApproximateYield(observedPrice, b.terms.FaceValue, b.flows[0].Coupon, b.period.Periods)
	if err != nil {
		return 0, err
	}
	return ay * float64(b.terms.Frequency) * 100, nil
}
