package bond

import "fmt"

// Rate is an annual coupon rate in percentage units (8 means 8%): either a
// single rate applied to every period or a per-period series.
type Rate struct {
	scalar float64
	series []float64
}

// RateOf returns a constant annual coupon rate.
func RateOf(pct float64) Rate {
	return Rate{scalar: pct}
}

// RateSeries returns a per-period annual rate series; entry i applies to
// coupon period i+1. The series must cover every remaining period.
func RateSeries(pcts []float64) Rate {
	s := make([]float64, len(pcts))
	copy(s, pcts)
	return Rate{series: s}
}

// Constant reports whether every period carries the same rate.
func (r Rate) Constant() bool {
	for _, p := range r.series {
		if p != r.series[0] {
			return false
		}
	}
	return true
}

// annual returns the fractional annual rate for 1-based period i.
func (r Rate) annual(i int) float64 {
	if r.series != nil {
		return r.series[i-1] / 100
	}
	return r.scalar / 100
}

// CashFlow is one scheduled payment. Principal is the face value on the
// final payment and zero before it.
type CashFlow struct {
	Period    int
	Coupon    float64
	Principal float64
}

func (c CashFlow) Amount() float64 {
	return c.Coupon + c.Principal
}

// BuildCashFlows expands face value and coupon rate into the n remaining
// payments. The final payment redeems the face value at par.
func BuildCashFlows(face float64, rate Rate, frequency, n int) ([]CashFlow, error) {
	if face <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("face value must be positive, got %g", face)}
	}
	if frequency < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("frequency must be at least 1, got %d", frequency)}
	}
	if n < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("period count must be at least 1, got %d", n)}
	}
	if rate.series != nil && len(rate.series) < n {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("coupon series shorter than period count: %d < %d", len(rate.series), n),
		}
	}

	flows := make([]CashFlow, n)
	for i := 1; i <= n; i++ {
		cf := CashFlow{
			Period: i,
			Coupon: rate.annual(i) / float64(frequency) * face,
		}
		if i == n {
			cf.Principal = face
		}
		flows[i-1] = cf
	}
	return flows, nil
}
