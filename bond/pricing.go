package bond

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PriceResult splits a valuation into its quoted and accrued parts.
// CleanPrice is always DirtyPrice - AccruedInterest.
type PriceResult struct {
	DirtyPrice      float64
	AccruedInterest float64
	CleanPrice      float64
}

// Price discounts the cash flow schedule at the per-period yield y.
//
// On a coupon date each payment i is discounted by (1+y)^i and no interest
// has accrued. Mid-period the exponents shift by the elapsed fraction t/T
// and the first upcoming coupon accrues pro rata.
func Price(p PeriodInfo, flows []CashFlow, y float64) (PriceResult, error) {
	if y <= -1 {
		return PriceResult{}, &DomainError{Reason: fmt.Sprintf("period yield must be above -1, got %g", y)}
	}
	if len(flows) == 0 {
		return PriceResult{}, &ConfigurationError{Reason: "no cash flows to price"}
	}

	dirty := floats.Sum(discountTerms(p, flows, y))

	accrued := 0.0
	if !p.OnCoupon() {
		accrued = flows[0].Coupon * p.AccruedFraction()
	}

	return PriceResult{
		DirtyPrice:      dirty,
		AccruedInterest: accrued,
		CleanPrice:      dirty - accrued,
	}, nil
}

// discountTerms returns the present value of each cash flow at yield y.
func discountTerms(p PeriodInfo, flows []CashFlow, y float64) []float64 {
	shift := 0.0
	if !p.OnCoupon() {
		shift = p.AccruedFraction()
	}

	terms := make([]float64, len(flows))
	for i, cf := range flows {
		terms[i] = cf.Amount() / math.Pow(1+y, float64(cf.Period)-shift)
	}
	return terms
}

// SimplePrice is the closed-form price of a constant-coupon bond on a
// coupon date: an n-period annuity of pmt plus the face value repaid at
// maturity. It agrees with the summation in Price for constant coupons
// when PeriodInfo.OnCoupon holds.
func SimplePrice(pmt, face, y float64, n int) (float64, error) {
	if y <= -1 {
		return 0, &DomainError{Reason: fmt.Sprintf("period yield must be above -1, got %g", y)}
	}
	if y == 0 {
		return pmt*float64(n) + face, nil
	}
	g := math.Pow(1+y, -float64(n))
	return pmt/y*(1-g) + face*g, nil
}

// ApproximateYield estimates the per-period yield for an observed dirty
// price without iteration:
//
//	AY = (pmt + (face-price)/n) / ((price+face)/2)
//
// It is a cheap starting point for SolveYield, not a substitute for it.
func ApproximateYield(price, face, pmt float64, n int) (float64, error) {
	if face <= 0 {
		return 0, &DomainError{Reason: fmt.Sprintf("face value must be positive, got %g", face)}
	}
	if price <= 0 {
		return 0, &DomainError{Reason: fmt.Sprintf("price must be positive, got %g", price)}
	}
	if n < 1 {
		return 0, &DomainError{Reason: fmt.Sprintf("period count must be at least 1, got %d", n)}
	}
	return (pmt + (face-price)/float64(n)) / ((price + face) / 2), nil
}
