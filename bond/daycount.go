package bond

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

// Convention selects the day count basis used to turn calendar dates into
// coupon periods.
type Convention string

const (
	Thirty360 Convention = "30/360"
	Actual365 Convention = "ACT/365"
	Actual360 Convention = "ACT/360"
)

func (c Convention) basis() (float64, error) {
	switch c {
	case Thirty360, Actual360:
		return 360, nil
	case Actual365:
		return 365, nil
	}
	return 0, &ConfigurationError{Reason: fmt.Sprintf("unknown day count convention %q", string(c))}
}

// PeriodInfo describes where the transaction date sits in the bond's coupon
// schedule.
//
//	Periods:     number of coupon payments remaining to maturity.
//	PeriodDays:  nominal days per coupon period under the convention.
//	AccruedDays: days elapsed since the last coupon date, in (0, PeriodDays].
//	             AccruedDays == PeriodDays means the transaction date falls
//	             exactly on a coupon date and nothing has accrued yet.
type PeriodInfo struct {
	Periods     int
	PeriodDays  float64
	AccruedDays float64
}

// OnCoupon reports whether the transaction date coincides with a coupon
// date. Pricing takes the no-accrual branch when it does.
func (p PeriodInfo) OnCoupon() bool {
	return scalar.EqualWithinAbs(p.AccruedDays, p.PeriodDays, 1e-9)
}

// AccruedFraction returns the elapsed share of the current coupon period.
func (p PeriodInfo) AccruedFraction() float64 {
	return p.AccruedDays / p.PeriodDays
}

// ComputePeriod derives the coupon period layout for a bond traded on
// transaction and maturing on maturity, paying frequency coupons per year.
// It is a pure function of its inputs.
func ComputePeriod(convention Convention, transaction, maturity time.Time, frequency int) (PeriodInfo, error) {
	if frequency < 1 {
		return PeriodInfo{}, &ConfigurationError{Reason: fmt.Sprintf("frequency must be at least 1, got %d", frequency)}
	}
	if !maturity.After(transaction) {
		return PeriodInfo{}, &ConfigurationError{
			Reason: fmt.Sprintf("maturity date %s must be after transaction date %s",
				maturity.Format("2006-01-02"), transaction.Format("2006-01-02")),
		}
	}

	basis, err := convention.basis()
	if err != nil {
		return PeriodInfo{}, err
	}

	var nDays float64
	if convention == Thirty360 {
		nDays = float64(days360(transaction, maturity))
	} else {
		nDays = math.Floor(maturity.Sub(transaction).Hours() / 24)
	}
	if nDays <= 0 {
		// 30/360 can normalize distinct end-of-month dates to the same day.
		return PeriodInfo{}, &ConfigurationError{
			Reason: fmt.Sprintf("no days between transaction and maturity under %s", convention),
		}
	}

	periodDays := basis / float64(frequency)
	accrued := periodDays - math.Mod(nDays, periodDays)

	return PeriodInfo{
		Periods:     int(math.Ceil(nDays / basis * float64(frequency))),
		PeriodDays:  periodDays,
		AccruedDays: accrued,
	}, nil
}

// days360 counts days between two dates on a 30/360 basis. A date on the
// last day of February counts as day 30, the maturity day is clamped to 30
// when both dates sit at month end, and a transaction day past 30 counts
// as 30.
func days360(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	if sm == time.February && sd == lastDayOfMonth(sy, sm) {
		sd = 30
	}
	if em == time.February && ed == lastDayOfMonth(ey, em) {
		ed = 30
	}
	if (sd == 30 || sd == 31) && ed == 31 {
		ed = 30
	}
	if sd > 30 {
		sd = 30
	}

	return 360*(ey-sy) + 30*(int(em)-int(sm)) + (ed - sd)
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
