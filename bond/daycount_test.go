package bond

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputePeriod(t *testing.T) {
	tests := []struct {
		name        string
		convention  Convention
		transaction time.Time
		maturity    time.Time
		frequency   int
		periods     int
		periodDays  float64
		accruedDays float64
		onCoupon    bool
	}{
		{
			name:        "semi-annual 30/360 mid period",
			convention:  Thirty360,
			transaction: date(2011, time.February, 14),
			maturity:    date(2020, time.November, 15),
			frequency:   2,
			periods:     20,
			periodDays:  180,
			accruedDays: 89,
		},
		{
			name:        "semi-annual 30/360 on coupon date",
			convention:  Thirty360,
			transaction: date(2011, time.May, 15),
			maturity:    date(2020, time.November, 15),
			frequency:   2,
			periods:     19,
			periodDays:  180,
			accruedDays: 180,
			onCoupon:    true,
		},
		{
			name:        "30/360 end of February counts as day 30",
			convention:  Thirty360,
			transaction: date(2011, time.February, 28),
			maturity:    date(2011, time.August, 31),
			frequency:   2,
			periods:     1,
			periodDays:  180,
			accruedDays: 180,
			onCoupon:    true,
		},
		{
			name:        "30/360 leap year February 29 counts as day 30",
			convention:  Thirty360,
			transaction: date(2012, time.February, 29),
			maturity:    date(2012, time.August, 31),
			frequency:   2,
			periods:     1,
			periodDays:  180,
			accruedDays: 180,
			onCoupon:    true,
		},
		{
			name:        "annual ACT/365 full leap year",
			convention:  Actual365,
			transaction: date(2024, time.January, 1),
			maturity:    date(2024, time.December, 31),
			frequency:   1,
			periods:     1,
			periodDays:  365,
			accruedDays: 365,
			onCoupon:    true,
		},
		{
			name:        "annual ACT/360 full leap year",
			convention:  Actual360,
			transaction: date(2024, time.January, 1),
			maturity:    date(2024, time.December, 31),
			frequency:   1,
			periods:     2,
			periodDays:  360,
			accruedDays: 355,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ComputePeriod(tt.convention, tt.transaction, tt.maturity, tt.frequency)
			require.NoError(t, err)

			assert.Equal(t, tt.periods, p.Periods)
			assert.InDelta(t, tt.periodDays, p.PeriodDays, 1e-12)
			assert.InDelta(t, tt.accruedDays, p.AccruedDays, 1e-12)
			assert.Equal(t, tt.onCoupon, p.OnCoupon())

			// t is always in (0, T].
			assert.Greater(t, p.AccruedDays, 0.0)
			assert.LessOrEqual(t, p.AccruedDays, p.PeriodDays)
		})
	}
}

func TestComputePeriodErrors(t *testing.T) {
	tests := []struct {
		name        string
		convention  Convention
		transaction time.Time
		maturity    time.Time
		frequency   int
	}{
		{
			name:        "maturity before transaction",
			convention:  Thirty360,
			transaction: date(2020, time.November, 15),
			maturity:    date(2011, time.February, 14),
			frequency:   2,
		},
		{
			name:        "maturity equals transaction",
			convention:  Thirty360,
			transaction: date(2020, time.November, 15),
			maturity:    date(2020, time.November, 15),
			frequency:   2,
		},
		{
			name:        "zero frequency",
			convention:  Thirty360,
			transaction: date(2011, time.February, 14),
			maturity:    date(2020, time.November, 15),
			frequency:   0,
		},
		{
			name:        "unknown convention",
			convention:  Convention("ACT/ACT"),
			transaction: date(2011, time.February, 14),
			maturity:    date(2020, time.November, 15),
			frequency:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputePeriod(tt.convention, tt.transaction, tt.maturity, tt.frequency)
			require.Error(t, err)

			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestAccruedFraction(t *testing.T) {
	p := PeriodInfo{Periods: 20, PeriodDays: 180, AccruedDays: 89}
	assert.InDelta(t, 89.0/180.0, p.AccruedFraction(), 1e-12)
	assert.False(t, p.OnCoupon())
}
