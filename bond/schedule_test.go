package bond

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCashFlowsConstant(t *testing.T) {
	flows, err := BuildCashFlows(100, RateOf(8), 2, 4)
	require.NoError(t, err)
	require.Len(t, flows, 4)

	for i, cf := range flows {
		assert.Equal(t, i+1, cf.Period)
		assert.InDelta(t, 4.0, cf.Coupon, 1e-12)
	}

	assert.Zero(t, flows[0].Principal)
	assert.Zero(t, flows[2].Principal)
	assert.InDelta(t, 100.0, flows[3].Principal, 1e-12)
	assert.InDelta(t, 104.0, flows[3].Amount(), 1e-12)
}

func TestBuildCashFlowsSeries(t *testing.T) {
	flows, err := BuildCashFlows(100, RateSeries([]float64{6, 7, 8}), 2, 3)
	require.NoError(t, err)
	require.Len(t, flows, 3)

	assert.InDelta(t, 3.0, flows[0].Coupon, 1e-12)
	assert.InDelta(t, 3.5, flows[1].Coupon, 1e-12)
	assert.InDelta(t, 4.0, flows[2].Coupon, 1e-12)
	assert.InDelta(t, 104.0, flows[2].Amount(), 1e-12)
}

func TestBuildCashFlowsSeriesTooShort(t *testing.T) {
	_, err := BuildCashFlows(100, RateSeries([]float64{8, 8}), 2, 3)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Reason, "coupon series shorter than period count")
}

func TestBuildCashFlowsInvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		face      float64
		rate      Rate
		frequency int
		n         int
	}{
		{name: "zero face", face: 0, rate: RateOf(8), frequency: 2, n: 4},
		{name: "negative face", face: -100, rate: RateOf(8), frequency: 2, n: 4},
		{name: "zero frequency", face: 100, rate: RateOf(8), frequency: 0, n: 4},
		{name: "zero periods", face: 100, rate: RateOf(8), frequency: 2, n: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCashFlows(tt.face, tt.rate, tt.frequency, tt.n)
			require.Error(t, err)

			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestRateConstant(t *testing.T) {
	assert.True(t, RateOf(8).Constant())
	assert.True(t, RateSeries([]float64{8, 8, 8}).Constant())
	assert.False(t, RateSeries([]float64{6, 7, 8}).Constant())
}

func TestRateSeriesCopies(t *testing.T) {
	src := []float64{6, 7, 8}
	r := RateSeries(src)
	src[0] = 99

	assert.InDelta(t, 0.06, r.annual(1), 1e-12)
}
