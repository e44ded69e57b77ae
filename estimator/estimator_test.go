package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultConfig(t *testing.T) {
	e, err := New(DefaultConfig())
	require.NoError(t, err)

	cfg := e.Config()
	assert.Equal(t, 6.14, cfg.DefaultAnnualRatePct)
	assert.Equal(t, 30, cfg.DefaultTermYears)
	assert.Equal(t, 5.2, cfg.DefaultAppreciationPct)
}

func TestNew_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative rate", Config{DefaultAnnualRatePct: -1, DefaultTermYears: 30, DefaultAppreciationPct: 5}},
		{"nan rate", Config{DefaultAnnualRatePct: math.NaN(), DefaultTermYears: 30, DefaultAppreciationPct: 5}},
		{"zero term", Config{DefaultAnnualRatePct: 6, DefaultTermYears: 0, DefaultAppreciationPct: 5}},
		{"infinite appreciation", Config{DefaultAnnualRatePct: 6, DefaultTermYears: 30, DefaultAppreciationPct: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.cfg)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEstimator_UsesConfiguredDefaults(t *testing.T) {
	e, err := New(Config{DefaultAnnualRatePct: 0, DefaultTermYears: 10, DefaultAppreciationPct: 10})
	require.NoError(t, err)

	appreciation, err := e.Appreciation(300_000, 1)
	require.NoError(t, err)
	assert.Equal(t, 110, appreciation.TotalReturnPct)
	assert.Equal(t, 10.0, appreciation.AnnualAppreciationPct)

	mortgage, err := e.Mortgage(240_000, 50)
	require.NoError(t, err)
	assert.Equal(t, 1_000.0, mortgage.MonthlyPayment)
}

func TestEstimator_MatchesPureFunctions(t *testing.T) {
	e, err := New(DefaultConfig())
	require.NoError(t, err)

	got, err := e.Mortgage(35_000_000, 20)
	require.NoError(t, err)
	want, err := MortgagePaymentEstimate(35_000_000, 20, DefaultAnnualRatePct, DefaultTermYears)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInvalidInputError_Message(t *testing.T) {
	err := Invalid("term_years", "exceeds the maximum of %d", 50)
	assert.EqualError(t, err, "invalid term_years: exceeds the maximum of 50")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
