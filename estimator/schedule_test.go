package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizationSchedule_ClosesAtZero(t *testing.T) {
	rows, err := AmortizationSchedule(100_000, 20, 5, 15)
	require.NoError(t, err)
	require.Len(t, rows, 15)

	var principalPaid, interestPaid float64
	for i, row := range rows {
		assert.Equal(t, i+1, row.Year)
		principalPaid += row.PrincipalPaid
		interestPaid += row.InterestPaid
	}

	assert.Zero(t, rows[len(rows)-1].EndingBalance)
	assert.InDelta(t, 80_000, principalPaid, 0.01)
	// 632.63 * 180 - 80,000, give or take the final-payment adjustment
	assert.InDelta(t, 33_874.29, interestPaid, 5)
}

func TestAmortizationSchedule_BalanceDecreases(t *testing.T) {
	rows, err := AmortizationSchedule(35_000_000, 20, 6.14, 30)
	require.NoError(t, err)
	require.Len(t, rows, 30)

	previous := 28_000_000.0
	for _, row := range rows {
		assert.Less(t, row.EndingBalance, previous)
		previous = row.EndingBalance
	}
	// Principal share grows as the balance shrinks.
	assert.Greater(t, rows[29].PrincipalPaid, rows[0].PrincipalPaid)
	assert.Greater(t, rows[0].InterestPaid, rows[29].InterestPaid)
}

func TestAmortizationSchedule_ZeroInterest(t *testing.T) {
	rows, err := AmortizationSchedule(120_000, 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	for _, row := range rows {
		assert.InDelta(t, 12_000, row.PrincipalPaid, 0.01)
		assert.Zero(t, row.InterestPaid)
	}
	assert.Zero(t, rows[9].EndingBalance)
}

func TestAmortizationSchedule_FullDeposit(t *testing.T) {
	rows, err := AmortizationSchedule(500_000, 100, 6.14, 30)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAmortizationSchedule_InvalidInput(t *testing.T) {
	_, err := AmortizationSchedule(100_000, 50, -1, 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAmortizationSchedule_TermCap(t *testing.T) {
	rows, err := AmortizationSchedule(300_000, 20, 6.14, MaxScheduleTermYears)
	require.NoError(t, err)
	assert.Len(t, rows, MaxScheduleTermYears)

	for _, term := range []int{MaxScheduleTermYears + 1, math.MaxInt / 6} {
		_, err := AmortizationSchedule(300_000, 20, 6.14, term)
		require.ErrorIs(t, err, ErrInvalidInput, "term %d", term)

		var inputErr *InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "term_years", inputErr.Field)
	}
}
