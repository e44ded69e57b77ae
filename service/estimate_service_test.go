package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-estimator/domain"
	"property-estimator/estimator"
	"property-estimator/repository"
)

type MockCache struct {
	Data      map[string]string
	Gets      int
	Hits      int
	Sets      int
	ForceFail bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.Gets++
	val, ok := m.Data[key]
	if ok {
		m.Hits++
	}
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.Sets++
	if m.ForceFail {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}

func newTestService(t *testing.T, cache repository.CacheRepository) *EstimateService {
	t.Helper()
	est, err := estimator.New(estimator.DefaultConfig())
	require.NoError(t, err)
	return NewEstimateService(est, cache, zerolog.New(io.Discard))
}

func TestEstimateService_Mortgage(t *testing.T) {
	service := newTestService(t, NewMockCache())

	result, err := service.Mortgage(context.Background(), domain.MortgageInput{
		PropertyPrice:   35_000_000,
		DepositRatioPct: 20,
		AnnualRatePct:   6.14,
		TermYears:       30,
	})
	require.NoError(t, err)

	assert.Equal(t, 170_402.65, result.MonthlyPayment)
	assert.Equal(t, 28_000_000.0, result.Principal)
	assert.Equal(t, 7_000_000.0, result.Deposit)
}

func TestEstimateService_MortgageCachesResult(t *testing.T) {
	cache := NewMockCache()
	service := newTestService(t, cache)
	input := domain.MortgageInput{PropertyPrice: 900_000, DepositRatioPct: 25, AnnualRatePct: 6.14, TermYears: 30}

	first, err := service.Mortgage(context.Background(), input)
	require.NoError(t, err)
	second, err := service.Mortgage(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Sets)
	assert.Equal(t, 1, cache.Hits)
}

func TestEstimateService_CacheKeysDistinguishInputs(t *testing.T) {
	cache := NewMockCache()
	service := newTestService(t, cache)

	_, err := service.Mortgage(context.Background(), domain.MortgageInput{PropertyPrice: 900_000, DepositRatioPct: 25, AnnualRatePct: 6.14, TermYears: 30})
	require.NoError(t, err)
	_, err = service.Mortgage(context.Background(), domain.MortgageInput{PropertyPrice: 900_000, DepositRatioPct: 30, AnnualRatePct: 6.14, TermYears: 30})
	require.NoError(t, err)

	assert.Len(t, cache.Data, 2)
	assert.Zero(t, cache.Hits)
}

func TestEstimateService_CacheFailureIsNotCritical(t *testing.T) {
	cache := NewMockCache()
	cache.ForceFail = true
	service := newTestService(t, cache)

	result, err := service.Appreciation(context.Background(), domain.AppreciationInput{
		PurchasePrice:         500_000,
		HoldingPeriodYears:    5,
		AnnualAppreciationPct: 5.2,
	})
	require.NoError(t, err)
	assert.Equal(t, 129, result.TotalReturnPct)
	assert.Equal(t, 1, cache.Sets)
}

func TestEstimateService_CorruptCacheEntryIsRecomputed(t *testing.T) {
	cache := NewMockCache()
	service := newTestService(t, cache)
	input := domain.AppreciationInput{PurchasePrice: 500_000, HoldingPeriodYears: 5, AnnualAppreciationPct: 5.2}

	cache.Data[cacheKey("appreciation", input)] = "{not json"

	result, err := service.Appreciation(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 129, result.TotalReturnPct)
	assert.Equal(t, 644_241.51, result.ProjectedValue)
	assert.Equal(t, 144_241.51, result.Gain)
}

func TestEstimateService_Ceilings(t *testing.T) {
	service := newTestService(t, NewMockCache())
	ctx := context.Background()

	_, err := service.Mortgage(ctx, domain.MortgageInput{PropertyPrice: 2e9, DepositRatioPct: 20, AnnualRatePct: 6, TermYears: 30})
	assert.ErrorIs(t, err, estimator.ErrInvalidInput)

	_, err = service.Mortgage(ctx, domain.MortgageInput{PropertyPrice: 1e6, DepositRatioPct: 20, AnnualRatePct: 6, TermYears: 51})
	assert.ErrorIs(t, err, estimator.ErrInvalidInput)

	_, err = service.Mortgage(ctx, domain.MortgageInput{PropertyPrice: 1e6, DepositRatioPct: 20, AnnualRatePct: 1001, TermYears: 30})
	assert.ErrorIs(t, err, estimator.ErrInvalidInput)

	_, err = service.Appreciation(ctx, domain.AppreciationInput{PurchasePrice: 1e6, HoldingPeriodYears: 101, AnnualAppreciationPct: 5})
	assert.ErrorIs(t, err, estimator.ErrInvalidInput)

	_, err = service.Appreciation(ctx, domain.AppreciationInput{PurchasePrice: 1e6, HoldingPeriodYears: 10, AnnualAppreciationPct: -150})
	assert.ErrorIs(t, err, estimator.ErrInvalidInput)
}

func TestEstimateService_InvalidInputNotCached(t *testing.T) {
	cache := NewMockCache()
	service := newTestService(t, cache)

	_, err := service.Mortgage(context.Background(), domain.MortgageInput{PropertyPrice: 100_000, DepositRatioPct: 50, AnnualRatePct: -1, TermYears: 30})
	require.ErrorIs(t, err, estimator.ErrInvalidInput)
	assert.Zero(t, cache.Sets)
}

func TestEstimateService_Schedule(t *testing.T) {
	cache := NewMockCache()
	service := newTestService(t, cache)
	input := domain.MortgageInput{PropertyPrice: 100_000, DepositRatioPct: 20, AnnualRatePct: 5, TermYears: 15}

	rows, err := service.Schedule(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, rows, 15)
	assert.Zero(t, rows[14].EndingBalance)

	cached, err := service.Schedule(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, rows, cached)
	assert.Equal(t, 1, cache.Hits)
}

func TestEstimateService_Defaults(t *testing.T) {
	service := newTestService(t, NewMockCache())
	assert.Equal(t, estimator.DefaultConfig(), service.Defaults())
}
