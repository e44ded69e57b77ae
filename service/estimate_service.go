package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"property-estimator/domain"
	"property-estimator/estimator"
	"property-estimator/logger"
	"property-estimator/repository"
)

// roundTo2Decimals rounds a float64 to cents
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type EstimateService struct {
	estimator *estimator.Estimator
	cache     repository.CacheRepository
	log       zerolog.Logger
}

// NewEstimateService creates an EstimateService backed by the given cache.
func NewEstimateService(
	est *estimator.Estimator,
	cache repository.CacheRepository,
	log zerolog.Logger,
) *EstimateService {
	return &EstimateService{
		estimator: est,
		cache:     cache,
		log:       logger.Scope(log, "estimate"),
	}
}

// Defaults exposes the configured widget constants.
func (s *EstimateService) Defaults() estimator.Config {
	return s.estimator.Config()
}

// Appreciation projects compound growth for the ROI calculator.
func (s *EstimateService) Appreciation(
	ctx context.Context,
	input domain.AppreciationInput,
) (domain.AppreciationResult, error) {

	if input.PurchasePrice > MaxPropertyPrice {
		return domain.AppreciationResult{}, estimator.Invalid("purchase_price", "exceeds the maximum of %.2f", MaxPropertyPrice)
	}
	if input.HoldingPeriodYears > MaxHoldingPeriodYears {
		return domain.AppreciationResult{}, estimator.Invalid("holding_period_years", "exceeds the maximum of %d", MaxHoldingPeriodYears)
	}
	if input.AnnualAppreciationPct > MaxAnnualRatePct || input.AnnualAppreciationPct < MinAppreciationPct {
		return domain.AppreciationResult{}, estimator.Invalid("annual_appreciation_pct", "must be between %.0f and %.0f", MinAppreciationPct, MaxAnnualRatePct)
	}

	key := cacheKey("appreciation", input)
	var result domain.AppreciationResult
	if s.lookup(ctx, key, &result) {
		return result, nil
	}

	result, err := estimator.AppreciationEstimate(
		input.PurchasePrice,
		input.HoldingPeriodYears,
		input.AnnualAppreciationPct,
	)
	if err != nil {
		return domain.AppreciationResult{}, err
	}

	result.ProjectedValue = roundTo2Decimals(result.ProjectedValue)
	result.Gain = roundTo2Decimals(result.Gain)

	s.store(ctx, key, result)
	return result, nil
}

// Mortgage computes the fixed monthly payment for the mortgage widget.
func (s *EstimateService) Mortgage(
	ctx context.Context,
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	if err := checkMortgageCeilings(input); err != nil {
		return domain.MortgageResult{}, err
	}

	key := cacheKey("mortgage", input)
	var result domain.MortgageResult
	if s.lookup(ctx, key, &result) {
		return result, nil
	}

	result, err := estimator.MortgagePaymentEstimate(
		input.PropertyPrice,
		input.DepositRatioPct,
		input.AnnualRatePct,
		input.TermYears,
	)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	result = domain.MortgageResult{
		MonthlyPayment: roundTo2Decimals(result.MonthlyPayment),
		Principal:      roundTo2Decimals(result.Principal),
		Deposit:        roundTo2Decimals(result.Deposit),
		TotalPayment:   roundTo2Decimals(result.TotalPayment),
		TotalInterest:  roundTo2Decimals(result.TotalInterest),
	}

	s.store(ctx, key, result)
	return result, nil
}

// Schedule returns the yearly amortization breakdown of the mortgage.
func (s *EstimateService) Schedule(
	ctx context.Context,
	input domain.MortgageInput,
) ([]domain.AmortizationYear, error) {

	if err := checkMortgageCeilings(input); err != nil {
		return nil, err
	}

	key := cacheKey("schedule", input)
	var rows []domain.AmortizationYear
	if s.lookup(ctx, key, &rows) {
		return rows, nil
	}

	rows, err := estimator.AmortizationSchedule(
		input.PropertyPrice,
		input.DepositRatioPct,
		input.AnnualRatePct,
		input.TermYears,
	)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, rows)
	return rows, nil
}

func checkMortgageCeilings(input domain.MortgageInput) error {
	if input.PropertyPrice > MaxPropertyPrice {
		return estimator.Invalid("property_price", "exceeds the maximum of %.2f", MaxPropertyPrice)
	}
	if input.AnnualRatePct > MaxAnnualRatePct {
		return estimator.Invalid("annual_rate_pct", "exceeds the maximum of %.2f%%", MaxAnnualRatePct)
	}
	if input.TermYears > MaxTermYears {
		return estimator.Invalid("term_years", "exceeds the maximum of %d years", MaxTermYears)
	}
	return nil
}

// cacheKey hashes the canonical form of an input. Results are pure functions
// of their input, so a hit is always valid.
func cacheKey(kind string, input any) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%s|%+v", kind, input))
	return kind + ":" + strconv.FormatUint(sum, 16)
}

// Cache failures are not critical: the result is simply recomputed.
func (s *EstimateService) lookup(ctx context.Context, key string, dst any) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		return false
	}
	s.log.Debug().Str("key", key).Msg("cache hit")
	return true
}

func (s *EstimateService) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to write cache entry")
	}
}
