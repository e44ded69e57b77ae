package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"property-estimator/domain"
	"property-estimator/estimator"
	"property-estimator/logger"
)

// ErrNoEligibleTerm is returned when every term in range exceeds the
// requested monthly payment ceiling.
var ErrNoEligibleTerm = errors.New("no term in range keeps the monthly payment under the requested maximum")

type TermComparisonService struct {
	estimates *EstimateService
	log       zerolog.Logger
}

func NewTermComparisonService(estimates *EstimateService, log zerolog.Logger) *TermComparisonService {
	return &TermComparisonService{
		estimates: estimates,
		log:       logger.Scope(log, "term_comparison"),
	}
}

// CompareTerms evaluates every mortgage term in range and ranks them by the
// caller's preference.
func (s *TermComparisonService) CompareTerms(
	ctx context.Context,
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if input.Preference == "" {
		input.Preference = PreferenceBalanced
	}
	if err := validateComparison(input); err != nil {
		return domain.TermComparisonResult{}, err
	}

	options := make([]domain.TermOption, 0, input.MaxTermYears-input.MinTermYears+1)
	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		result, err := s.estimates.Mortgage(ctx, domain.MortgageInput{
			PropertyPrice:   input.PropertyPrice,
			DepositRatioPct: input.DepositRatioPct,
			AnnualRatePct:   input.AnnualRatePct,
			TermYears:       term,
		})
		if err != nil {
			// Inputs are identical across terms, so the first failure applies to all.
			return domain.TermComparisonResult{}, err
		}

		if input.MaxMonthlyPayment > 0 && result.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
			Reason:         reasonFor(input.Preference),
		})
	}

	if len(options) == 0 {
		s.log.Debug().
			Float64("max_monthly_payment", input.MaxMonthlyPayment).
			Int("min_term_years", input.MinTermYears).
			Int("max_term_years", input.MaxTermYears).
			Msg("no eligible term")
		return domain.TermComparisonResult{}, ErrNoEligibleTerm
	}

	scoreOptions(options, input.Preference)

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Score != options[j].Score {
			return options[i].Score > options[j].Score
		}
		return options[i].TermYears < options[j].TermYears
	})
	for i := range options {
		options[i].Score = roundTo2Decimals(options[i].Score)
	}

	return domain.TermComparisonResult{
		RecommendedTermYears: options[0].TermYears,
		Options:              options,
	}, nil
}

func validateComparison(input domain.TermComparisonInput) error {
	if input.MinTermYears <= 0 {
		return estimator.Invalid("min_term_years", "must be greater than zero")
	}
	if input.MaxTermYears < input.MinTermYears {
		return estimator.Invalid("max_term_years", "must not be less than min_term_years")
	}
	if input.MaxTermYears > MaxTermYears {
		return estimator.Invalid("max_term_years", "exceeds the maximum of %d years", MaxTermYears)
	}
	if input.MaxMonthlyPayment < 0 {
		return estimator.Invalid("max_monthly_payment", "must not be negative")
	}
	switch input.Preference {
	case PreferenceMinimizeInterest, PreferenceMinimizePayment, PreferenceBalanced:
	default:
		return estimator.Invalid("preference", "unknown preference %q", input.Preference)
	}
	return nil
}

// scoreOptions normalizes interest and payment across the candidates onto a
// 0-10 scale and weights them by preference.
func scoreOptions(options []domain.TermOption, preference string) {
	minInterest, maxInterest := options[0].TotalInterest, options[0].TotalInterest
	minPayment, maxPayment := options[0].MonthlyPayment, options[0].MonthlyPayment
	for _, o := range options[1:] {
		minInterest = min(minInterest, o.TotalInterest)
		maxInterest = max(maxInterest, o.TotalInterest)
		minPayment = min(minPayment, o.MonthlyPayment)
		maxPayment = max(maxPayment, o.MonthlyPayment)
	}

	interestWeight, paymentWeight := 0.5, 0.5
	switch preference {
	case PreferenceMinimizeInterest:
		interestWeight, paymentWeight = 0.8, 0.2
	case PreferenceMinimizePayment:
		interestWeight, paymentWeight = 0.2, 0.8
	}

	for i := range options {
		interestScore := normalized(options[i].TotalInterest, minInterest, maxInterest)
		paymentScore := normalized(options[i].MonthlyPayment, minPayment, maxPayment)
		options[i].Score = interestWeight*interestScore + paymentWeight*paymentScore
	}
}

// normalized maps v onto 10 (best, lowest) .. 0 (worst, highest).
func normalized(v, lo, hi float64) float64 {
	if hi <= lo {
		return 10
	}
	return 10 * (hi - v) / (hi - lo)
}

func reasonFor(preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return "Term optimized to minimize total interest"
	case PreferenceMinimizePayment:
		return "Term optimized to minimize the monthly payment"
	default:
		return "Balance between monthly payment and total interest"
	}
}
