package estimator

import (
	"math"

	"property-estimator/domain"
)

// AppreciationEstimate projects compound growth of a property over the holding
// period. The percentage does not depend on the purchase price; the price only
// feeds the projected value and gain shown next to it.
func AppreciationEstimate(
	purchasePrice float64,
	holdingPeriodYears int,
	annualAppreciationPct float64,
) (domain.AppreciationResult, error) {

	if err := requireFinite("purchase_price", purchasePrice); err != nil {
		return domain.AppreciationResult{}, err
	}
	if err := requireFinite("annual_appreciation_pct", annualAppreciationPct); err != nil {
		return domain.AppreciationResult{}, err
	}
	if holdingPeriodYears < 0 {
		return domain.AppreciationResult{}, invalid("holding_period_years", "must not be negative")
	}

	multiplier := math.Pow(1+annualAppreciationPct/PercentageMultiplier, float64(holdingPeriodYears))
	projected := purchasePrice * multiplier
	totalReturnPct := multiplier * PercentageMultiplier
	if !isFinite(projected) || !isFinite(totalReturnPct) || totalReturnPct >= maxTotalReturnPct {
		return domain.AppreciationResult{}, invalid("annual_appreciation_pct", "projection overflows")
	}

	return domain.AppreciationResult{
		TotalReturnPct:        roundHalfUp(totalReturnPct),
		AnnualAppreciationPct: annualAppreciationPct,
		ProjectedValue:        projected,
		Gain:                  projected - purchasePrice,
	}, nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
