package estimator

import (
	"math"

	"property-estimator/domain"
)

// MortgagePaymentEstimate computes the fixed monthly payment of a fully
// amortizing loan on the property price net of the deposit.
func MortgagePaymentEstimate(
	propertyPrice float64,
	depositRatioPct float64,
	annualRatePct float64,
	termYears int,
) (domain.MortgageResult, error) {

	if err := validateMortgage(propertyPrice, depositRatioPct, annualRatePct, termYears); err != nil {
		return domain.MortgageResult{}, err
	}

	principal := propertyPrice * (1 - depositRatioPct/PercentageMultiplier)
	result := domain.MortgageResult{
		Principal: principal,
		Deposit:   propertyPrice - principal,
	}

	// Full deposit: nothing to finance.
	if principal == 0 {
		return result, nil
	}

	n := float64(termYears) * MonthsPerYear
	r := annualRatePct / PercentageMultiplier / MonthsPerYear

	var payment float64
	if r == 0 {
		payment = principal / n
	} else {
		// r / (1 - (1+r)^-n), kept accurate for tiny r and huge n.
		payment = principal * r / -math.Expm1(-n*math.Log1p(r))
	}
	total := payment * n
	if !isFinite(payment) || !isFinite(total) {
		return domain.MortgageResult{}, invalid("annual_rate_pct", "payment overflows")
	}

	result.MonthlyPayment = payment
	result.TotalPayment = total
	result.TotalInterest = result.TotalPayment - principal

	return result, nil
}

func validateMortgage(
	propertyPrice float64,
	depositRatioPct float64,
	annualRatePct float64,
	termYears int,
) error {
	if err := requireFinite("property_price", propertyPrice); err != nil {
		return err
	}
	if propertyPrice <= 0 {
		return invalid("property_price", "must be greater than zero")
	}
	if err := requireFinite("deposit_ratio_pct", depositRatioPct); err != nil {
		return err
	}
	if depositRatioPct < 0 || depositRatioPct > 100 {
		return invalid("deposit_ratio_pct", "must be between 0 and 100")
	}
	if err := requireFinite("annual_rate_pct", annualRatePct); err != nil {
		return err
	}
	if annualRatePct < 0 {
		return invalid("annual_rate_pct", "must not be negative")
	}
	if termYears <= 0 {
		return invalid("term_years", "must be greater than zero")
	}
	return nil
}
