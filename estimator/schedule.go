package estimator

import (
	"github.com/shopspring/decimal"

	"property-estimator/domain"
)

const cents int32 = 2

// AmortizationSchedule breaks the loan down per year. Balances are tracked in
// cents; the last payment absorbs rounding so the loan closes at exactly zero.
func AmortizationSchedule(
	propertyPrice float64,
	depositRatioPct float64,
	annualRatePct float64,
	termYears int,
) ([]domain.AmortizationYear, error) {

	if termYears > MaxScheduleTermYears {
		return nil, Invalid("term_years", "schedule is limited to %d years", MaxScheduleTermYears)
	}

	est, err := MortgagePaymentEstimate(propertyPrice, depositRatioPct, annualRatePct, termYears)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.AmortizationYear, 0, termYears)
	if est.Principal == 0 {
		return rows, nil
	}

	balance := decimal.NewFromFloat(est.Principal).Round(cents)
	payment := decimal.NewFromFloat(est.MonthlyPayment).Round(cents)
	monthlyRate := decimal.NewFromFloat(annualRatePct).
		Div(decimal.NewFromFloat(PercentageMultiplier)).
		Div(decimal.NewFromInt(MonthsPerYear))

	var yearPrincipal, yearInterest decimal.Decimal
	months := termYears * MonthsPerYear

	for month := 1; month <= months; month++ {
		interest := balance.Mul(monthlyRate).Round(cents)
		principalPart := payment.Sub(interest)
		if month == months || principalPart.GreaterThan(balance) {
			principalPart = balance
		}
		if principalPart.IsNegative() {
			principalPart = decimal.Zero
		}

		balance = balance.Sub(principalPart)
		yearPrincipal = yearPrincipal.Add(principalPart)
		yearInterest = yearInterest.Add(interest)

		if month%MonthsPerYear == 0 {
			rows = append(rows, domain.AmortizationYear{
				Year:          month / MonthsPerYear,
				PrincipalPaid: yearPrincipal.InexactFloat64(),
				InterestPaid:  yearInterest.InexactFloat64(),
				EndingBalance: balance.InexactFloat64(),
			})
			yearPrincipal = decimal.Zero
			yearInterest = decimal.Zero
		}
	}

	return rows, nil
}
