package domain

type MortgageInput struct {
	PropertyPrice   float64 `json:"property_price"`
	DepositRatioPct float64 `json:"deposit_ratio_pct"`
	AnnualRatePct   float64 `json:"annual_rate_pct"`
	TermYears       int     `json:"term_years"`
}

type MortgageResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	Principal      float64 `json:"principal"`
	Deposit        float64 `json:"deposit"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// AmortizationYear aggregates the twelve monthly payments of one loan year.
type AmortizationYear struct {
	Year          int     `json:"year"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	EndingBalance float64 `json:"ending_balance"`
}
