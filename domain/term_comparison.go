package domain

type TermComparisonInput struct {
	PropertyPrice     float64 `json:"property_price"`
	DepositRatioPct   float64 `json:"deposit_ratio_pct"`
	AnnualRatePct     float64 `json:"annual_rate_pct"`
	MinTermYears      int     `json:"min_term_years"`
	MaxTermYears      int     `json:"max_term_years"`
	MaxMonthlyPayment float64 `json:"max_monthly_payment,omitempty"` // 0 means no ceiling
	Preference        string  `json:"preference"`                    // "minimize_interest", "minimize_payment", "balanced"
}

type TermOption struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermComparisonResult struct {
	RecommendedTermYears int          `json:"recommended_term_years"`
	Options              []TermOption `json:"options"`
}
