package domain

type AppreciationInput struct {
	PurchasePrice         float64 `json:"purchase_price"`
	HoldingPeriodYears    int     `json:"holding_period_years"`
	AnnualAppreciationPct float64 `json:"annual_appreciation_pct"`
}

// AppreciationResult is the ROI calculator output. TotalReturnPct is the
// projected value as a whole percentage of the purchase price (130 means the
// asset is worth 130% of what was paid), not the profit.
type AppreciationResult struct {
	TotalReturnPct        int     `json:"total_return_pct"`
	AnnualAppreciationPct float64 `json:"annual_appreciation_pct"`
	ProjectedValue        float64 `json:"projected_value"`
	Gain                  float64 `json:"gain"`
}
