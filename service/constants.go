package service

const (
	MaxPropertyPrice      = 1_000_000_000.0 // 1 billion
	MaxAnnualRatePct      = 1000.0          // 1000% a year
	MinAppreciationPct    = -100.0          // total loss in one year
	MaxTermYears          = 50
	MaxHoldingPeriodYears = 100

	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)
