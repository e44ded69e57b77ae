package estimator

const (
	MonthsPerYear        = 12
	PercentageMultiplier = 100.0

	DefaultAnnualRatePct   = 6.14
	DefaultTermYears       = 30
	DefaultAppreciationPct = 5.2

	// MaxScheduleTermYears bounds the rows AmortizationSchedule will build.
	MaxScheduleTermYears = 100
)

// Above 2^53 a float64 no longer holds every integer, so the rounded
// percentage would be meaningless before it ever reached int range.
const maxTotalReturnPct = 1 << 53
