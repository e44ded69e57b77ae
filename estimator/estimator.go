// Package estimator holds the pure financial math behind the landing-page
// ROI calculator and mortgage estimator widgets.
package estimator

import "property-estimator/domain"

// Config carries the constants the widgets used to hard-code.
type Config struct {
	DefaultAnnualRatePct   float64
	DefaultTermYears       int
	DefaultAppreciationPct float64
}

func DefaultConfig() Config {
	return Config{
		DefaultAnnualRatePct:   DefaultAnnualRatePct,
		DefaultTermYears:       DefaultTermYears,
		DefaultAppreciationPct: DefaultAppreciationPct,
	}
}

func (c Config) Validate() error {
	if err := requireFinite("default_annual_rate_pct", c.DefaultAnnualRatePct); err != nil {
		return err
	}
	if c.DefaultAnnualRatePct < 0 {
		return invalid("default_annual_rate_pct", "must not be negative")
	}
	if c.DefaultTermYears <= 0 {
		return invalid("default_term_years", "must be greater than zero")
	}
	if err := requireFinite("default_appreciation_pct", c.DefaultAppreciationPct); err != nil {
		return err
	}
	return nil
}

// Estimator binds the pure functions to a fixed set of defaults. It is
// immutable and safe for concurrent use.
type Estimator struct {
	cfg Config
}

func New(cfg Config) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{cfg: cfg}, nil
}

func (e *Estimator) Config() Config {
	return e.cfg
}

// Appreciation runs AppreciationEstimate at the configured appreciation rate.
func (e *Estimator) Appreciation(
	purchasePrice float64,
	holdingPeriodYears int,
) (domain.AppreciationResult, error) {
	return AppreciationEstimate(purchasePrice, holdingPeriodYears, e.cfg.DefaultAppreciationPct)
}

// Mortgage runs MortgagePaymentEstimate at the configured rate and term.
func (e *Estimator) Mortgage(
	propertyPrice float64,
	depositRatioPct float64,
) (domain.MortgageResult, error) {
	return MortgagePaymentEstimate(
		propertyPrice,
		depositRatioPct,
		e.cfg.DefaultAnnualRatePct,
		e.cfg.DefaultTermYears,
	)
}
