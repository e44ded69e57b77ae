// Package view renders the landing-page calculator widgets. Slider state is
// owned here; every render re-runs the estimator with the current state.
package view

import (
	"math"
	"net/url"
	"strconv"
)

type SliderRange struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp snaps v to the nearest value the slider can produce.
func (s SliderRange) Clamp(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

var (
	PurchasePriceRange = SliderRange{Min: 300_000, Max: 2_000_000, Step: 50_000}
	HoldingPeriodRange = SliderRange{Min: 1, Max: 30, Step: 1}
	PropertyPriceRange = SliderRange{Min: 100_000, Max: 100_000_000, Step: 100_000}
	DepositRatioRange  = SliderRange{Min: 0, Max: 100, Step: 5}
)

type ROICalculatorState struct {
	PurchasePrice      float64
	HoldingPeriodYears int
}

func DefaultROICalculatorState() ROICalculatorState {
	return ROICalculatorState{PurchasePrice: 500_000, HoldingPeriodYears: 5}
}

func (s ROICalculatorState) Clamp() ROICalculatorState {
	s.PurchasePrice = PurchasePriceRange.Clamp(s.PurchasePrice)
	s.HoldingPeriodYears = int(HoldingPeriodRange.Clamp(float64(s.HoldingPeriodYears)))
	return s
}

// ParseROICalculatorState reads "price" and "years". Unparsable values keep
// their defaults; out-of-range values are clamped to the slider.
func ParseROICalculatorState(q url.Values) ROICalculatorState {
	s := DefaultROICalculatorState()
	if v, ok := parseFloat(q.Get("price")); ok {
		s.PurchasePrice = v
	}
	if v, ok := parseInt(q.Get("years")); ok {
		s.HoldingPeriodYears = v
	}
	return s.Clamp()
}

// MortgageEstimatorState is the listing's price plus the deposit slider.
type MortgageEstimatorState struct {
	PropertyPrice   float64
	DepositRatioPct float64
}

func DefaultMortgageEstimatorState() MortgageEstimatorState {
	return MortgageEstimatorState{PropertyPrice: 35_000_000, DepositRatioPct: 20}
}

func (s MortgageEstimatorState) Clamp() MortgageEstimatorState {
	s.PropertyPrice = PropertyPriceRange.Clamp(s.PropertyPrice)
	s.DepositRatioPct = DepositRatioRange.Clamp(s.DepositRatioPct)
	return s
}

func ParseMortgageEstimatorState(q url.Values) MortgageEstimatorState {
	s := DefaultMortgageEstimatorState()
	if v, ok := parseFloat(q.Get("price")); ok {
		s.PropertyPrice = v
	}
	if v, ok := parseFloat(q.Get("deposit")); ok {
		s.DepositRatioPct = v
	}
	return s.Clamp()
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
