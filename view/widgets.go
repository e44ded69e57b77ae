package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"property-estimator/domain"
	"property-estimator/estimator"
)

// ROICalculator renders the appreciation widget. A nil result renders the
// sliders without output, for when the estimator rejected the state.
func ROICalculator(state ROICalculatorState, result *domain.AppreciationResult, notice g.Node) g.Node {
	return Div(
		Class("card bg-base-200 shadow-xl"),
		ID("roi-calculator"),
		Div(
			Class("card-body gap-6"),
			H2(Class("card-title"), g.Text("ROI Calculator")),
			g.El("form",
				Method("get"),
				Action("/widgets/roi"),
				Class("flex flex-col gap-4"),
				slider("Purchase price", "price", PurchasePriceRange, state.PurchasePrice, Currency(state.PurchasePrice)),
				slider("Holding period", "years", HoldingPeriodRange, float64(state.HoldingPeriodYears), yearsLabel(state.HoldingPeriodYears)),
				g.El("noscript", Button(Type("submit"), Class("btn btn-sm"), g.Text("Update"))),
			),
			notice,
			g.Iff(result != nil, func() g.Node {
				return Div(
					Class("stats stats-vertical lg:stats-horizontal"),
					stat("Total return", WholePercent(result.TotalReturnPct)),
					stat("Annual appreciation", Percent(result.AnnualAppreciationPct)),
					stat("Projected value", Currency(result.ProjectedValue)),
				)
			}),
		),
	)
}

// MortgageEstimator renders the monthly payment widget of a listing.
func MortgageEstimator(state MortgageEstimatorState, cfg estimator.Config, result *domain.MortgageResult, notice g.Node) g.Node {
	return Div(
		Class("card bg-base-200 shadow-xl"),
		ID("mortgage-estimator"),
		Div(
			Class("card-body gap-6"),
			H2(Class("card-title"), g.Text("Mortgage Estimator")),
			P(
				Class("text-base-content/70"),
				g.Textf("%s at %s over %s", Currency(state.PropertyPrice), Percent(cfg.DefaultAnnualRatePct), yearsLabel(cfg.DefaultTermYears)),
			),
			g.El("form",
				Method("get"),
				Action("/widgets/mortgage"),
				Class("flex flex-col gap-4"),
				Input(Type("hidden"), Name("price"), Value(sliderValue(state.PropertyPrice))),
				slider("Deposit", "deposit", DepositRatioRange, state.DepositRatioPct, Percent(state.DepositRatioPct)),
				g.El("noscript", Button(Type("submit"), Class("btn btn-sm"), g.Text("Update"))),
			),
			notice,
			g.Iff(result != nil, func() g.Node {
				return Div(
					Class("stats stats-vertical lg:stats-horizontal"),
					stat("Monthly payment", Currency(result.MonthlyPayment)),
					stat("Deposit", Currency(result.Deposit)),
					stat("Loan amount", Currency(result.Principal)),
				)
			}),
		),
	)
}

func yearsLabel(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
