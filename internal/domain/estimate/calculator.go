package estimate

import (
	"math"

	apperrors "github.com/sunvolt/solarsite/pkg/errors"
)

// Sizing assumptions behind every quote. These are the rates published on
// the sales page and are deliberately not configurable.
const (
	// TariffPerKwh is the grid tariff in rupees per kWh.
	TariffPerKwh = 7.0
	// GenerationPerKw is the monthly yield of one installed kW, in kWh.
	GenerationPerKw = 130.0
	// CostPerKw is the installed price per kW, in rupees.
	CostPerKw = 50000.0

	// MinSystemKw is the smallest system the company installs.
	MinSystemKw = 1.0
	// SystemStepKw is the sizing granularity offered to customers.
	SystemStepKw = 0.5

	// MaxAmount caps the accepted bill or unit figure. It is far beyond any
	// residential bill and keeps every derived rupee figure inside int range.
	MaxAmount = 1000000.0
)

// InputKind discriminates which number the visitor supplied.
type InputKind string

const (
	// KindBill means Amount is a monthly electricity bill in rupees.
	KindBill InputKind = "bill"
	// KindUnits means Amount is a monthly consumption in kWh.
	KindUnits InputKind = "units"
)

// Input is the single number a quote is derived from.
type Input struct {
	Kind   InputKind
	Amount float64
}

// Result is the derived quote. MonthlyUnits and MonthlyBill keep full
// precision; rounding for display and for the archived lead happens at those
// boundaries, never inside the formula.
type Result struct {
	MonthlyUnits   float64
	MonthlyBill    float64
	SystemSizeKw   float64
	EstimatedCost  float64
	MonthlySavings float64
	PaybackYears   float64
}

// Calculate converts a bill amount or unit consumption into a sized system
// quote. The amount must be a positive finite number no larger than
// MaxAmount; nothing else can fail, every divisor below is a fixed positive
// constant.
//
// MonthlySavings is what the sized system generates (size * yield * tariff),
// not what the visitor currently consumes. For a clamped 1 kW quote the two
// differ; that is the published sales formula and it stays that way.
func Calculate(in Input) (Result, error) {
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return Result{}, apperrors.Wrap("invalid_input", "amount must be a finite number", nil)
	}
	if in.Amount <= 0 {
		return Result{}, apperrors.Wrap("invalid_input", "amount must be greater than zero", nil)
	}
	if in.Amount > MaxAmount {
		return Result{}, apperrors.Wrap("invalid_input", "amount must not exceed 1000000", nil)
	}

	var units, bill float64
	switch in.Kind {
	case KindBill:
		bill = in.Amount
		units = in.Amount / TariffPerKwh
	case KindUnits:
		units = in.Amount
		bill = in.Amount * TariffPerKwh
	default:
		return Result{}, apperrors.Wrap("invalid_input", "kind must be bill or units", nil)
	}

	sizeKw := math.Max(RoundToHalfKw(units/GenerationPerKw), MinSystemKw)
	cost := sizeKw * CostPerKw
	savings := sizeKw * GenerationPerKw * TariffPerKwh

	return Result{
		MonthlyUnits:   units,
		MonthlyBill:    bill,
		SystemSizeKw:   sizeKw,
		EstimatedCost:  cost,
		MonthlySavings: savings,
		PaybackYears:   round1(cost / (savings * 12)),
	}, nil
}

// RoundToHalfKw snaps a raw requirement to the half-kW sales step. The raw
// value is carried at the two-decimal precision quoted to customers before
// snapping, so a requirement that lands a hundredth below a midpoint (a
// ₹2500 bill works out to 2.747 kW) still quotes the upper step. Halves
// round up: math.Round is half-away-from-zero, which is half-up for the
// positive sizes seen here.
func RoundToHalfKw(kw float64) float64 {
	quoted := math.Round(kw*100) / 100
	return math.Round(quoted/SystemStepKw) * SystemStepKw
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
