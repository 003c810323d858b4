// Package footprint computes a carbon-equivalent emissions estimate from
// monthly usage figures and derives the recommended number of offset tokens.
// The per-category factors are user-facing contracts and must not change.
package footprint

import (
	"math"

	"github.com/shopspring/decimal"

	"greenfin/internal/model"
)

// Emission factors, kg CO2e per input unit.
const (
	ElectricityFactor = 0.5 // per kWh
	GasFactor         = 2.0 // per therm
	CarFactor         = 0.2 // per mile
	FlightFactor      = 90  // per flight hour
	MeatFactor        = 7   // per serving
)

// KgPerOffset is the amount of emissions one offset token compensates.
const KgPerOffset = 1000

// Calculate computes the total emissions estimate and the recommended offset
// quantity. Negative or NaN inputs are coerced to zero; the result is always
// valid and the offset recommendation is at least 1.
func Calculate(inputs model.FootprintInputs) model.FootprintResult {
	total := sanitize(inputs.ElectricityUsage)*ElectricityFactor +
		sanitize(inputs.GasUsage)*GasFactor +
		sanitize(inputs.CarTravel)*CarFactor +
		sanitize(inputs.FlightHours)*FlightFactor +
		sanitize(inputs.MeatConsumption)*MeatFactor

	offsets := int(math.Ceil(total / KgPerOffset))
	if offsets < 1 {
		offsets = 1
	}

	return model.FootprintResult{
		TotalEmissions:     total,
		RecommendedOffsets: offsets,
	}
}

// Quote prices an offset purchase at the given per-token price. Decimal
// arithmetic keeps the cost exact for display and order seeding.
func Quote(offsets int, unitPrice decimal.Decimal) model.PurchaseQuote {
	if offsets < 1 {
		offsets = 1
	}
	qty := decimal.NewFromInt(int64(offsets))
	return model.PurchaseQuote{
		Offsets:       offsets,
		UnitPrice:     unitPrice,
		TotalCost:     unitPrice.Mul(qty),
		CompensatedKg: qty.Mul(decimal.NewFromInt(KgPerOffset)),
	}
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
