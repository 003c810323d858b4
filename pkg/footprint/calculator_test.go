package footprint

import (
	"math"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/shopspring/decimal"

	"greenfin/internal/model"
)

func TestCalculateElectricityOnly(t *testing.T) {
	result := Calculate(model.FootprintInputs{ElectricityUsage: 1000})

	assert.Equal(t, 500.0, result.TotalEmissions)
	assert.Equal(t, 1, result.RecommendedOffsets)
}

func TestCalculateFlightHoursOnly(t *testing.T) {
	result := Calculate(model.FootprintInputs{FlightHours: 20})

	assert.Equal(t, 1800.0, result.TotalEmissions)
	assert.Equal(t, 2, result.RecommendedOffsets)
}

func TestCalculateAllCategories(t *testing.T) {
	result := Calculate(model.FootprintInputs{
		ElectricityUsage: 100, // 50
		GasUsage:         10,  // 20
		CarTravel:        50,  // 10
		FlightHours:      2,   // 180
		MeatConsumption:  5,   // 35
	})

	assert.Equal(t, 295.0, result.TotalEmissions)
	assert.Equal(t, 1, result.RecommendedOffsets)
}

func TestCalculateZeroInputs(t *testing.T) {
	result := Calculate(model.FootprintInputs{})

	assert.Equal(t, 0.0, result.TotalEmissions)
	assert.Equal(t, 1, result.RecommendedOffsets)
}

func TestCalculateCoercesNegativeAndNaN(t *testing.T) {
	result := Calculate(model.FootprintInputs{
		ElectricityUsage: -500,
		GasUsage:         math.NaN(),
		FlightHours:      10,
	})

	assert.Equal(t, 900.0, result.TotalEmissions)
	assert.Equal(t, 1, result.RecommendedOffsets)
	if math.IsNaN(result.TotalEmissions) {
		t.Fatal("NaN propagated into total emissions")
	}
}

func TestCalculateOffsetBoundary(t *testing.T) {
	// Exactly at the token boundary still ceils to one token.
	result := Calculate(model.FootprintInputs{ElectricityUsage: 2000})
	assert.Equal(t, 1000.0, result.TotalEmissions)
	assert.Equal(t, 1, result.RecommendedOffsets)

	// One kWh over the boundary requires a second token.
	result = Calculate(model.FootprintInputs{ElectricityUsage: 2002})
	assert.Equal(t, 1001.0, result.TotalEmissions)
	assert.Equal(t, 2, result.RecommendedOffsets)
}

func TestQuote(t *testing.T) {
	price := decimal.RequireFromString("12.50")
	quote := Quote(3, price)

	assert.Equal(t, 3, quote.Offsets)
	assert.Equal(t, "37.5", quote.TotalCost.String())
	assert.Equal(t, "3000", quote.CompensatedKg.String())
}

func TestQuoteMinimumOneOffset(t *testing.T) {
	quote := Quote(0, decimal.RequireFromString("12.50"))

	assert.Equal(t, 1, quote.Offsets)
	assert.Equal(t, "12.5", quote.TotalCost.String())
}
