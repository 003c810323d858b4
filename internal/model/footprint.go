package model

import "github.com/shopspring/decimal"

// FootprintInputs are the monthly-usage figures entered in the calculator
// form. All fields are expected non-negative; invalid values are coerced to
// zero before computing.
type FootprintInputs struct {
	ElectricityUsage float64 `json:"electricity_usage"` // kWh/month
	GasUsage         float64 `json:"gas_usage"`         // therms/month
	CarTravel        float64 `json:"car_travel"`        // miles/week
	FlightHours      float64 `json:"flight_hours"`      // hours/year
	MeatConsumption  float64 `json:"meat_consumption"`  // servings/week
}

type FootprintResult struct {
	TotalEmissions     float64 // kg CO2e
	RecommendedOffsets int     // offset tokens, minimum 1
}

// PurchaseQuote seeds the offset-purchase form: exact total cost for the
// recommended token quantity and the emissions it compensates.
type PurchaseQuote struct {
	Offsets       int
	UnitPrice     decimal.Decimal
	TotalCost     decimal.Decimal
	CompensatedKg decimal.Decimal
}
