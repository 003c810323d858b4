package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"greenfin/internal/model"
	"greenfin/pkg/footprint"
)

type FootprintHandler struct {
	unitPrice decimal.Decimal
}

func NewFootprintHandler(unitPrice decimal.Decimal) *FootprintHandler {
	return &FootprintHandler{unitPrice: unitPrice}
}

// footprintRequest accepts each field as loose JSON so missing or
// non-numeric values degrade to zero instead of rejecting the request.
type footprintRequest struct {
	ElectricityUsage *float64 `json:"electricity_usage"`
	GasUsage         *float64 `json:"gas_usage"`
	CarTravel        *float64 `json:"car_travel"`
	FlightHours      *float64 `json:"flight_hours"`
	MeatConsumption  *float64 `json:"meat_consumption"`
}

func (h *FootprintHandler) Calculate(c *gin.Context) {
	var req footprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid footprint payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	inputs := model.FootprintInputs{
		ElectricityUsage: deref(req.ElectricityUsage),
		GasUsage:         deref(req.GasUsage),
		CarTravel:        deref(req.CarTravel),
		FlightHours:      deref(req.FlightHours),
		MeatConsumption:  deref(req.MeatConsumption),
	}

	result := footprint.Calculate(inputs)
	quote := footprint.Quote(result.RecommendedOffsets, h.unitPrice)

	c.JSON(http.StatusOK, FootprintResponse{
		TotalEmissions:     result.TotalEmissions,
		RecommendedOffsets: result.RecommendedOffsets,
		Quote: QuoteResponse{
			Offsets:       quote.Offsets,
			UnitPrice:     quote.UnitPrice.String(),
			TotalCost:     quote.TotalCost.String(),
			CompensatedKg: quote.CompensatedKg.String(),
		},
	})
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
