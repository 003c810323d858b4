package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/shopspring/decimal"
)

func newFootprintRouter(unitPrice string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFootprintHandler(decimal.RequireFromString(unitPrice))
	r.POST("/footprint", h.Calculate)
	return r
}

func postFootprint(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/footprint", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCalculate_AllCategories(t *testing.T) {
	r := newFootprintRouter("12.50")

	w := postFootprint(r, `{
		"electricity_usage": 100,
		"gas_usage": 50,
		"car_travel": 200,
		"flight_hours": 1,
		"meat_consumption": 2
	}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FootprintResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 295.0, res.TotalEmissions)
	assert.Equal(t, 1, res.RecommendedOffsets)
	assert.Equal(t, "12.5", res.Quote.UnitPrice)
	assert.Equal(t, "12.5", res.Quote.TotalCost)
	assert.Equal(t, "1000", res.Quote.CompensatedKg)
}

func TestCalculate_MissingFieldsDefaultToZero(t *testing.T) {
	r := newFootprintRouter("12.50")

	w := postFootprint(r, `{"flight_hours": 20}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FootprintResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1800.0, res.TotalEmissions)
	assert.Equal(t, 2, res.RecommendedOffsets)
	assert.Equal(t, "25", res.Quote.TotalCost)
}

func TestCalculate_ZeroInputsStillQuoteOneOffset(t *testing.T) {
	r := newFootprintRouter("12.50")

	w := postFootprint(r, `{}`)

	var res FootprintResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0.0, res.TotalEmissions)
	assert.Equal(t, 1, res.RecommendedOffsets)
	assert.Equal(t, 1, res.Quote.Offsets)
}

func TestCalculate_NegativeInputsCoerced(t *testing.T) {
	r := newFootprintRouter("12.50")

	w := postFootprint(r, `{"electricity_usage": -100, "flight_hours": 10}`)

	var res FootprintResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 900.0, res.TotalEmissions)
}

func TestCalculate_InvalidBody(t *testing.T) {
	r := newFootprintRouter("12.50")

	w := postFootprint(r, `{"electricity_usage": "lots"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
