package dto

import "github.com/guttosm/findash/internal/domain/models"

// StockDataRequest is the JSON body accepted by POST /api/stock-data.
//
// Dates use the YYYY-MM-DD format; the range is inclusive of start_date and
// follows the provider's convention for end_date.
type StockDataRequest struct {
	Ticker    string `json:"ticker" binding:"required" example:"AAPL"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02" example:"2024-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02" example:"2024-03-01"`
}

// StockDataResponse is the success envelope returned by POST /api/stock-data.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type StockDataResponse struct {
	Ticker string               `json:"ticker" example:"AAPL"` // Requested ticker, uppercased
	Data   []models.Candlestick `json:"data"`                  // Ordered candlestick series
	Kpis   models.Kpis          `json:"kpis"`                  // Summary indicators for the series
}
