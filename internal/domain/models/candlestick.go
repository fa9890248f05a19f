package models

import "time"

// PriceBar represents one raw daily price row as returned by the market-data
// provider, before any shaping. Bars arrive ordered ascending by date, one
// per trading day.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Candlestick is one trading day of open/high/low/close/volume data as
// exposed by the API. Prices are rounded half-up to 2 decimal places.
//
// swagger:model Candlestick
type Candlestick struct {
	Date   string  `json:"date" example:"2024-01-02"`
	Open   float64 `json:"open" example:"100.00"`
	High   float64 `json:"high" example:"105.00"`
	Low    float64 `json:"low" example:"99.00"`
	Close  float64 `json:"close" example:"102.00"`
	Volume int64   `json:"volume" example:"1000"`
}
