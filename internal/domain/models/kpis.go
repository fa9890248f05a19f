package models

// TickerMetadata carries optional reference data about a ticker reported by
// the market-data provider. A field is nil when the provider does not have it.
type TickerMetadata struct {
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	MarketCap        *int64
}

// Kpis summarizes a candlestick series for dashboard display.
//
// Fields:
//   - CurrentPrice: close of the most recent candlestick.
//   - DailyChange: CurrentPrice minus the previous close, rounded to 2 decimals.
//   - DailyChangePct: DailyChange over the previous close as a percentage,
//     0 when the previous close is 0.
//   - AvgVolume: integer mean of all volumes in the series.
//   - FiftyTwoWeekHigh / FiftyTwoWeekLow / MarketCap: copied from
//     TickerMetadata, null in the JSON output when unavailable.
//
// swagger:model Kpis
type Kpis struct {
	CurrentPrice     float64  `json:"current_price" example:"107.00"`
	DailyChange      float64  `json:"daily_change" example:"5.00"`
	DailyChangePct   float64  `json:"daily_change_pct" example:"4.90"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high" example:"120.50"`
	FiftyTwoWeekLow  *float64 `json:"fifty_two_week_low" example:"80.10"`
	AvgVolume        int64    `json:"avg_volume" example:"1500"`
	MarketCap        *int64   `json:"market_cap" example:"2500000000"`
}
