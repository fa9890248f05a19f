package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/guttosm/findash/internal/domain/models"
)

// ErrNoData reports that the provider returned no rows for the requested
// ticker and date range. Handlers map it to 404.
var ErrNoData = errors.New("no data found")

// Shape converts raw provider bars into the candlestick series and KPI
// summary served by the API. It is a pure function of its inputs.
//
// Rules:
//   - Output preserves the length and order of bars; prices are rounded
//     half-up to 2 decimal places.
//   - CurrentPrice is the last close; the previous close is the
//     second-to-last close, or the current one when only a single bar exists
//     (daily change 0).
//   - DailyChangePct is 0 when the previous close is 0.
//   - AvgVolume is the floor of the mean volume.
//   - 52-week range and market cap are copied from meta; nil meta leaves
//     them null.
//
// Returns ErrNoData when bars is empty.
func Shape(bars []models.PriceBar, meta *models.TickerMetadata) ([]models.Candlestick, models.Kpis, error) {
	if len(bars) == 0 {
		return nil, models.Kpis{}, ErrNoData
	}

	candles := make([]models.Candlestick, 0, len(bars))
	var volumeSum int64
	for _, b := range bars {
		candles = append(candles, models.Candlestick{
			Date:   b.Date.Format("2006-01-02"),
			Open:   round2(b.Open),
			High:   round2(b.High),
			Low:    round2(b.Low),
			Close:  round2(b.Close),
			Volume: b.Volume,
		})
		volumeSum += b.Volume
	}

	current := candles[len(candles)-1].Close
	prev := current
	if len(candles) >= 2 {
		prev = candles[len(candles)-2].Close
	}

	change := round2(current - prev)
	var changePct float64
	if prev != 0 {
		changePct = round2(change / prev * 100)
	}

	kpis := models.Kpis{
		CurrentPrice:   current,
		DailyChange:    change,
		DailyChangePct: changePct,
		AvgVolume:      volumeSum / int64(len(candles)),
	}
	if meta != nil {
		kpis.FiftyTwoWeekHigh = meta.FiftyTwoWeekHigh
		kpis.FiftyTwoWeekLow = meta.FiftyTwoWeekLow
		kpis.MarketCap = meta.MarketCap
	}

	return candles, kpis, nil
}

// round2 rounds half away from zero to 2 decimal places. Going through
// decimal avoids binary-float artifacts on values like 1.005.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
