package provider

import (
	"context"
	"time"

	"github.com/guttosm/findash/internal/domain/models"
)

// MarketDataClient is the contract for the external market-data provider.
//
// All calls are synchronous and single-shot: no retries, no backoff, no
// fan-out. The service layer owns the interpretation of empty results.
type MarketDataClient interface {
	// FetchHistory returns daily price bars for the ticker within
	// [start, end), ordered ascending by date. An empty slice (with a nil
	// error) means the provider has no data for that ticker and range.
	FetchHistory(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceBar, error)

	// FetchMetadata returns the 52-week range and market cap for the ticker.
	FetchMetadata(ctx context.Context, ticker string) (*models.TickerMetadata, error)

	// Ping reports whether the provider is reachable. Used by the readiness
	// probe.
	Ping(ctx context.Context) error
}
