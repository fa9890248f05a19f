package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/findash/internal/domain/models"
	"github.com/guttosm/findash/internal/provider"
)

type stubClient struct {
	bars    []models.PriceBar
	barsErr error
	meta    *models.TickerMetadata
	metaErr error
}

func (s *stubClient) FetchHistory(_ context.Context, _ string, _, _ time.Time) ([]models.PriceBar, error) {
	return s.bars, s.barsErr
}

func (s *stubClient) FetchMetadata(_ context.Context, _ string) (*models.TickerMetadata, error) {
	return s.meta, s.metaErr
}

func (s *stubClient) Ping(_ context.Context) error { return nil }

var _ provider.MarketDataClient = (*stubClient)(nil)

func TestStockService_TableDriven(t *testing.T) {
	high := 120.5
	bars := []models.PriceBar{
		{Date: day("2024-01-02"), Open: 100, High: 105, Low: 99, Close: 102, Volume: 1000},
		{Date: day("2024-01-03"), Open: 102, High: 108, Low: 101, Close: 107, Volume: 2000},
	}

	cases := []struct {
		name         string
		client       *stubClient
		wantErr      error
		wantInternal bool
	}{
		{
			name:   "success with metadata",
			client: &stubClient{bars: bars, meta: &models.TickerMetadata{FiftyTwoWeekHigh: &high}},
		},
		{
			name:   "metadata failure is tolerated",
			client: &stubClient{bars: bars, metaErr: errors.New("quote endpoint down")},
		},
		{
			name:    "empty history maps to ErrNoData",
			client:  &stubClient{bars: nil},
			wantErr: ErrNoData,
		},
		{
			name:         "history failure is internal",
			client:       &stubClient{barsErr: errors.New("provider down")},
			wantInternal: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewStockService(tc.client)
			out, err := svc.GetStockData(context.Background(), "aapl", day("2024-01-01"), day("2024-02-01"))

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if tc.wantInternal {
				if err == nil || errors.Is(err, ErrNoData) {
					t.Fatalf("expected internal error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Ticker != "AAPL" {
				t.Fatalf("ticker not uppercased: %q", out.Ticker)
			}
			if len(out.Data) != len(bars) {
				t.Fatalf("expected %d candles, got %d", len(bars), len(out.Data))
			}
			if out.Kpis.CurrentPrice != 107.0 {
				t.Fatalf("current_price=%v", out.Kpis.CurrentPrice)
			}
			if tc.client.metaErr != nil && out.Kpis.FiftyTwoWeekHigh != nil {
				t.Fatalf("metadata failure must leave null fields: %+v", out.Kpis)
			}
			if tc.client.meta != nil && (out.Kpis.FiftyTwoWeekHigh == nil || *out.Kpis.FiftyTwoWeekHigh != high) {
				t.Fatalf("metadata not propagated: %+v", out.Kpis)
			}
		})
	}
}
