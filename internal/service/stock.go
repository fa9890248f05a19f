package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/findash/internal/domain/dto"
	"github.com/guttosm/findash/internal/logger"
	"github.com/guttosm/findash/internal/provider"
)

// StockService defines business logic for building dashboard responses.
type StockService interface {
	// GetStockData fetches history (and, best effort, metadata) for the
	// ticker and returns the shaped response. Returns ErrNoData when the
	// provider has no rows for the range.
	GetStockData(ctx context.Context, ticker string, start, end time.Time) (*dto.StockDataResponse, error)
}

type stockService struct {
	client provider.MarketDataClient
}

func NewStockService(client provider.MarketDataClient) StockService {
	return &stockService{client: client}
}

// GetStockData performs one blocking history fetch and one blocking metadata
// fetch per request. Metadata failures are tolerated: the KPIs keep null
// 52-week and market-cap fields. History failures abort the request.
func (s *stockService) GetStockData(ctx context.Context, ticker string, start, end time.Time) (*dto.StockDataResponse, error) {
	bars, err := s.client.FetchHistory(ctx, ticker, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	meta, err := s.client.FetchMetadata(ctx, ticker)
	if err != nil {
		logger.L().Warn().Err(err).Str("ticker", ticker).Msg("metadata unavailable")
		meta = nil
	}

	candles, kpis, err := Shape(bars, meta)
	if err != nil {
		return nil, err
	}

	return &dto.StockDataResponse{
		Ticker: strings.ToUpper(strings.TrimSpace(ticker)),
		Data:   candles,
		Kpis:   kpis,
	}, nil
}
