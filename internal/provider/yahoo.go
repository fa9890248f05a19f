package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/findash/internal/domain/models"
)

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// YahooClient implements MarketDataClient against the Yahoo Finance chart
// (v8) and quote (v7) endpoints.
//
// The client is stateless apart from its underlying *http.Client and is safe
// for concurrent use.
type YahooClient struct {
	baseURL string
	client  *http.Client
}

// NewYahooClient constructs a YahooClient.
//
// Parameters:
//   - baseURL: provider host, DefaultBaseURL when empty. Overridable for tests.
//   - timeout: per-request timeout applied to the underlying HTTP client.
func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &YahooClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// chartResponse mirrors the subset of the v8 chart payload we consume.
// Quote arrays may contain nulls for non-trading rows.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// quoteResponse mirrors the subset of the v7 quote payload we consume.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			FiftyTwoWeekHigh *float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow  *float64 `json:"fiftyTwoWeekLow"`
			MarketCap        *int64   `json:"marketCap"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteResponse"`
}

// FetchHistory retrieves daily bars for ticker within [start, end).
//
// Behavior:
//   - Queries /v8/finance/chart/{ticker} with interval=1d.
//   - A 404 from the provider (unknown symbol) is reported as an empty
//     result, not an error; the caller decides what an empty series means.
//   - Rows with null OHLC values (halts, partial sessions) are skipped.
func (c *YahooClient) FetchHistory(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.baseURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", status)
	}

	var out chartResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse chart response: %w", err)
	}
	if out.Chart.Error != nil {
		return nil, fmt.Errorf("provider error: %s (%s)", out.Chart.Error.Description, out.Chart.Error.Code)
	}
	if len(out.Chart.Result) == 0 {
		return nil, nil
	}

	result := out.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	bars := make([]models.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		o, h, l, cl := quote.Open[i], quote.High[i], quote.Low[i], quote.Close[i]
		if o == nil || h == nil || l == nil || cl == nil {
			continue
		}
		var vol int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}
		bars = append(bars, models.PriceBar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   *o,
			High:   *h,
			Low:    *l,
			Close:  *cl,
			Volume: vol,
		})
	}
	return bars, nil
}

// FetchMetadata retrieves the 52-week range and market cap via the v7 quote
// endpoint. Missing fields stay nil on the returned struct.
func (c *YahooClient) FetchMetadata(ctx context.Context, ticker string) (*models.TickerMetadata, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(ticker))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", status)
	}

	var out quoteResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse quote response: %w", err)
	}
	if out.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("provider error: %v", out.QuoteResponse.Error)
	}
	if len(out.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote results for symbol: %s", ticker)
	}

	r := out.QuoteResponse.Result[0]
	return &models.TickerMetadata{
		FiftyTwoWeekHigh: r.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  r.FiftyTwoWeekLow,
		MarketCap:        r.MarketCap,
	}, nil
}

// Ping checks provider reachability. Any HTTP response counts as reachable;
// only transport-level failures are reported.
func (c *YahooClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// CloseIdle releases idle keep-alive connections. Called on shutdown.
func (c *YahooClient) CloseIdle() {
	c.client.CloseIdleConnections()
}

// get performs a GET with the standard headers and returns the raw body and
// status code. Non-2xx statuses are returned to the caller, not treated as
// errors here.
func (c *YahooClient) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

var _ MarketDataClient = (*YahooClient)(nil)
