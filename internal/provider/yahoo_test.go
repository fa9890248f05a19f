package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const chartBody = `{
  "chart": {
    "result": [{
      "timestamp": [1704153600, 1704240000],
      "indicators": {
        "quote": [{
          "open":   [100.0, 102.0],
          "high":   [105.0, 108.0],
          "low":    [99.0,  101.0],
          "close":  [102.0, 107.0],
          "volume": [1000,  2000]
        }]
      }
    }],
    "error": null
  }
}`

const quoteBody = `{
  "quoteResponse": {
    "result": [{
      "fiftyTwoWeekHigh": 120.5,
      "fiftyTwoWeekLow": 80.1,
      "marketCap": 2500000000
    }],
    "error": null
  }
}`

func testServer(t *testing.T, chart, quote string, chartStatus int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/"):
			w.WriteHeader(chartStatus)
			_, _ = w.Write([]byte(chart))
		case r.URL.Path == "/v7/finance/quote":
			_, _ = w.Write([]byte(quote))
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchHistory(t *testing.T) {
	srv := testServer(t, chartBody, quoteBody, http.StatusOK)
	c := NewYahooClient(srv.URL, 2*time.Second)

	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-01-05")
	bars, err := c.FetchHistory(context.Background(), "AAPL", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	first := bars[0]
	if first.Open != 100.0 || first.High != 105.0 || first.Low != 99.0 || first.Close != 102.0 || first.Volume != 1000 {
		t.Fatalf("unexpected first bar: %+v", first)
	}
	if !bars[0].Date.Before(bars[1].Date) {
		t.Fatalf("bars not ascending: %v, %v", bars[0].Date, bars[1].Date)
	}
}

func TestFetchHistory_UnknownSymbolIsEmpty(t *testing.T) {
	srv := testServer(t, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`, quoteBody, http.StatusNotFound)
	c := NewYahooClient(srv.URL, 2*time.Second)

	bars, err := c.FetchHistory(context.Background(), "NOPE", time.Now().AddDate(0, -1, 0), time.Now())
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if len(bars) != 0 {
		t.Fatalf("expected no bars, got %d", len(bars))
	}
}

func TestFetchHistory_ProviderError(t *testing.T) {
	srv := testServer(t, `{"chart":{"result":null,"error":{"code":"Bad Request","description":"invalid period"}}}`, quoteBody, http.StatusOK)
	c := NewYahooClient(srv.URL, 2*time.Second)

	_, err := c.FetchHistory(context.Background(), "AAPL", time.Now().AddDate(0, -1, 0), time.Now())
	if err == nil || !strings.Contains(err.Error(), "invalid period") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestFetchHistory_NullRowsSkipped(t *testing.T) {
	body := `{
	  "chart": {
	    "result": [{
	      "timestamp": [1704153600, 1704240000],
	      "indicators": {"quote": [{
	        "open":   [100.0, null],
	        "high":   [105.0, null],
	        "low":    [99.0,  null],
	        "close":  [102.0, null],
	        "volume": [1000,  null]
	      }]}
	    }],
	    "error": null
	  }
	}`
	srv := testServer(t, body, quoteBody, http.StatusOK)
	c := NewYahooClient(srv.URL, 2*time.Second)

	bars, err := c.FetchHistory(context.Background(), "AAPL", time.Now().AddDate(0, -1, 0), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("null row not skipped, got %d bars", len(bars))
	}
}

func TestFetchMetadata(t *testing.T) {
	srv := testServer(t, chartBody, quoteBody, http.StatusOK)
	c := NewYahooClient(srv.URL, 2*time.Second)

	meta, err := c.FetchMetadata(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.FiftyTwoWeekHigh == nil || *meta.FiftyTwoWeekHigh != 120.5 {
		t.Fatalf("unexpected high: %+v", meta)
	}
	if meta.FiftyTwoWeekLow == nil || *meta.FiftyTwoWeekLow != 80.1 {
		t.Fatalf("unexpected low: %+v", meta)
	}
	if meta.MarketCap == nil || *meta.MarketCap != 2500000000 {
		t.Fatalf("unexpected market cap: %+v", meta)
	}
}

func TestFetchMetadata_MissingFields(t *testing.T) {
	srv := testServer(t, chartBody, `{"quoteResponse":{"result":[{}],"error":null}}`, http.StatusOK)
	c := NewYahooClient(srv.URL, 2*time.Second)

	meta, err := c.FetchMetadata(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.FiftyTwoWeekHigh != nil || meta.FiftyTwoWeekLow != nil || meta.MarketCap != nil {
		t.Fatalf("missing fields must stay nil: %+v", meta)
	}
}

func TestFetchMetadata_NoResults(t *testing.T) {
	srv := testServer(t, chartBody, `{"quoteResponse":{"result":[],"error":null}}`, http.StatusOK)
	c := NewYahooClient(srv.URL, 2*time.Second)

	if _, err := c.FetchMetadata(context.Background(), "NOPE"); err == nil {
		t.Fatalf("expected error for empty result set")
	}
}

func TestPing(t *testing.T) {
	srv := testServer(t, chartBody, quoteBody, http.StatusOK)
	c := NewYahooClient(srv.URL, 2*time.Second)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	srv.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping failure after server close")
	}
}
