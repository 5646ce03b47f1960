package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"StockScribe/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches bars from the Yahoo Finance chart API.
type YahooProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooProvider creates a Yahoo fetcher with optional proxy support.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooProvider{
		BaseURL: yahooBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Quote values are pointers: the API sends null for bars it has no data
// for, and those must come through as NaN rather than zero.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(vals []*float64, i int) float64 {
	if i >= len(vals) || vals[i] == nil {
		return math.NaN()
	}
	return *vals[i]
}

// Fetch pulls one chart of bars. Unknown symbols and empty charts yield an
// empty frame, not an error.
func (p *YahooProvider) Fetch(symbol string, q Query) (*model.Frame, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s&includePrePost=%t",
		p.BaseURL, url.PathEscape(symbol), url.QueryEscape(q.Interval), url.QueryEscape(q.Range), q.PrePost)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		// Unknown or delisted symbols come back as a chart error payload.
		zap.S().Warnw("yahoo returned no data",
			"symbol", symbol,
			"code", chart.Chart.Error.Code,
			"description", chart.Chart.Error.Description)
		return &model.Frame{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return &model.Frame{}, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return &model.Frame{}, nil
	}
	quote := result.Indicators.Quote[0]

	sym := result.Meta.Symbol
	if sym == "" {
		sym = symbol
	}

	n := len(result.Timestamp)
	idx := make([]time.Time, n)
	for i, ts := range result.Timestamp {
		idx[i] = time.Unix(ts, 0).UTC()
	}

	cols := make([]model.Series, 0, 5)
	for _, src := range []struct {
		name string
		vals []*float64
	}{
		{model.ColOpen, quote.Open},
		{model.ColHigh, quote.High},
		{model.ColLow, quote.Low},
		{model.ColClose, quote.Close},
		{model.ColVolume, quote.Volume},
	} {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = deref(src.vals, i)
		}
		cols = append(cols, model.Series{Label: model.Label{src.name, sym}, Values: vals})
	}

	return &model.Frame{Index: idx, Columns: cols}, nil
}
