package provider

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StockScribe/internal/model"
)

const chartPayload = `{"chart":{"result":[{"meta":{"symbol":"AAPL"},
"timestamp":[1721050200,1721050500,1721050800],
"indicators":{"quote":[{
"open":[190.1,null,190.5],
"high":[191.0,190.9,191.2],
"low":[189.8,190.0,190.2],
"close":[190.6,190.2,190.9],
"volume":[100000,120000,90000]}]}}],"error":null}}`

const notFoundPayload = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

func yahooFor(t *testing.T, handler http.HandlerFunc) *YahooProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p := NewYahooProvider("")
	p.BaseURL = srv.URL
	return p
}

func TestYahooFetchDecodesChart(t *testing.T) {
	var gotPath, gotQuery string
	p := yahooFor(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(chartPayload))
	})

	f, err := p.Fetch("AAPL", Query{Range: "2d", Interval: "5m", PrePost: true})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotPath != "/v8/finance/chart/AAPL" {
		t.Errorf("path = %q, want /v8/finance/chart/AAPL", gotPath)
	}
	for _, param := range []string{"interval=5m", "range=2d", "includePrePost=true"} {
		if !strings.Contains(gotQuery, param) {
			t.Errorf("query %q missing %q", gotQuery, param)
		}
	}

	if f.Len() != 3 {
		t.Fatalf("rows = %d, want 3", f.Len())
	}
	want := time.Date(2024, 7, 15, 13, 30, 0, 0, time.UTC)
	if !f.Index[0].Equal(want) {
		t.Errorf("index[0] = %v, want %v", f.Index[0], want)
	}

	// Columns carry compound labels until normalization flattens them.
	var closeCol *model.Series
	for i := range f.Columns {
		if f.Columns[i].Label.Name() == model.ColClose {
			closeCol = &f.Columns[i]
		}
	}
	if closeCol == nil {
		t.Fatal("Close column missing")
	}
	if len(closeCol.Label) != 2 || closeCol.Label[1] != "AAPL" {
		t.Errorf("Close label = %v, want [Close AAPL]", closeCol.Label)
	}
	if closeCol.Values[2] != 190.9 {
		t.Errorf("close[2] = %v, want 190.9", closeCol.Values[2])
	}

	open, _ := f.Column(model.ColOpen)
	if !math.IsNaN(open[1]) {
		t.Errorf("null bar should decode as NaN, got %v", open[1])
	}
	if open[0] != 190.1 {
		t.Errorf("open[0] = %v, want 190.1", open[0])
	}
}

func TestYahooFetchUnknownSymbolIsEmpty(t *testing.T) {
	p := yahooFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundPayload))
	})

	f, err := p.Fetch("NOPE", Query{Range: "2d", Interval: "5m"})
	if err != nil {
		t.Fatalf("unknown symbol should not error, got %v", err)
	}
	if !f.Empty() {
		t.Errorf("unknown symbol should yield empty frame, got %d rows", f.Len())
	}
}

func TestYahooFetchServerError(t *testing.T) {
	p := yahooFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	if _, err := p.Fetch("AAPL", Query{Range: "2d", Interval: "5m"}); err == nil {
		t.Fatal("server error should surface as fetch error")
	}
}

func TestYahooFetchGarbageBody(t *testing.T) {
	p := yahooFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	if _, err := p.Fetch("AAPL", Query{Range: "2d", Interval: "5m"}); err == nil {
		t.Fatal("unparseable body should surface as decode error")
	}
}

func TestYahooFetchEmptyResult(t *testing.T) {
	p := yahooFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	})

	f, err := p.Fetch("AAPL", Query{Range: "2d", Interval: "5m"})
	if err != nil {
		t.Fatalf("empty result should not error, got %v", err)
	}
	if !f.Empty() {
		t.Error("empty result should yield empty frame")
	}
}
