package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"MarketWarRoom/internal/cache"
	"MarketWarRoom/internal/collector"
	"MarketWarRoom/internal/config"
	"MarketWarRoom/internal/dashboard"
	"MarketWarRoom/internal/heatmap"
	"MarketWarRoom/internal/model"
	"MarketWarRoom/internal/translate"
	"MarketWarRoom/internal/trend"
)

func testAssembler(t *testing.T) *dashboard.Assembler {
	t.Helper()
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	fetcher := &collector.MockFetcher{
		Series: map[string]model.PriceSeries{
			"AAPL": collector.SeriesFromCloses("AAPL", closes),
			"XLK":  collector.SeriesFromCloses("XLK", []float64{100, 103}),
			"XLF":  collector.SeriesFromCloses("XLF", []float64{100, 99}),
		},
	}
	return &dashboard.Assembler{
		Fetcher:    fetcher,
		Translator: translate.NoopTranslator{},
		Cache:      cache.NewNoopCache(),
		Sectors: []config.Sector{
			{Ticker: "XLK", Name: "Tech"},
			{Ticker: "XLF", Name: "Financial"},
		},
		HistoryDays:  120,
		NewsLimit:    3,
		HoldersLimit: 10,
		Thresholds:   trend.DefaultThresholds,
		HeatmapOpts:  heatmap.DefaultOptions,
	}
}

func testServer(t *testing.T) http.Handler {
	t.Helper()
	h := &handlers{asm: testAssembler(t), symbols: []string{"AAPL", "MSFT"}}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.health)
	mux.HandleFunc("GET /api/symbols", h.listSymbols)
	mux.HandleFunc("GET /api/symbols/{symbol}/analysis", h.symbolAnalysis)
	mux.HandleFunc("GET /api/sectors/heatmap", h.sectorHeatmap)
	return logging(mux)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestListSymbols(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest("GET", "/api/symbols", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var body struct {
		Symbols []string `json:"symbols"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Symbols) != 2 {
		t.Errorf("symbols: %v", body.Symbols)
	}
}

func TestSymbolAnalysis(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest("GET", "/api/symbols/aapl/analysis", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var view dashboard.SymbolView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Snapshot.Symbol != "AAPL" {
		t.Errorf("symbol not upper-cased: %q", view.Snapshot.Symbol)
	}
	if view.Trend != model.StrongUptrend {
		t.Errorf("trend: got %s", view.Trend)
	}
	if view.Snapshot.RSI14 == nil {
		t.Error("rsi_14 missing")
	}
}

func TestSymbolAnalysis_ShortHistoryRendersNulls(t *testing.T) {
	asm := testAssembler(t)
	asm.Fetcher = &collector.MockFetcher{Series: map[string]model.PriceSeries{
		"NEWIPO": collector.SeriesFromCloses("NEWIPO", []float64{10, 11, 12}),
	}}
	h := &handlers{asm: asm}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/symbols/{symbol}/analysis", h.symbolAnalysis)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/symbols/NEWIPO/analysis", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("short history is not an error: got %d, body %s", rec.Code, rec.Body.String())
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var snap map[string]json.RawMessage
	if err := json.Unmarshal(raw["snapshot"], &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	// Undefined indicators must surface as explicit nulls, never zeros.
	for _, field := range []string{"rsi_14", "ma_20", "ma_60"} {
		if string(snap[field]) != "null" {
			t.Errorf("%s: got %s, want null", field, snap[field])
		}
	}
}

func TestSymbolAnalysis_FetchFailure(t *testing.T) {
	asm := testAssembler(t)
	asm.Fetcher = &collector.MockFetcher{Err: context.DeadlineExceeded}
	h := &handlers{asm: asm}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/symbols/{symbol}/analysis", h.symbolAnalysis)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/symbols/AAPL/analysis", nil))
	if rec.Code != http.StatusBadGateway {
		t.Errorf("provider failure: got %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestSectorHeatmap(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest("GET", "/api/sectors/heatmap", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var view dashboard.HeatmapView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(view.Tiles) != 2 {
		t.Errorf("tiles: got %d, want 2", len(view.Tiles))
	}
}
