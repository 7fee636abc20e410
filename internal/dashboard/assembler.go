// Package dashboard assembles the renderer-facing views: it pulls price
// history from the data provider, runs the indicator pipeline and trend
// classification per symbol, and lays out the sector heatmap. Per-symbol
// failures are isolated; one bad symbol never takes down the rest of a
// render.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"MarketWarRoom/internal/cache"
	"MarketWarRoom/internal/collector"
	"MarketWarRoom/internal/config"
	"MarketWarRoom/internal/heatmap"
	"MarketWarRoom/internal/indicator"
	"MarketWarRoom/internal/model"
	"MarketWarRoom/internal/translate"
	"MarketWarRoom/internal/trend"
)

// sectorHistoryDays is how much history a sector needs: the last two
// closes, with slack for weekends and holidays.
const sectorHistoryDays = 7

// Assembler wires the provider, the computation pipeline, and the
// translation service together.
type Assembler struct {
	Fetcher    collector.Fetcher
	Translator translate.Translator
	Cache      cache.Cache

	Sectors      []config.Sector
	HistoryDays  int
	NewsLimit    int
	HoldersLimit int
	Thresholds   trend.Thresholds
	HeatmapOpts  heatmap.Options
}

// NewAssembler builds an Assembler from config.
func NewAssembler(f collector.Fetcher, tr translate.Translator, c cache.Cache, cfg *config.Config) *Assembler {
	return &Assembler{
		Fetcher:      f,
		Translator:   tr,
		Cache:        c,
		Sectors:      cfg.Sectors,
		HistoryDays:  cfg.DataSource.HistoryDays,
		NewsLimit:    cfg.DataSource.NewsLimit,
		HoldersLimit: cfg.DataSource.HoldersLimit,
		Thresholds:   trend.Thresholds{StrongRSI: cfg.Analysis.StrongRSI},
		HeatmapOpts: heatmap.Options{
			MinAreaPct:    cfg.Heatmap.MinAreaPct,
			SaturationPct: cfg.Heatmap.SaturationPct,
		},
	}
}

// BuildSymbolView fetches, computes, and decorates the per-symbol view.
// Indicator failures are fatal for the symbol; missing news or holders are
// not.
func (a *Assembler) BuildSymbolView(ctx context.Context, symbol string) (*SymbolView, error) {
	series, err := a.fetchHistory(symbol, a.HistoryDays)
	if err != nil {
		return nil, fmt.Errorf("fetch history %s: %w", symbol, err)
	}

	snap, err := indicator.Compute(series)
	if err != nil {
		return nil, fmt.Errorf("compute indicators %s: %w", symbol, err)
	}
	label := trend.Classify(snap.LatestClose, snap.MA20, snap.MA60, snap.RSI14, a.Thresholds)

	view := &SymbolView{
		Snapshot:  snap,
		Trend:     label,
		Series:    series,
		Holders:   []model.Holder{},
		News:      []model.NewsItem{},
		FetchedAt: time.Now().UTC(),
	}

	if holders, err := a.Fetcher.FetchHolders(symbol, a.HoldersLimit); err != nil {
		log.Printf("[WARN] fetch holders %s: %v", symbol, err)
	} else {
		view.Holders = holders
	}

	if news, err := a.Fetcher.FetchNews(symbol, a.NewsLimit); err != nil {
		log.Printf("[WARN] fetch news %s: %v", symbol, err)
	} else {
		view.News = a.translateNews(ctx, news)
	}

	return view, nil
}

// translateNews translates each headline, keeping the original text when
// the translation service fails.
func (a *Assembler) translateNews(ctx context.Context, news []model.NewsItem) []model.NewsItem {
	out := make([]model.NewsItem, len(news))
	for i, n := range news {
		out[i] = n
		translated, err := a.Translator.Translate(ctx, n.Title)
		if err != nil {
			log.Printf("[WARN] translate headline: %v", err)
			continue
		}
		out[i].Title = translated
	}
	return out
}

// BuildHeatmapView fetches all sector ETFs in parallel, derives each
// percent change from the last two closes, and lays out the heatmap. A
// sector that cannot be fetched becomes a stale zero-change tile instead
// of a hole in the grid.
func (a *Assembler) BuildHeatmapView(ctx context.Context) (*HeatmapView, error) {
	quotes := make([]model.SectorQuote, len(a.Sectors))
	lastDates := make([]time.Time, len(a.Sectors))
	prevDates := make([]time.Time, len(a.Sectors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, sec := range a.Sectors {
		g.Go(func() error {
			quotes[i] = model.SectorQuote{Symbol: sec.Ticker, Name: sec.Name, Stale: true}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			series, err := a.fetchHistory(sec.Ticker, sectorHistoryDays)
			if err != nil {
				log.Printf("[WARN] fetch sector %s: %v", sec.Ticker, err)
				return nil
			}
			n := len(series.Records)
			if n < 2 {
				log.Printf("[WARN] sector %s: only %d records", sec.Ticker, n)
				return nil
			}
			last, prev := series.Records[n-1], series.Records[n-2]
			if prev.Close <= 0 {
				log.Printf("[WARN] sector %s: unusable previous close %v", sec.Ticker, prev.Close)
				return nil
			}
			quotes[i].PercentChange = (last.Close - prev.Close) / prev.Close * 100
			quotes[i].Stale = false
			lastDates[i] = last.Date
			prevDates[i] = prev.Date
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &HeatmapView{
		Tiles:     heatmap.Layout(quotes, a.HeatmapOpts),
		FetchedAt: time.Now().UTC(),
	}

	sum, fresh := 0.0, 0
	var asOf, prevDate time.Time
	for i, q := range quotes {
		if q.Stale {
			continue
		}
		sum += q.PercentChange
		fresh++
		if lastDates[i].After(asOf) {
			asOf = lastDates[i]
			prevDate = prevDates[i]
		}
	}
	if fresh > 0 {
		view.AverageChange = sum / float64(fresh)
		view.AsOf = asOf.Format("2006-01-02")
		view.PrevDate = prevDate.Format("2006-01-02")
	}
	return view, nil
}

// fetchHistory returns the symbol's history, served from the cache when
// fresh. Cache failures only cost an extra provider call.
func (a *Assembler) fetchHistory(symbol string, days int) (model.PriceSeries, error) {
	key := fmt.Sprintf("history:%s:%d", symbol, days)
	if payload, ok := a.Cache.Get(key); ok {
		var series model.PriceSeries
		if err := json.Unmarshal(payload, &series); err == nil {
			return series, nil
		}
		log.Printf("[WARN] cache payload for %s unreadable, refetching", key)
	}

	series, err := a.Fetcher.FetchHistory(symbol, days)
	if err != nil {
		return model.PriceSeries{}, err
	}
	if payload, err := json.Marshal(series); err == nil {
		if err := a.Cache.Put(key, payload); err != nil {
			log.Printf("[WARN] cache put %s: %v", key, err)
		}
	}
	return series, nil
}
