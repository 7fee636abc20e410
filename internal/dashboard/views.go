package dashboard

import (
	"time"

	"MarketWarRoom/internal/model"
)

// SymbolView is everything the renderer needs for the per-symbol page:
// the computed snapshot and trend, the raw series for the K-line/volume
// chart, and the best-effort extras.
type SymbolView struct {
	Snapshot  model.IndicatorSnapshot `json:"snapshot"`
	Trend     model.TrendLabel        `json:"trend"`
	Series    model.PriceSeries       `json:"series"`
	Holders   []model.Holder          `json:"holders"`
	News      []model.NewsItem        `json:"news"`
	FetchedAt time.Time               `json:"fetched_at"`
}

// HeatmapView is the laid-out sector grid plus its summary line.
type HeatmapView struct {
	Tiles         []model.HeatmapTile `json:"tiles"`
	AverageChange float64             `json:"average_change"`
	AsOf          string              `json:"as_of"`     // latest close date used
	PrevDate      string              `json:"prev_date"` // prior close date used
	FetchedAt     time.Time           `json:"fetched_at"`
}
