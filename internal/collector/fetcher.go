package collector

import "MarketWarRoom/internal/model"

// Fetcher defines the interface for the market-data provider. The core
// computation pipeline only ever sees the typed models returned here;
// loosely-typed provider payloads stay inside the implementations.
type Fetcher interface {
	FetchHistory(symbol string, days int) (model.PriceSeries, error)
	FetchNews(symbol string, limit int) ([]model.NewsItem, error)
	FetchHolders(symbol string, limit int) ([]model.Holder, error)
	Name() string
}
