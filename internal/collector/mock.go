package collector

import (
	"time"

	"MarketWarRoom/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series  map[string]model.PriceSeries
	News    map[string][]model.NewsItem
	Holders map[string][]model.Holder
	Err     error

	BasePrice float64 // used to generate bars when Series has no entry
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(symbol string, days int) (model.PriceSeries, error) {
	if m.Err != nil {
		return model.PriceSeries{}, m.Err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	base := m.BasePrice
	if base == 0 {
		base = 100
	}
	return GenerateSeries(symbol, base, days), nil
}

func (m *MockFetcher) FetchNews(symbol string, limit int) ([]model.NewsItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	news := m.News[symbol]
	if len(news) > limit {
		news = news[:limit]
	}
	return news, nil
}

func (m *MockFetcher) FetchHolders(symbol string, limit int) ([]model.Holder, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	holders := m.Holders[symbol]
	if len(holders) > limit {
		holders = holders[:limit]
	}
	return holders, nil
}

// GenerateSeries builds a gently drifting daily series ending today, one
// record per calendar day.
func GenerateSeries(symbol string, basePrice float64, count int) model.PriceSeries {
	records := make([]model.PriceRecord, count)
	start := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		records[i] = model.PriceRecord{
			Date:   start.AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return model.PriceSeries{Symbol: symbol, Records: records}
}

// SeriesFromCloses builds a series from bare closing prices, one record
// per day ending today. Handy for tests that only care about closes.
func SeriesFromCloses(symbol string, closes []float64) model.PriceSeries {
	records := make([]model.PriceRecord, len(closes))
	start := time.Now().UTC().Truncate(24 * time.Hour)
	for i, c := range closes {
		records[i] = model.PriceRecord{
			Date:   start.AddDate(0, 0, -(len(closes) - 1 - i)),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return model.PriceSeries{Symbol: symbol, Records: records}
}

var _ Fetcher = (*MockFetcher)(nil)
