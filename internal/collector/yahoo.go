package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"MarketWarRoom/internal/metrics"
	"MarketWarRoom/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) getJSON(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		metrics.ProviderFetches.WithLabelValues(f.Name(), "error").Inc()
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderFetches.WithLabelValues(f.Name(), "error").Inc()
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.ProviderFetches.WithLabelValues(f.Name(), "error").Inc()
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		metrics.ProviderFetches.WithLabelValues(f.Name(), "error").Inc()
		return fmt.Errorf("yahoo decode: %w", err)
	}
	metrics.ProviderFetches.WithLabelValues(f.Name(), "ok").Inc()
	return nil
}

// FetchHistory returns up to `days` daily bars for the symbol, oldest
// first. Null bars (holidays) are skipped; missing trading days are fine
// for the window math downstream.
func (f *YahooFetcher) FetchHistory(symbol string, days int) (model.PriceSeries, error) {
	rng := "2y"
	if days <= 30 {
		rng = "1mo"
	} else if days <= 90 {
		rng = "3mo"
	} else if days <= 180 {
		rng = "6mo"
	} else if days <= 365 {
		rng = "1y"
	}
	endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(symbol), rng)

	var chart yahooChart
	if err := f.getJSON(endpoint, &chart); err != nil {
		return model.PriceSeries{}, err
	}
	if chart.Chart.Error != nil {
		return model.PriceSeries{}, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return model.PriceSeries{}, fmt.Errorf("yahoo: no data for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return model.PriceSeries{}, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	if len(quote.Open) != n || len(quote.High) != n || len(quote.Low) != n ||
		len(quote.Close) != n || len(quote.Volume) != n {
		return model.PriceSeries{}, fmt.Errorf("yahoo: ragged chart payload for %s", symbol)
	}
	records := make([]model.PriceRecord, 0, n)

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // null bar
		}
		records = append(records, model.PriceRecord{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	if len(records) > days {
		records = records[len(records)-days:]
	}
	return model.PriceSeries{Symbol: symbol, Records: records}, nil
}

// yahooSearch is the response structure from the Yahoo Finance search API,
// which carries the recent news for a ticker.
type yahooSearch struct {
	News []struct {
		Title               string `json:"title"`
		Link                string `json:"link"`
		Publisher           string `json:"publisher"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

// FetchNews returns up to `limit` recent headlines for the symbol.
func (f *YahooFetcher) FetchNews(symbol string, limit int) ([]model.NewsItem, error) {
	endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v1/finance/search?q=%s&newsCount=%d&quotesCount=0",
		url.QueryEscape(symbol), limit)

	var search yahooSearch
	if err := f.getJSON(endpoint, &search); err != nil {
		return nil, err
	}

	items := make([]model.NewsItem, 0, limit)
	for _, n := range search.News {
		if n.Title == "" {
			continue
		}
		items = append(items, model.NewsItem{
			Title:         n.Title,
			OriginalTitle: n.Title,
			Link:          n.Link,
			Publisher:     n.Publisher,
			PublishedAt:   time.Unix(n.ProviderPublishTime, 0).UTC(),
		})
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

// yahooQuoteSummary is the response structure from the quoteSummary API
// with the institutionOwnership module.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			InstitutionOwnership struct {
				OwnershipList []struct {
					Organization string `json:"organization"`
					ReportDate   struct {
						Raw int64 `json:"raw"`
					} `json:"reportDate"`
					PctHeld struct {
						Raw float64 `json:"raw"`
					} `json:"pctHeld"`
					Position struct {
						Raw float64 `json:"raw"`
					} `json:"position"`
					Value struct {
						Raw float64 `json:"raw"`
					} `json:"value"`
				} `json:"ownershipList"`
			} `json:"institutionOwnership"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchHolders returns up to `limit` institutional holders for the symbol.
func (f *YahooFetcher) FetchHolders(symbol string, limit int) ([]model.Holder, error) {
	endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=institutionOwnership",
		url.PathEscape(symbol))

	var summary yahooQuoteSummary
	if err := f.getJSON(endpoint, &summary); err != nil {
		return nil, err
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no ownership data for %s", symbol)
	}

	list := summary.QuoteSummary.Result[0].InstitutionOwnership.OwnershipList
	holders := make([]model.Holder, 0, limit)
	for _, h := range list {
		if h.Organization == "" {
			continue
		}
		holders = append(holders, model.Holder{
			Organization: h.Organization,
			Shares:       h.Position.Raw,
			ReportDate:   time.Unix(h.ReportDate.Raw, 0).UTC(),
			PercentHeld:  h.PctHeld.Raw,
			Value:        h.Value.Raw,
		})
		if len(holders) >= limit {
			break
		}
	}
	return holders, nil
}
