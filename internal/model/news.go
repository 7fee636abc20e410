package model

import "time"

// NewsItem is one headline for a symbol, translated for display.
type NewsItem struct {
	Title         string    `json:"title"`
	OriginalTitle string    `json:"original_title"`
	Link          string    `json:"link"`
	Publisher     string    `json:"publisher"`
	PublishedAt   time.Time `json:"published_at"`
}

// Holder is one institutional holder row.
type Holder struct {
	Organization string    `json:"organization"`
	Shares       float64   `json:"shares"`
	ReportDate   time.Time `json:"report_date"`
	PercentHeld  float64   `json:"percent_held"`
	Value        float64   `json:"value"`
}
