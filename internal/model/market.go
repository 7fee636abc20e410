package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedSeries indicates a price series whose records are not in
// strictly ascending date order.
var ErrMalformedSeries = errors.New("malformed price series")

// PriceRecord represents a single daily bar.
type PriceRecord struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries holds the ordered daily price history for one symbol.
type PriceSeries struct {
	Symbol  string        `json:"symbol"`
	Records []PriceRecord `json:"records"`
}

// Validate checks that record dates are strictly increasing. Duplicate or
// out-of-order dates make window math meaningless, so they are fatal for
// this symbol.
func (s PriceSeries) Validate() error {
	for i := 1; i < len(s.Records); i++ {
		if !s.Records[i].Date.After(s.Records[i-1].Date) {
			return fmt.Errorf("%w: %s record %d (%s) not after record %d (%s)",
				ErrMalformedSeries, s.Symbol, i,
				s.Records[i].Date.Format("2006-01-02"),
				i-1, s.Records[i-1].Date.Format("2006-01-02"))
		}
	}
	return nil
}

// Closes returns the closing prices in chronological order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Records))
	for i, r := range s.Records {
		closes[i] = r.Close
	}
	return closes
}
