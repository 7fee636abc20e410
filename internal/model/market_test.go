package model

import (
	"errors"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestPriceSeries_Validate(t *testing.T) {
	ok := PriceSeries{Symbol: "AAPL", Records: []PriceRecord{
		{Date: day(0), Close: 100},
		{Date: day(1), Close: 101},
		{Date: day(4), Close: 102}, // gaps are fine, only order matters
	}}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid series rejected: %v", err)
	}

	dup := PriceSeries{Symbol: "AAPL", Records: []PriceRecord{
		{Date: day(0), Close: 100},
		{Date: day(0), Close: 101},
	}}
	if err := dup.Validate(); !errors.Is(err, ErrMalformedSeries) {
		t.Errorf("duplicate dates: expected ErrMalformedSeries, got %v", err)
	}

	rev := PriceSeries{Symbol: "AAPL", Records: []PriceRecord{
		{Date: day(1), Close: 100},
		{Date: day(0), Close: 101},
	}}
	if err := rev.Validate(); !errors.Is(err, ErrMalformedSeries) {
		t.Errorf("reversed dates: expected ErrMalformedSeries, got %v", err)
	}

	if err := (PriceSeries{Symbol: "AAPL"}).Validate(); err != nil {
		t.Errorf("empty series should pass Validate (emptiness is checked elsewhere): %v", err)
	}
}

func TestPriceSeries_Closes(t *testing.T) {
	s := PriceSeries{Records: []PriceRecord{
		{Date: day(0), Close: 1.5},
		{Date: day(1), Close: 2.5},
	}}
	closes := s.Closes()
	if len(closes) != 2 || closes[0] != 1.5 || closes[1] != 2.5 {
		t.Errorf("unexpected closes: %v", closes)
	}
}
