// Package indicator computes the technical indicators shown on the
// per-symbol dashboard view: simple moving averages, Wilder RSI(14), and
// the day-over-day percent change. Every function is a pure function of
// its input series.
package indicator

import (
	"errors"

	"MarketWarRoom/internal/model"
)

// ErrInsufficientData indicates an empty series; a snapshot cannot be
// produced at all. A short-but-nonempty series is not an error: the
// affected fields are simply left unavailable.
var ErrInsufficientData = errors.New("insufficient price data")

const (
	maShortWindow = 20
	maLongWindow  = 60
	rsiPeriod     = 14
)

// Compute derives a fresh IndicatorSnapshot from the series. The input is
// never mutated and identical input always yields an identical snapshot.
func Compute(series model.PriceSeries) (model.IndicatorSnapshot, error) {
	if len(series.Records) == 0 {
		return model.IndicatorSnapshot{}, ErrInsufficientData
	}
	if err := series.Validate(); err != nil {
		return model.IndicatorSnapshot{}, err
	}

	closes := series.Closes()
	snap := model.IndicatorSnapshot{
		Symbol:      series.Symbol,
		LatestClose: closes[len(closes)-1],
	}

	// A non-positive previous close has no meaningful day-over-day change,
	// so the field stays unavailable rather than carrying an Inf.
	if len(closes) >= 2 {
		if prev := closes[len(closes)-2]; prev > 0 {
			pct := (snap.LatestClose - prev) / prev * 100
			snap.PercentChange = &pct
		}
	}
	if ma, ok := SMA(closes, maShortWindow); ok {
		snap.MA20 = &ma
	}
	if ma, ok := SMA(closes, maLongWindow); ok {
		snap.MA60 = &ma
	}
	if rsi, ok := RSI(closes, rsiPeriod); ok {
		snap.RSI14 = &rsi
	}
	return snap, nil
}

// SMA computes the simple moving average of the last `period` prices.
// The second return value is false when there is not enough history.
func SMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), true
}

// RSI computes the Wilder-smoothed RSI over the given period. Requires
// period+1 prices (period differences); returns false otherwise.
//
// The seed average is the simple mean of the first `period` gains/losses;
// later bars are folded in chronologically with
// avg = (avg*(period-1) + value) / period. A zero average loss maps to
// RSI 100, not a division fault.
func RSI(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period+1 {
		return 0, false
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, true
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), true
}
