// Package trend maps a symbol's latest close, moving averages, and RSI to
// a discrete five-point trend label.
package trend

import "MarketWarRoom/internal/model"

// Thresholds tunes how RSI grades the strength of an aligned trend.
type Thresholds struct {
	// StrongRSI is the bullish-side strength cutoff; the bearish side
	// mirrors it at 100-StrongRSI.
	StrongRSI float64
}

// DefaultThresholds grades RSI >= 70 (<= 30 on the bearish side) as strong.
var DefaultThresholds = Thresholds{StrongRSI: 70}

// Classify derives the trend label. Nil averages mean there is too little
// history to judge a trend, which is Neutral, never an error.
//
// Bull alignment: close > MA20 > MA60. Bear alignment: close < MA20 < MA60.
// RSI then grades the aligned side into its strong or weak label; a nil
// RSI grades as weak. Anything unaligned is Neutral.
func Classify(close float64, ma20, ma60, rsi *float64, th Thresholds) model.TrendLabel {
	if ma20 == nil || ma60 == nil {
		return model.Neutral
	}

	switch {
	case close > *ma20 && *ma20 > *ma60:
		if rsi != nil && *rsi >= th.StrongRSI {
			return model.StrongUptrend
		}
		return model.Uptrend
	case close < *ma20 && *ma20 < *ma60:
		if rsi != nil && *rsi <= 100-th.StrongRSI {
			return model.StrongDowntrend
		}
		return model.Downtrend
	default:
		return model.Neutral
	}
}
