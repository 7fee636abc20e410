package model

// IndicatorSnapshot holds the computed indicators for one symbol at the
// latest bar. Nil fields mean "not available" (too little history) and
// marshal to JSON null so the renderer can show an explicit N/A instead
// of a silently wrong zero.
type IndicatorSnapshot struct {
	Symbol        string   `json:"symbol"`
	LatestClose   float64  `json:"latest_close"`
	PercentChange *float64 `json:"percent_change"`
	RSI14         *float64 `json:"rsi_14"`
	MA20          *float64 `json:"ma_20"`
	MA60          *float64 `json:"ma_60"`
}

// TrendLabel is the five-point trend classification.
type TrendLabel string

const (
	StrongDowntrend TrendLabel = "STRONG_DOWNTREND"
	Downtrend       TrendLabel = "DOWNTREND"
	Neutral         TrendLabel = "NEUTRAL"
	Uptrend         TrendLabel = "UPTREND"
	StrongUptrend   TrendLabel = "STRONG_UPTREND"
)
