package model

import "time"

// IndicatorRow holds all computed indicators for one aligned record.
type IndicatorRow struct {
	AlignedRecord
	PriceChange     float64     `json:"price_change"`
	Inflow          float64     `json:"inflow"`
	Outflow         float64     `json:"outflow"`
	VolumePercentMC float64     `json:"volume_percent_mc"`
	RSI             float64     `json:"rsi"`
	MACD            float64     `json:"macd"`
	MACDSignal      float64     `json:"macd_signal"`
	Signal          TradeSignal `json:"signal"`
}

// Summary is the scalar rollup over a full indicator sequence.
type Summary struct {
	Last         IndicatorRow `json:"last"`
	TotalInflow  float64      `json:"total_inflow"`
	TotalOutflow float64      `json:"total_outflow"`
	Vol7d        float64      `json:"vol_7d"`
	Vol30d       float64      `json:"vol_30d"`
	VolRatio     float64      `json:"vol_ratio"`
}

// Report is the result of one successful collection.
type Report struct {
	CoinID      string         `json:"coin_id"`
	Rows        []IndicatorRow `json:"rows"`
	Summary     Summary        `json:"summary"`
	GeneratedAt time.Time      `json:"generated_at"`
}
