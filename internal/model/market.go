package model

import "time"

// SamplePoint is one (timestamp, value) pair from the market-data source.
// Price, volume and market-cap series all share this shape.
type SamplePoint struct {
	Time  time.Time
	Value float64
}

// MarketChart holds the raw series returned for one coin.
type MarketChart struct {
	CoinID     string
	Prices     []SamplePoint
	Volumes    []SamplePoint
	MarketCaps []SamplePoint
	FetchedAt  time.Time
}

// AlignedRecord is one price sample joined with the volume and market cap
// observed at the same timestamp. Volume and MarketCap are 0 when the
// source had no sample for that timestamp.
type AlignedRecord struct {
	Time      time.Time `json:"time"`
	Price     float64   `json:"price"`
	Volume    float64   `json:"volume"`
	MarketCap float64   `json:"market_cap"`
}
