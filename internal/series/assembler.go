// Package series aligns the parallel price, volume and market-cap series
// returned by the market-data source into one record per price sample.
package series

import (
	"errors"
	"time"

	"CryptoPulse/internal/model"
)

// ErrEmptyInput is returned when there is no price sample to anchor on.
var ErrEmptyInput = errors.New("empty price series")

// Assemble left-joins volumes and market caps onto the price timestamps.
// Output keeps the price order. A volume or market cap without a matching
// timestamp is 0; when a timestamp repeats, its last sample wins.
func Assemble(prices, volumes, marketCaps []model.SamplePoint) ([]model.AlignedRecord, error) {
	if len(prices) == 0 {
		return nil, ErrEmptyInput
	}

	volumeAt := index(volumes)
	capAt := index(marketCaps)

	records := make([]model.AlignedRecord, len(prices))
	for i, p := range prices {
		key := p.Time.UnixMilli()
		records[i] = model.AlignedRecord{
			Time:      p.Time,
			Price:     p.Value,
			Volume:    volumeAt[key],
			MarketCap: capAt[key],
		}
	}
	return records, nil
}

// index keys samples by epoch milliseconds, the source's native resolution.
func index(points []model.SamplePoint) map[int64]float64 {
	m := make(map[int64]float64, len(points))
	for _, p := range points {
		m[p.Time.UnixMilli()] = p.Value
	}
	return m
}

// Prices extracts the price column.
func Prices(records []model.AlignedRecord) []float64 {
	return column(records, func(r model.AlignedRecord) float64 { return r.Price })
}

// Volumes extracts the volume column.
func Volumes(records []model.AlignedRecord) []float64 {
	return column(records, func(r model.AlignedRecord) float64 { return r.Volume })
}

// MarketCaps extracts the market-cap column.
func MarketCaps(records []model.AlignedRecord) []float64 {
	return column(records, func(r model.AlignedRecord) float64 { return r.MarketCap })
}

func column(records []model.AlignedRecord, get func(model.AlignedRecord) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = get(r)
	}
	return out
}

// Span returns the first and last timestamps of the records.
func Span(records []model.AlignedRecord) (from, to time.Time) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}
	}
	return records[0].Time, records[len(records)-1].Time
}
