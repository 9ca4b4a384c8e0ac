package strategy

import (
	"CryptoPulse/internal/calculator"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/series"
)

// Indicator windows.
const (
	RSIPeriod   = 14
	MACDFast    = 12
	MACDSlow    = 26
	MACDSignal  = 9
	ShortVolWin = 7
)

// Evaluate computes one IndicatorRow per record and the summary over all of
// them. It is a pure function of its input; numeric edge cases degrade to
// defined defaults instead of errors. An empty input yields no rows and a
// zero Summary.
func Evaluate(records []model.AlignedRecord) ([]model.IndicatorRow, model.Summary) {
	if len(records) == 0 {
		return nil, model.Summary{}
	}

	prices := series.Prices(records)
	volumes := series.Volumes(records)

	// Step a: returns and flows
	changes := calculator.PriceChanges(prices)
	inflow, outflow := calculator.Flows(prices, changes)
	volPct := calculator.VolumePercentOfCap(volumes, series.MarketCaps(records))

	// Step b: momentum
	rsi := calculator.RollingRSI(prices, RSIPeriod)
	macd, macdSignal := calculator.MACD(prices, MACDFast, MACDSlow, MACDSignal)

	// Step c: per-row assembly and signal
	rows := make([]model.IndicatorRow, len(records))
	for i, rec := range records {
		rows[i] = model.IndicatorRow{
			AlignedRecord:   rec,
			PriceChange:     changes[i],
			Inflow:          inflow[i],
			Outflow:         outflow[i],
			VolumePercentMC: volPct[i],
			RSI:             rsi[i],
			MACD:            macd[i],
			MACDSignal:      macdSignal[i],
			Signal:          Classify(rsi[i], macd[i], macdSignal[i]),
		}
	}

	// Step d: rollup
	vol7d := calculator.Mean(volumes, ShortVolWin)
	vol30d := calculator.Mean(volumes, 0)
	var volRatio float64
	if vol30d > 0 {
		volRatio = vol7d / vol30d
	}

	return rows, model.Summary{
		Last:         rows[len(rows)-1],
		TotalInflow:  calculator.Sum(inflow),
		TotalOutflow: calculator.Sum(outflow),
		Vol7d:        vol7d,
		Vol30d:       vol30d,
		VolRatio:     volRatio,
	}
}
