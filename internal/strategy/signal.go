package strategy

import "CryptoPulse/internal/model"

// Thresholds for the RSI band that gates a MACD crossover.
const (
	OversoldRSI   = 30.0
	OverboughtRSI = 70.0
)

// Classify maps one row's RSI and MACD state to a trade signal:
// oversold with MACD above its signal line is a buy, overbought with MACD
// below it is a sell, everything else holds.
func Classify(rsi, macd, macdSignal float64) model.TradeSignal {
	switch {
	case rsi < OversoldRSI && macd > macdSignal:
		return model.SignalBuy
	case rsi > OverboughtRSI && macd < macdSignal:
		return model.SignalSell
	default:
		return model.SignalHold
	}
}
