package model

// TradeSignal is the discrete action derived from RSI and MACD.
type TradeSignal string

const (
	SignalBuy  TradeSignal = "Buy"
	SignalSell TradeSignal = "Sell"
	SignalHold TradeSignal = "Hold"
)

func (s TradeSignal) String() string { return string(s) }
