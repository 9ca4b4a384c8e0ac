package notifier

import (
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"CryptoPulse/internal/model"
)

// TimeLayout is used for every generated-at stamp.
const TimeLayout = "2006-01-02 15:04:05 MST"

// NotAvailable is rendered in place of a non-finite value.
const NotAvailable = "n/a"

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FormatCurrency renders v as a dollar amount with two decimals and
// thousands separators, e.g. "$1,234.56" or "-$0.50".
func FormatCurrency(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// FormatPercent renders v (already in percent units) with two decimals.
func FormatPercent(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// FormatRatio renders a dimensionless ratio with two decimals.
func FormatRatio(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// SummaryField is one labelled value of the dashboard.
type SummaryField struct {
	Label string
	Value string
}

// SummaryFields returns the dashboard values in display order.
func SummaryFields(rep *model.Report) []SummaryField {
	s := rep.Summary
	return []SummaryField{
		{"Price", FormatCurrency(s.Last.Price)},
		{"Market Cap", FormatCurrency(s.Last.MarketCap)},
		{"Volume / Market Cap", FormatPercent(s.Last.VolumePercentMC)},
		{"Total Inflow", FormatCurrency(s.TotalInflow)},
		{"Total Outflow", FormatCurrency(s.TotalOutflow)},
		{"Volume Ratio (7d/30d)", FormatRatio(s.VolRatio)},
		{"RSI (14)", FormatRatio(s.Last.RSI)},
		{"Signal", s.Last.Signal.String()},
		{"Generated", rep.GeneratedAt.UTC().Format(TimeLayout)},
	}
}

// FormatSummary formats the latest snapshot as a plain-text dashboard.
func FormatSummary(rep *model.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s market summary\n", strings.ToUpper(rep.CoinID)))
	for _, f := range SummaryFields(rep) {
		b.WriteString(fmt.Sprintf("%-22s %s\n", f.Label+":", f.Value))
	}
	return b.String()
}

// FormatTelegramReport formats the latest snapshot into a Telegram message.
func FormatTelegramReport(rep *model.Report) string {
	s := rep.Summary
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>%s</b> | %s\n\n", signalIcon(s.Last.Signal), html.EscapeString(strings.ToUpper(rep.CoinID)),
		rep.GeneratedAt.UTC().Format("2006-01-02 15:04")))

	b.WriteString(fmt.Sprintf("Price: %s\n", FormatCurrency(s.Last.Price)))
	b.WriteString(fmt.Sprintf("Market cap: %s\n", FormatCurrency(s.Last.MarketCap)))
	b.WriteString(fmt.Sprintf("Vol/Cap: %s\n\n", FormatPercent(s.Last.VolumePercentMC)))

	b.WriteString("📈 <b>Indicators:</b>\n")
	b.WriteString(fmt.Sprintf("  RSI(14): %.1f\n", s.Last.RSI))
	b.WriteString(fmt.Sprintf("  MACD: %.4f | Signal: %.4f\n", s.Last.MACD, s.Last.MACDSignal))
	b.WriteString(fmt.Sprintf("  Vol ratio 7d/30d: %s\n\n", FormatRatio(s.VolRatio)))

	b.WriteString(fmt.Sprintf("Inflow: %s | Outflow: %s\n", FormatCurrency(s.TotalInflow), FormatCurrency(s.TotalOutflow)))
	b.WriteString(fmt.Sprintf("\n💡 <b>Signal:</b> %s", s.Last.Signal))
	return b.String()
}

func signalIcon(s model.TradeSignal) string {
	switch s {
	case model.SignalBuy:
		return "🟢"
	case model.SignalSell:
		return "🔴"
	default:
		return "⚪"
	}
}

// FormatError renders a failure for a chat reply. msg is escaped for
// Telegram's HTML parse mode.
func FormatError(msg string, at time.Time) string {
	return fmt.Sprintf("❌ %s\n(%s)", html.EscapeString(msg), at.UTC().Format(TimeLayout))
}
