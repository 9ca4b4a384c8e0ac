package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"CryptoPulse/internal/model"
	"CryptoPulse/internal/notifier"
)

// chartSeries is the data the browser-side chart draws.
type chartSeries struct {
	Time       []int64   `json:"time"`
	Price      []float64 `json:"price"`
	MarketCap  []float64 `json:"market_cap"`
	RSI        []float64 `json:"rsi"`
	MACD       []float64 `json:"macd"`
	MACDSignal []float64 `json:"macd_signal"`
}

func newChartSeries(rows []model.IndicatorRow) chartSeries {
	cs := chartSeries{
		Time:       make([]int64, len(rows)),
		Price:      make([]float64, len(rows)),
		MarketCap:  make([]float64, len(rows)),
		RSI:        make([]float64, len(rows)),
		MACD:       make([]float64, len(rows)),
		MACDSignal: make([]float64, len(rows)),
	}
	for i, r := range rows {
		cs.Time[i] = r.Time.UnixMilli()
		cs.Price[i] = r.Price
		cs.MarketCap[i] = r.MarketCap
		cs.RSI[i] = r.RSI
		cs.MACD[i] = r.MACD
		cs.MACDSignal[i] = r.MACDSignal
	}
	return cs
}

type pageData struct {
	Title  string
	Coin   string
	Signal string
	Fields []notifier.SummaryField
	Chart  template.JS
}

// Page renders the dashboard HTML.
type Page struct {
	tmpl *template.Template
}

func NewPage() *Page {
	return &Page{tmpl: template.Must(template.New("dashboard").Parse(dashboardHTML))}
}

// Render produces the dashboard for a report.
func (p *Page) Render(rep *model.Report) ([]byte, error) {
	chart, err := json.Marshal(newChartSeries(rep.Rows))
	if err != nil {
		return nil, fmt.Errorf("encode chart series: %w", err)
	}
	data := pageData{
		Title:  strings.ToUpper(rep.CoinID) + " dashboard",
		Coin:   rep.CoinID,
		Signal: rep.Summary.Last.Signal.String(),
		Fields: notifier.SummaryFields(rep),
		Chart:  template.JS(chart),
	}
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
td { padding: .25rem 1rem; border-bottom: 1px solid #ddd; }
.signal-Buy { color: #1a7f37; } .signal-Sell { color: #cf222e; } .signal-Hold { color: #57606a; }
canvas { max-width: 960px; margin-bottom: 2rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<form method="get" action="/">
  <input name="coin" value="{{.Coin}}"> <button type="submit">Load</button>
</form>
<h2 class="signal-{{.Signal}}">Signal: {{.Signal}}</h2>
<table>
{{- range .Fields}}
<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{- end}}
</table>
<canvas id="price"></canvas>
<canvas id="rsi"></canvas>
<canvas id="macd"></canvas>
<script>
const data = {{.Chart}};
const labels = data.time.map(t => new Date(t).toLocaleString());
const line = (label, values, extra) => Object.assign({ label, data: values, pointRadius: 0, borderWidth: 1.5 }, extra || {});
new Chart(document.getElementById("price"), {
  type: "line",
  data: { labels, datasets: [line("Price", data.price, { yAxisID: "y" }), line("Market Cap", data.market_cap, { yAxisID: "y1" })] },
  options: { scales: { y: { position: "left" }, y1: { position: "right", grid: { drawOnChartArea: false } } } }
});
new Chart(document.getElementById("rsi"), {
  type: "line",
  data: { labels, datasets: [line("RSI", data.rsi)] },
  options: { scales: { y: { min: 0, max: 100 } } }
});
new Chart(document.getElementById("macd"), {
  type: "line",
  data: { labels, datasets: [line("MACD", data.macd), line("Signal", data.macd_signal)] }
});
</script>
</body>
</html>
`
