package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"CryptoPulse/internal/model"
)

// DefaultCoinGeckoURL is the public CoinGecko v3 API root.
const DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

// CoinGeckoFetcher implements Fetcher using the CoinGecko market_chart API.
type CoinGeckoFetcher struct {
	BaseURL    string
	VsCurrency string
	Client     *http.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, vsCurrency, proxyURL string, timeout time.Duration) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}
	if vsCurrency == "" {
		vsCurrency = "usd"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CoinGeckoFetcher{
		BaseURL:    baseURL,
		VsCurrency: vsCurrency,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// marketChart is the response structure from the market_chart endpoint.
// Each entry is an [epoch_ms, value] pair; values may be null.
type marketChart struct {
	Prices       [][]interface{} `json:"prices"`
	MarketCaps   [][]interface{} `json:"market_caps"`
	TotalVolumes [][]interface{} `json:"total_volumes"`
}

// toFloat accepts the float64 that encoding/json decodes numbers into;
// null and anything else are rejected.
func toFloat(v interface{}) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

func toSamples(pairs [][]interface{}) []model.SamplePoint {
	out := make([]model.SamplePoint, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		ts, ok := toFloat(pair[0])
		if !ok {
			continue
		}
		v, ok := toFloat(pair[1])
		if !ok {
			continue // skip null samples
		}
		out = append(out, model.SamplePoint{Time: time.UnixMilli(int64(ts)).UTC(), Value: v})
	}
	return out
}

// maxErrorBody caps how much of a failed response is echoed into errors.
const maxErrorBody = 512

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}

func (f *CoinGeckoFetcher) FetchMarketChart(ctx context.Context, coinID string, days int) (*model.MarketChart, error) {
	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=%s&days=%d",
		f.BaseURL, url.PathEscape(coinID), url.QueryEscape(f.VsCurrency), days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko read body: %w", err)
	}

	chart := &model.MarketChart{CoinID: coinID, FetchedAt: time.Now()}
	if resp.StatusCode == http.StatusNotFound {
		// unknown coin id
		return chart, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, truncate(body, maxErrorBody))
	}

	var mc marketChart
	if err := json.Unmarshal(body, &mc); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	chart.Prices = toSamples(mc.Prices)
	chart.Volumes = toSamples(mc.TotalVolumes)
	chart.MarketCaps = toSamples(mc.MarketCaps)
	return chart, nil
}
