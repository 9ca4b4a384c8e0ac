package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CryptoPulse/internal/collector"
	"CryptoPulse/internal/model"
)

type fakeCollector struct {
	coins []string
	err   error
}

func (f *fakeCollector) Collect(_ context.Context, coinID string) (*model.Report, error) {
	f.coins = append(f.coins, coinID)
	if f.err != nil {
		return nil, f.err
	}
	return &model.Report{
		CoinID: coinID,
		Summary: model.Summary{
			Last: model.IndicatorRow{AlignedRecord: model.AlignedRecord{Price: 100}, RSI: 50, Signal: model.SignalHold},
		},
		GeneratedAt: time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC),
	}, nil
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendWithRetry(_ context.Context, text string, _ int) error {
	f.sent = append(f.sent, text)
	return f.err
}

func newTestScheduler(col *fakeCollector, snd *fakeSender) *Scheduler {
	s := NewScheduler(context.Background(), col, snd, nil, "Bitcoin")
	s.Now = func() time.Time { return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC) }
	return s
}

func TestRunReportNow_SendsReport(t *testing.T) {
	col, snd := &fakeCollector{}, &fakeSender{}
	newTestScheduler(col, snd).RunReportNow()

	assert.Equal(t, []string{"bitcoin"}, col.coins)
	require.Len(t, snd.sent, 1)
	assert.Contains(t, snd.sent[0], "<b>BITCOIN</b>")
	assert.Contains(t, snd.sent[0], "Hold")
}

func TestRunReportNow_SendsErrorMessage(t *testing.T) {
	col := &fakeCollector{err: &collector.UpstreamFetchError{CoinID: "bitcoin", Err: errors.New("timeout")}}
	snd := &fakeSender{}
	newTestScheduler(col, snd).RunReportNow()

	require.Len(t, snd.sent, 1)
	assert.Contains(t, snd.sent[0], "Failed to fetch market data")
}

func TestRunReportNow_SendFailureIsLogged(t *testing.T) {
	snd := &fakeSender{err: errors.New("telegram down")}
	assert.NotPanics(t, func() { newTestScheduler(&fakeCollector{}, snd).RunReportNow() })
}

func TestHandleCommand(t *testing.T) {
	col := &fakeCollector{}
	s := newTestScheduler(col, &fakeSender{})
	ctx := context.Background()

	assert.Contains(t, s.HandleCommand(ctx, "/signal"), "<b>BITCOIN</b>")
	assert.Contains(t, s.HandleCommand(ctx, "/signal Ethereum"), "<b>ETHEREUM</b>")
	assert.Equal(t, []string{"bitcoin", "ethereum"}, col.coins)

	assert.Contains(t, s.HandleCommand(ctx, "/help"), "Available commands")
	assert.Contains(t, s.HandleCommand(ctx, "   "), "Available commands")
}

func TestHandleCommand_UnknownCoin(t *testing.T) {
	col := &fakeCollector{err: &collector.EmptyInputError{CoinID: "nope"}}
	reply := newTestScheduler(col, &fakeSender{}).HandleCommand(context.Background(), "/signal nope")
	assert.Contains(t, reply, "No data available")
}

func TestHandleCommand_RejectsMalformedCoin(t *testing.T) {
	col := &fakeCollector{err: &collector.EmptyInputError{CoinID: "x"}}
	s := newTestScheduler(col, &fakeSender{})

	for _, cmd := range []string{"/signal <b>x", "/signal bit_coin", "/signal " + strings.Repeat("a", 65)} {
		reply := s.HandleCommand(context.Background(), cmd)
		assert.Contains(t, reply, "Invalid coin id", cmd)
		assert.NotContains(t, reply, "<b>", cmd)
	}
	assert.Empty(t, col.coins)
}

func TestRegisterReport(t *testing.T) {
	s := newTestScheduler(&fakeCollector{}, &fakeSender{})
	require.NoError(t, s.RegisterReport("0 0 8 * * *"))
	assert.Len(t, s.Cron.Entries(), 1)
	assert.Error(t, s.RegisterReport("not a cron"))
}
