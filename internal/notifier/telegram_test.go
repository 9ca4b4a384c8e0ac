package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(url string) *TelegramNotifier {
	n := NewTelegramNotifier("TOKEN", "42", "", nil)
	n.APIBase = url
	n.Backoff = time.Millisecond
	return n
}

func TestSend(t *testing.T) {
	var got map[string]string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestNotifier(srv.URL).Send(context.Background(), "hello"))
	assert.Equal(t, "/botTOKEN/sendMessage", path)
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "hello", got["text"])
	assert.Equal(t, "HTML", got["parse_mode"])
}

func TestSendWithRetry_RecoversAfterFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestNotifier(srv.URL).SendWithRetry(context.Background(), "hi", 3))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestSendWithRetry_Exhausted(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestNotifier(srv.URL).SendWithRetry(context.Background(), "hi", 2)
	assert.ErrorContains(t, err, "all 3 attempts exhausted")
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestSendWithRetry_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	n.Backoff = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, n.SendWithRetry(ctx, "hi", 3), context.DeadlineExceeded)
}

func TestPollOnce_DispatchesCommands(t *testing.T) {
	var replies []string
	mux := http.NewServeMux()
	mux.HandleFunc("/botTOKEN/getUpdates", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("offset"))
		fmt.Fprint(w, `{"ok":true,"result":[
			{"update_id":7,"message":{"text":" /signal bitcoin "}},
			{"update_id":8},
			{"update_id":9,"message":{"text":"/quiet"}}
		]}`)
	})
	mux.HandleFunc("/botTOKEN/sendMessage", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		replies = append(replies, body["text"])
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var seen []string
	handler := func(_ context.Context, cmd string) string {
		seen = append(seen, cmd)
		if cmd == "/quiet" {
			return ""
		}
		return "reply:" + cmd
	}

	n := newTestNotifier(srv.URL)
	next, err := n.PollOnce(context.Background(), srv.Client(), 7, handler)
	require.NoError(t, err)
	assert.Equal(t, 10, next)
	assert.Equal(t, []string{"/signal bitcoin", "/quiet"}, seen)
	assert.Equal(t, []string{"reply:/signal bitcoin"}, replies)
}

func TestPollOnce_BadResponseKeepsOffset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	next, err := newTestNotifier(srv.URL).PollOnce(context.Background(), srv.Client(), 3, func(context.Context, string) string { return "" })
	assert.Error(t, err)
	assert.Equal(t, 3, next)
}
