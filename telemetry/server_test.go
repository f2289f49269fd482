package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func testConfig() Config {
	return Config{
		RequestsPerSec: 1000,
		Burst:          1000,
		AllowedOrigins: []string{"*"},
		FeedBuffer:     16,
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	h := NewRouter(testConfig(), NewFeed(1, nil))

	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestMetricsExposesGameCounters(t *testing.T) {
	h := NewRouter(testConfig(), NewFeed(1, nil))

	RecordRoundStart(3)
	RecordApple(2)
	RecordRound("won")
	ObserveUpdate(2 * time.Millisecond)

	rec := get(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{
		"pigem_apples_picked_total",
		`pigem_rounds_total{outcome="won"}`,
		"pigem_apples_remaining 2",
		"pigem_update_seconds_count",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RequestsPerSec = 0.001
	cfg.Burst = 1
	h := NewRouter(cfg, NewFeed(1, nil))

	if rec := get(t, h, "/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}
	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("429 response has no Retry-After header")
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"http://localhost:3000"})

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://evil.example", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/events", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		if got := check(r); got != tt.want {
			t.Errorf("origin %q allowed = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	f := NewFeed(1, nil)

	f.Publish("apple_eaten", map[string]int{"score": 1})
	f.Publish("apple_eaten", map[string]int{"score": 2})

	if n := len(f.broadcast); n != 1 {
		t.Fatalf("%d queued messages, want 1", n)
	}
	var ev struct {
		Event string         `json:"event"`
		Data  map[string]int `json:"data"`
	}
	if err := json.Unmarshal(<-f.broadcast, &ev); err != nil {
		t.Fatalf("queued message is not JSON: %v", err)
	}
	if ev.Event != "apple_eaten" || ev.Data["score"] != 1 {
		t.Errorf("queued %+v, want the first event", ev)
	}
}

func TestNilServerPublish(t *testing.T) {
	var s *Server
	s.Publish("round_ended", nil)
	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on nil server = %v", err)
	}
}

func TestFeedDeliversToClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := NewFeed(8, originChecker([]string{"*"}))
	go feed.Run(ctx)

	srv := httptest.NewServer(NewRouter(testConfig(), feed))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if resp != nil && resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	deadline := time.Now().Add(2 * time.Second)
	for feed.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	feed.Publish("round_ended", map[string]string{"outcome": "lost"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev Event
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("message is not JSON: %v", err)
	}
	if ev.Type != "round_ended" {
		t.Errorf("event type = %q, want round_ended", ev.Type)
	}

	conn.Close()
	deadline = time.Now().Add(2 * time.Second)
	for feed.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client not removed after disconnect")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
