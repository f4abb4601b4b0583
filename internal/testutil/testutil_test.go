package testutil

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	domaingames "kbo-games-service/internal/domain/games"
)

func TestStubProviderTracksCallsAndDate(t *testing.T) {
	stub := &StubProvider{Games: []domaingames.Game{SampleGame("g1")}, Err: errors.New("boom")}
	day := Day(2024, 9, 19)

	games, err := stub.FetchGames(context.Background(), day)
	if err == nil || len(games) != 1 {
		t.Fatalf("expected configured games and error, got %+v %v", games, err)
	}
	if stub.Calls.Load() != 1 || !stub.LastDate().Equal(day) {
		t.Fatalf("expected one call on %s, got %d on %s", day, stub.Calls.Load(), stub.LastDate())
	}
}

func TestServeAndDecode(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	rr := Serve(h, http.MethodGet, "/health", nil)
	AssertStatus(t, rr, http.StatusOK)

	var body map[string]string
	DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestBufferLoggerCapturesOutput(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("captured")
	if !strings.Contains(buf.String(), "captured") {
		t.Fatalf("expected buffer to capture log line, got %q", buf.String())
	}
}

func TestNowAt(t *testing.T) {
	fixed := time.Date(2024, 9, 19, 18, 30, 0, 0, time.UTC)
	if got := NowAt(fixed)(); !got.Equal(fixed) {
		t.Fatalf("expected fixed time, got %s", got)
	}
}
