package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kbo-games-service/internal/app/games"
	domaingames "kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/providers"
	"kbo-games-service/internal/testutil"
)

func newTestHandler(stub *testutil.StubProvider, loc *time.Location) *Handler {
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(games.NewService(stub), loc, logger)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{}, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestGamesForExplicitDate(t *testing.T) {
	stub := &testutil.StubProvider{Games: []domaingames.Game{testutil.SampleGame("20240919HHOB0")}}
	h := newTestHandler(stub, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games?date=2024-09-19", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.DayResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Date != "2024-09-19" {
		t.Fatalf("expected date 2024-09-19, got %s", resp.Date)
	}
	if len(resp.Games) != 1 || resp.Games[0].ID != "20240919HHOB0" {
		t.Fatalf("unexpected games %+v", resp.Games)
	}
	if want := testutil.Day(2024, 9, 19); !stub.LastDate().Equal(want) {
		t.Fatalf("expected query for %s, got %s", want, stub.LastDate())
	}
}

func TestGamesDefaultsToTodayInConfiguredLocation(t *testing.T) {
	stub := &testutil.StubProvider{Games: []domaingames.Game{testutil.SampleGame("g1")}}
	seoul := time.FixedZone("KST", 9*60*60)
	h := newTestHandler(stub, seoul)
	// 16:00 UTC on the 18th is already the 19th in Seoul.
	h.now = testutil.NowAt(time.Date(2024, 9, 18, 16, 0, 0, 0, time.UTC))

	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.DayResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Date != "2024-09-19" {
		t.Fatalf("expected Seoul date 2024-09-19, got %s", resp.Date)
	}
}

func TestGamesInvalidDate(t *testing.T) {
	stub := &testutil.StubProvider{}
	h := newTestHandler(stub, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games?date=20240919", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	if stub.Calls.Load() != 0 {
		t.Fatalf("expected no provider call on invalid date")
	}
}

func TestGamesNoGamesReturnsNotFound(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{}, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games?date=2024-12-25", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "no games scheduled" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestGamesErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "transport", err: &providers.TransportError{Provider: "kbo", StatusCode: 500}, want: http.StatusBadGateway},
		{name: "schema", err: &providers.SchemaError{Provider: "kbo", Field: "G_ID", Err: errors.New("required")}, want: http.StatusBadGateway},
		{name: "network", err: errors.New("dial tcp: connection refused"), want: http.StatusBadGateway},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "unavailable", err: providers.ErrProviderUnavailable, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&testutil.StubProvider{Err: tt.err}, nil)
			rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games?date=2024-09-19", nil)
			testutil.AssertStatus(t, rr, tt.want)
			if !strings.Contains(rr.Body.String(), `"error"`) {
				t.Fatalf("expected error body, got %s", rr.Body.String())
			}
		})
	}
}
