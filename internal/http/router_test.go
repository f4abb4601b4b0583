package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"kbo-games-service/internal/app/games"
	domaingames "kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/http/handlers"
	"kbo-games-service/internal/testutil"
)

func newTestRouter(stub *testutil.StubProvider) nethttp.Handler {
	logger, _ := testutil.NewBufferLogger()
	return NewRouter(handlers.NewHandler(games.NewService(stub), nil, logger), logger, nil)
}

func TestRouterServesHealthAndGames(t *testing.T) {
	stub := &testutil.StubProvider{Games: []domaingames.Game{testutil.SampleGame("g1")}}
	router := newTestRouter(stub)

	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodGet, "/health", nil), nethttp.StatusOK)

	rr := testutil.Serve(router, nethttp.MethodGet, "/games?date=2024-09-19", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header from middleware")
	}
}

func TestRouterRejectsOtherMethods(t *testing.T) {
	router := newTestRouter(&testutil.StubProvider{})

	rr := testutil.Serve(router, nethttp.MethodPost, "/games", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)
}

func TestRouterUnknownPath(t *testing.T) {
	router := newTestRouter(&testutil.StubProvider{})

	rr := testutil.Serve(router, nethttp.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestRouterAddsCORSHeaders(t *testing.T) {
	stub := &testutil.StubProvider{Games: []domaingames.Game{testutil.SampleGame("g1")}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(nethttp.MethodGet, "/games?date=2024-09-19", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}
