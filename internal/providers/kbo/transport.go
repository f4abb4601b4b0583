package kbo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func encodeGameListForm(params GameListParams) url.Values {
	form := url.Values{}
	form.Set("leId", strconv.Itoa(params.LeagueID))
	form.Set("srId", params.SeriesIDs)
	form.Set("date", params.Date)
	return form
}

func newGameListRequest(ctx context.Context, baseURL string, params GameListParams) (*http.Request, error) {
	body := encodeGameListForm(params).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+gameListPath, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Origin", upstreamOrigin)
	req.Header.Set("Referer", upstreamReferer)
	return req, nil
}
