package kbo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/logging"
	"kbo-games-service/internal/providers"
	"kbo-games-service/internal/timeutil"
)

// Config controls how the KBO client reaches the upstream endpoint.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	// Strict validates every raw record and fails the fetch with a
	// providers.SchemaError instead of mapping incomplete records.
	Strict bool
	Logger *slog.Logger
}

// Client fetches the daily game list from koreabaseball.com and maps it to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	strict     bool
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewClient constructs a KBO client with the provided configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		strict:     cfg.Strict,
		logger:     cfg.Logger,
	}
	if c.strict {
		c.validate = newValidator()
	}
	return c
}

// FetchGames retrieves every series' games on date's calendar day.
// The result keeps upstream order and is empty when the day has no games.
func (c *Client) FetchGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	payload, err := c.FetchGameList(ctx, GameListParams{
		LeagueID:  LeagueKBO,
		SeriesIDs: AllSeriesIDs,
		Date:      timeutil.FormatCompactDate(date),
	})
	if err != nil {
		return nil, err
	}
	return c.mapGames(payload.Game)
}

// FetchGameList issues one GetKboGameList POST and returns the decoded envelope.
// Non-2xx responses fail with *providers.TransportError; network errors are
// returned unchanged.
func (c *Client) FetchGameList(ctx context.Context, params GameListParams) (GameListResponse, error) {
	req, err := newGameListRequest(ctx, c.baseURL, params)
	if err != nil {
		return GameListResponse{}, crerr.Wrap(err, "kbo: build game list request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logFailure(ctx, params, err)
		return GameListResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		tErr := &providers.TransportError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
		c.logFailure(ctx, params, tErr)
		return GameListResponse{}, tErr
	}

	var payload GameListResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&payload); err != nil {
		wrapped := crerr.Wrap(err, "kbo: decode game list")
		c.logFailure(ctx, params, wrapped)
		return GameListResponse{}, wrapped
	}
	return payload, nil
}

func (c *Client) mapGames(raw []RawGame) ([]games.Game, error) {
	out := make([]games.Game, 0, len(raw))
	for i, g := range raw {
		if c.strict {
			if err := validateRawGame(c.validate, i, g); err != nil {
				return nil, err
			}
		}
		out = append(out, mapRawGame(g))
	}
	return out, nil
}

func (c *Client) logFailure(ctx context.Context, params GameListParams, err error) {
	args := []any{
		slog.String(logging.FieldProvider, providerName),
		slog.String(logging.FieldDate, params.Date),
		slog.Int(logging.FieldLeague, params.LeagueID),
		slog.String(logging.FieldSeries, params.SeriesIDs),
	}
	if tErr, ok := providers.AsTransportError(err); ok {
		args = append(args, slog.Int(logging.FieldUpstream, tErr.StatusCode))
	}
	logging.Error(ctx, logging.FromContext(ctx, c.logger), "kbo game list fetch failed", err, args...)
}
