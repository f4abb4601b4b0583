package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"time"

	domaingames "kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/logging"
	"kbo-games-service/internal/providers"
	"kbo-games-service/internal/timeutil"
)

type nowFunc func() time.Time

// GamesQuery is the read side the handlers depend on.
type GamesQuery interface {
	GetGames(ctx context.Context, date time.Time) ([]domaingames.Game, error)
}

// Handler wires HTTP routes to the game query service.
type Handler struct {
	svc    GamesQuery
	loc    *time.Location
	logger *slog.Logger
	now    nowFunc
}

// NewHandler constructs a Handler. loc decides what "today" means when no date is given.
func NewHandler(svc GamesQuery, loc *time.Location, logger *slog.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		svc:    svc,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Games returns the games for ?date=YYYY-MM-DD, defaulting to today in the configured location.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = timeutil.FormatDate(h.now().In(h.loc))
	}
	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return
	}

	games, err := h.svc.GetGames(r.Context(), date)
	if err != nil {
		status, msg := statusForError(err)
		logging.Error(r.Context(), logger, "games query failed", err, logging.FieldDate, dateStr)
		writeError(w, r, status, msg, h.logger)
		return
	}
	if games == nil {
		logging.Info(logger, "no games scheduled", logging.FieldDate, dateStr)
		writeError(w, r, nethttp.StatusNotFound, "no games scheduled", h.logger)
		return
	}

	logging.Info(logger, "served games", logging.FieldDate, dateStr, logging.FieldCount, len(games))
	writeJSON(w, nethttp.StatusOK, domaingames.NewDayResponse(dateStr, games), h.logger)
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, providers.ErrProviderUnavailable):
		return nethttp.StatusServiceUnavailable, "provider unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nethttp.StatusGatewayTimeout, "upstream timed out"
	}
	if _, ok := providers.AsSchemaError(err); ok {
		return nethttp.StatusBadGateway, "upstream returned malformed data"
	}
	return nethttp.StatusBadGateway, "upstream unavailable"
}
