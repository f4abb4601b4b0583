// Command kbogames prints the KBO games for a day. Without -date it asks for
// today in Seoul and falls back to yesterday when today has no games.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"kbo-games-service/internal/app/games"
	"kbo-games-service/internal/config"
	domaingames "kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/logging"
	"kbo-games-service/internal/providers"
	"kbo-games-service/internal/providers/kbo"
	"kbo-games-service/internal/timeutil"
)

type gamesQuery interface {
	GetGames(ctx context.Context, date time.Time) ([]domaingames.Game, error)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("kbogames", flag.ContinueOnError)
	dateFlag := fs.String("date", "", "day to query (YYYY-MM-DD); defaults to today")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewLogger(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stderr})
	client := kbo.NewClient(kbo.Config{
		BaseURL: cfg.KBO.BaseURL,
		Timeout: cfg.KBO.HTTPTimeout,
		Strict:  cfg.KBO.StrictSchema,
		Logger:  logger,
	})
	svc := games.NewService(providers.NewInstrumentedProvider(client, logger, nil, config.ProviderKBO))

	loc := timeutil.ResolveLocation(cfg.Timezone)
	return printGames(ctx, svc, *dateFlag, time.Now().In(loc), out)
}

func printGames(ctx context.Context, svc gamesQuery, dateArg string, now time.Time, out io.Writer) error {
	if dateArg != "" {
		day, err := timeutil.ParseDate(dateArg)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %w", dateArg, err)
		}
		list, err := svc.GetGames(ctx, day)
		if err != nil {
			return err
		}
		return writeDay(out, day, list)
	}

	today := now
	list, err := svc.GetGames(ctx, today)
	if err != nil {
		return err
	}
	if list != nil {
		return writeDay(out, today, list)
	}

	fmt.Fprintf(out, "No games on %s, checking the previous day.\n", timeutil.FormatDate(today))
	yesterday := today.AddDate(0, 0, -1)
	list, err = svc.GetGames(ctx, yesterday)
	if err != nil {
		return err
	}
	return writeDay(out, yesterday, list)
}

func writeDay(out io.Writer, day time.Time, list []domaingames.Game) error {
	if list == nil {
		_, err := fmt.Fprintf(out, "No games on %s.\n", timeutil.FormatDate(day))
		return err
	}
	if _, err := fmt.Fprintf(out, "%d games on %s\n", len(list), timeutil.FormatDate(day)); err != nil {
		return err
	}
	for _, g := range list {
		if _, err := fmt.Fprintln(out, formatGame(g)); err != nil {
			return err
		}
	}
	return nil
}

func formatGame(g domaingames.Game) string {
	line := fmt.Sprintf("[%s] %s %s vs %s @ %s", g.Status, g.StartTime, g.AwayTeam, g.HomeTeam, g.Stadium)
	if g.Score != nil && g.Score.Parsed() && g.Status != domaingames.StatusScheduled {
		line += fmt.Sprintf(" (%d-%d)", g.Score.Away, g.Score.Home)
	}
	if g.CurrentInning != nil && g.Status == domaingames.StatusInProgress {
		line += fmt.Sprintf(" inning %d", *g.CurrentInning)
	}
	return line
}
