package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpggio/citizens/internal/config"
	"github.com/rpggio/citizens/internal/domain/citizen"
	"github.com/rpggio/citizens/internal/fixtures"
	"github.com/rpggio/citizens/internal/metrics"
	"github.com/rpggio/citizens/internal/sqlite"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type query struct {
	id       int
	hasID    bool
	minAge   int
	maxAge   int
	hasAge   bool
	lastName string
	hasName  bool
	order    citizen.Order
}

func parseFlags(args []string, stderr io.Writer) (query, error) {
	var (
		q     query
		order string
	)
	fs := flag.NewFlagSet("citizens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&q.id, "id", 0, "find the citizen with this id")
	fs.IntVar(&q.minAge, "age-min", 0, "lower bound of an age range query (inclusive)")
	fs.IntVar(&q.maxAge, "age-max", 150, "upper bound of an age range query (inclusive)")
	fs.StringVar(&q.lastName, "last-name", "", "find citizens with this last name, ignoring case")
	fs.StringVar(&order, "list", string(citizen.OrderByID), "list everyone ordered by id, age or last_name")
	if err := fs.Parse(args); err != nil {
		return query{}, err
	}

	picked := 0
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			q.hasID = true
			picked++
		case "age-min", "age-max":
			if !q.hasAge {
				q.hasAge = true
				picked++
			}
		case "last-name":
			q.hasName = true
			picked++
		case "list":
			picked++
		}
	})
	if picked > 1 {
		return query{}, errors.New("choose one of -id, -age-min/-age-max, -last-name or -list")
	}

	o, err := citizen.ParseOrder(order)
	if err != nil {
		return query{}, err
	}
	q.order = o
	return q, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	q, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "usage error: %v\n", err)
		}
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return exitError
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	var clock citizen.Clock = citizen.SystemClock{}
	if today, pinned, _ := cfg.Today(); pinned {
		clock = citizen.FixedClock(today)
	}

	reg := prometheus.NewRegistry()
	svc := citizen.NewService(citizen.NewIndex(clock, nil), metrics.New(reg), logger)

	if err := load(ctx, cfg.Source, svc, logger); err != nil {
		logger.Error("failed to load citizens", "error", err)
		return exitError
	}

	code := answer(q, svc, clock, stdout, logger)

	if cfg.Metrics.Path != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.Path, reg); err != nil {
			logger.Error("failed to write metrics", "path", cfg.Metrics.Path, "error", err)
			return exitError
		}
	}
	return code
}

func load(ctx context.Context, src config.SourceConfig, svc *citizen.Service, logger *slog.Logger) error {
	switch src.Kind {
	case config.SourceYAML:
		_, err := svc.Load(ctx, fixtures.File{Path: src.Path})
		return err
	case config.SourceSQLite:
		db, err := sqlite.New(src.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.RunMigrations(); err != nil {
			return err
		}
		_, err = svc.Load(ctx, sqlite.NewPersonRepository(db))
		return err
	default:
		logger.Debug("no citizen source configured")
		return nil
	}
}

func answer(q query, svc *citizen.Service, clock citizen.Clock, stdout io.Writer, logger *slog.Logger) int {
	var result any
	now := clock.Now()
	switch {
	case q.hasID:
		p, err := svc.Get(q.id)
		if err != nil {
			logger.Info("lookup failed", "id", q.id, "error", err)
			return exitError
		}
		result = p.View(now)
	case q.hasAge:
		result = views(svc.ByAge(q.minAge, q.maxAge), now)
	case q.hasName:
		result = views(svc.ByLastName(q.lastName), now)
	default:
		people, err := svc.List(q.order)
		if err != nil {
			logger.Error("list failed", "error", err)
			return exitError
		}
		result = views(people, now)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("failed to write result", "error", err)
		return exitError
	}
	return exitOK
}

func views(people []*citizen.Person, now time.Time) []citizen.PersonView {
	out := make([]citizen.PersonView, len(people))
	for i, p := range people {
		out[i] = p.View(now)
	}
	return out
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
