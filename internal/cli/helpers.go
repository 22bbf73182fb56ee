package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/runnerr0/leima/internal/config"
	"github.com/runnerr0/leima/internal/stamp"
	"github.com/runnerr0/leima/internal/storage"
)

// now is replaced in tests.
var now = time.Now

// env is the resolved configuration shared by subcommands.
type env struct {
	cfg         *config.Config
	store       storage.Store
	logger      *slog.Logger
	granularity int
}

// setup loads the config, applies flag overrides and opens the file store.
func setup(g *GlobalFlags) (*env, error) {
	if g == nil {
		g = &GlobalFlags{}
	}
	applyColorProfile(g.NoColor)

	cfg, err := config.LoadOrDefault(g.Config)
	if err != nil {
		return nil, err
	}
	if g.DataDir != "" {
		cfg.Storage.Dir = g.DataDir
	}
	if g.Granularity < 0 {
		return nil, fmt.Errorf("granularity must be positive, got %d", g.Granularity)
	}
	if g.Granularity > 0 {
		cfg.Report.Granularity = g.Granularity
	}

	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Logging.Level, g.Verbose)
	logger.Debug("config resolved", "config", g.Config, "data_dir", dir, "granularity", cfg.Report.Granularity)

	return &env{
		cfg:         cfg,
		store:       storage.NewFileStore(dir, logger),
		logger:      logger,
		granularity: cfg.Report.Granularity,
	}, nil
}

// newLogger returns a text logger on stderr at the given level.
func newLogger(level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// currentWeek returns the ISO week number of today.
func currentWeek() int {
	_, week := now().ISOWeek()
	return week
}

// weekOrCurrent returns week, or the current week when week is zero.
func weekOrCurrent(week int) int {
	if week == 0 {
		return currentWeek()
	}
	return week
}

// weeksOrCurrent returns weeks, or the current week when none are given.
func weeksOrCurrent(weeks []int) []int {
	if len(weeks) == 0 {
		return []int{currentWeek()}
	}
	return weeks
}

// isoWeekStart returns the Monday of the given ISO week.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, (week-1)*7-sinceMonday)
}

// weekdays pairs days with the configured weekday names, dropping days
// past the end of the name list.
func (e *env) weekdays(days []stamp.CorrectedDay) []namedDay {
	names := e.cfg.Report.Weekdays
	n := min(len(days), len(names))
	out := make([]namedDay, n)
	for i := 0; i < n; i++ {
		out[i] = namedDay{Name: names[i], CorrectedDay: days[i]}
	}
	return out
}

// dayName returns the weekday name for position i.
func (e *env) dayName(i int) string {
	if i < len(e.cfg.Report.Weekdays) {
		return e.cfg.Report.Weekdays[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

type namedDay struct {
	Name string
	stamp.CorrectedDay
}
