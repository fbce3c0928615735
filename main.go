package main

import (
	"evcal/src-server/loader"
	"evcal/src-server/model"
	"evcal/src-server/utils"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	level := slog.LevelDebug
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			slog.Warn("invalid LOG_LEVEL, using debug", "value", logLevel)
		}
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

var (
	eventsFile string

	rootCmd = &cobra.Command{
		Use:   "evcal",
		Short: "A small calendar of non-recurring events grouped by month",
		Long: "evcal keeps a set of non-overlapping events grouped by month and answers " +
			"a few questions about them: how many events a month has, which months are " +
			"the busiest, which event lasts longest, and cancels events by day of week.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&eventsFile, "events", "e", "", "Events file (.txt or .yaml). Default: $EVENTS_FILE or the bundled sample events")
	rootCmd.AddCommand(demoCmd, consoleCmd, serveCmd)
}

// newLoadedAppState builds the app state and fills its calendar from the
// configured events file.
func newLoadedAppState() (*utils.AppState, error) {
	as := utils.NewAppState()
	if eventsFile != "" {
		as.Config.SetEventsFile(eventsFile)
	}

	l := loader.New(as.When, as.Config.GetLocale())
	var (
		events []model.Event
		err    error
	)
	switch path := as.Config.GetEventsFile(); path {
	case "":
		events, err = l.Default()
	default:
		events, err = l.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("newLoadedAppState: %w", err)
	}

	as.WithCalendar(func(cal *model.Calendar) {
		n := loader.Into(cal, events)
		slog.Info("calendar loaded", "calendar", cal.GetId(), "events", n, "months", len(cal.Months()))
	})
	return as, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
