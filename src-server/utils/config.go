package utils

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
)

type Config struct {
	port string

	eventsFile string

	metricCollectionInterval time.Duration
	locale                   language.Tag
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		eventsFile: func() string {
			eventsFile := os.Getenv("EVENTS_FILE")
			if eventsFile == "" {
				slog.Debug("EVENTS_FILE is not set, using the bundled sample events")
				return ""
			}
			info, err := os.Stat(eventsFile)
			if err != nil {
				slog.Error("can't get info of EVENTS_FILE", "error", err)
				os.Exit(1)
			}
			if info.IsDir() {
				slog.Error("EVENTS_FILE is a directory", "path", eventsFile)
				os.Exit(1)
			}
			slog.Debug("env", "EVENTS_FILE", eventsFile)
			return eventsFile
		}(),

		metricCollectionInterval: func() time.Duration {
			interval := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if interval == "" {
				interval = "15s"
			}
			duration, err := time.ParseDuration(interval)
			if err != nil || duration <= 0 {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "value", interval, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", interval, "duration", duration)
			return duration
		}(),
		locale: func() language.Tag {
			locale := os.Getenv("LOCALE")
			if locale == "" {
				return language.English
			}
			tag, err := language.Parse(locale)
			if err != nil {
				slog.Error("invalid LOCALE", "locale", locale, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "LOCALE", tag)
			return tag
		}(),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get EVENTS_FILE env, empty means the bundled sample events
func (c *Config) GetEventsFile() string {
	return c.eventsFile
}

// Override EVENTS_FILE, e.g. from a command line flag
func (c *Config) SetEventsFile(path string) {
	c.eventsFile = path
}

// Get METRIC_COLLECTION_INTERVAL env, default to 15s
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}

// Get LOCALE env, default to English
func (c *Config) GetLocale() language.Tag {
	return c.locale
}
