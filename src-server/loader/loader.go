package loader

import (
	"bufio"
	_ "embed"
	"errors"
	"evcal/src-server/model"
	"evcal/src-server/utils"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed events.txt
var defaultEvents string

type Format int

const (
	// one event per line: name;month;dayOfWeek;start;duration
	FormatText Format = iota
	// a sequence of {name, month, day, start, duration} mappings
	FormatYAML
)

// FormatFromPath picks the format by file extension, defaulting to text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

var ErrMalformedLine = errors.New("expected 5 fields separated by ';'")

type record struct {
	Name     string `yaml:"name"`
	Month    string `yaml:"month"`
	Day      int    `yaml:"day"`
	Start    string `yaml:"start"`
	Duration int    `yaml:"duration"`
}

// Loader turns raw event records into validated model.Event values.
type Loader struct {
	when   *when.Parser
	locale language.Tag
}

// New creates a Loader. A nil parser gets one with the English and common
// rules.
func New(parser *when.Parser, locale language.Tag) *Loader {
	if parser == nil {
		parser = when.New(nil)
		parser.Add(en.All...)
		parser.Add(common.All...)
	}
	return &Loader{
		when:   parser,
		locale: locale,
	}
}

func (l *Loader) Parse(r io.Reader, format Format) ([]model.Event, error) {
	switch format {
	case FormatYAML:
		return l.parseYAML(r)
	default:
		return l.parseText(r)
	}
}

func (l *Loader) LoadFile(path string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("(*Loader).LoadFile: %w", err)
	}
	defer f.Close()

	if hash, err := utils.GetFileHash(path); err == nil {
		slog.Debug("loading events", "path", path, "sha256", hash)
	}

	events, err := l.Parse(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("(*Loader).LoadFile: %s: %w", path, err)
	}
	return events, nil
}

// Default returns the bundled sample events.
func (l *Loader) Default() ([]model.Event, error) {
	return l.Parse(strings.NewReader(defaultEvents), FormatText)
}

// Into adds every event to cal and returns how many were added.
func Into(cal *model.Calendar, events []model.Event) int {
	for _, e := range events {
		cal.AddEvent(e)
	}
	return len(events)
}

func (l *Loader) parseText(r io.Reader) ([]model.Event, error) {
	var events []model.Event
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) != 5 {
			return nil, newParseError("malformed line", ErrMalformedLine, map[string]any{
				"position": lineNo,
				"fields":   len(fields),
			})
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		day, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, newParseError("invalid day of week", err, map[string]any{
				"position": lineNo,
				"value":    fields[2],
			})
		}
		duration, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, newParseError("invalid duration", err, map[string]any{
				"position": lineNo,
				"value":    fields[4],
			})
		}

		event, err := l.toEvent(record{
			Name:     fields[0],
			Month:    fields[1],
			Day:      day,
			Start:    fields[3],
			Duration: duration,
		}, lineNo)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("(*Loader).parseText: %w", err)
	}
	return events, nil
}

func (l *Loader) parseYAML(r io.Reader) ([]model.Event, error) {
	var records []record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("(*Loader).parseYAML: %w", err)
	}

	events := make([]model.Event, 0, len(records))
	for i, rec := range records {
		event, err := l.toEvent(rec, i+1)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (l *Loader) toEvent(rec record, position int) (model.Event, error) {
	month, err := model.ParseMonth(rec.Month)
	if err != nil {
		return model.Event{}, newParseError("invalid month", err, map[string]any{
			"position": position,
			"value":    rec.Month,
		})
	}
	start, err := l.parseStart(rec.Start)
	if err != nil {
		return model.Event{}, newParseError("invalid start time", err, map[string]any{
			"position": position,
			"value":    rec.Start,
		})
	}

	event := model.NewEvent(utils.CleanupString(rec.Name, l.locale), month, rec.Day, start, rec.Duration)
	if err := event.Validate(); err != nil {
		return model.Event{}, newParseError("invalid event", err, map[string]any{
			"position": position,
			"name":     rec.Name,
		})
	}
	return event, nil
}

// parseStart reads "HH:MM", falling back to natural language ("9am",
// "at 2:30 pm").
func (l *Loader) parseStart(s string) (model.TimeOfDay, error) {
	if t, err := time.Parse("15:04", s); err == nil {
		return model.NewTimeOfDay(t.Hour(), t.Minute()), nil
	}

	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	result, err := l.when.Parse(s, base)
	if err != nil {
		return 0, fmt.Errorf("(*Loader).parseStart: %w", err)
	}
	if result == nil {
		return 0, fmt.Errorf("(*Loader).parseStart: %q: %w", s, model.ErrInvalidStartTime)
	}
	return model.NewTimeOfDay(result.Time.Hour(), result.Time.Minute()), nil
}
