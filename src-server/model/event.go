package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time in minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Event is a single non-recurring occurrence. It can't be changed once built.
type Event struct {
	name      string
	month     Month
	dayOfWeek int       // 1 - Monday ... 7 - Sunday
	startTime TimeOfDay // orders events inside a month
	duration  int       // minutes
}

// NewEvent doesn't validate its arguments, call Validate when the values
// come from outside.
func NewEvent(name string, month Month, dayOfWeek int, startTime TimeOfDay, duration int) Event {
	return Event{
		name:      name,
		month:     month,
		dayOfWeek: dayOfWeek,
		startTime: startTime,
		duration:  duration,
	}
}

// #region Getters

func (e Event) GetName() string {
	return e.name
}

func (e Event) GetMonth() Month {
	return e.month
}

func (e Event) GetDayOfWeek() int {
	return e.dayOfWeek
}

func (e Event) GetStartTime() TimeOfDay {
	return e.startTime
}

func (e Event) GetDuration() int {
	return e.duration
}

// #endregion

// Precedes reports whether e starts strictly before other.
func (e Event) Precedes(other Event) bool {
	return e.startTime < other.startTime
}

func (e Event) Validate() error {
	switch {
	case strings.TrimSpace(e.name) == "":
		return fmt.Errorf("(Event).Validate: %w", ErrNameBlank)
	case !e.month.Valid():
		return fmt.Errorf("(Event).Validate: %s: %w", e.month, ErrInvalidMonth)
	case e.dayOfWeek < 1 || e.dayOfWeek > 7:
		return fmt.Errorf("(Event).Validate: got %d: %w", e.dayOfWeek, ErrInvalidDayOfWeek)
	case e.startTime < 0 || e.startTime >= 24*60:
		return fmt.Errorf("(Event).Validate: got %d minutes: %w", int(e.startTime), ErrInvalidStartTime)
	case e.duration < 0:
		return fmt.Errorf("(Event).Validate: got %d: %w", e.duration, ErrNegativeDuration)
	}
	return nil
}

func (e Event) String() string {
	return fmt.Sprintf("\t%s | %s %s | %d min\n", e.name, WeekdayName(e.dayOfWeek), e.startTime, e.duration)
}

// WeekdayName maps a day of week code (1 - Monday ... 7 - Sunday) to its
// English name.
func WeekdayName(dayOfWeek int) string {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return "Day(" + strconv.Itoa(dayOfWeek) + ")"
	}
	return time.Weekday(dayOfWeek % 7).String()
}
