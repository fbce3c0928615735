package model

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Calendar groups events by month. Months are always visited in calendar
// order, a month is present only while it holds at least one event, and
// each month's events are sorted by start time.
//
// A Calendar is not safe for concurrent use.
type Calendar struct {
	id      string
	entries [12][]Event
}

func NewCalendar() *Calendar {
	return &Calendar{
		id: uuid.NewString(),
	}
}

func (c *Calendar) GetId() string {
	return c.id
}

// AddEvent inserts e keeping its month sorted by start time. An event with
// the same start time as existing ones goes after them. Events with an
// out-of-range month are ignored.
func (c *Calendar) AddEvent(e Event) {
	if !e.month.Valid() {
		return
	}
	events := c.entries[e.month-1]
	pos := len(events)
	for i, other := range events {
		if e.Precedes(other) {
			pos = i
			break
		}
	}
	c.entries[e.month-1] = slices.Insert(events, pos, e)
}

func (c *Calendar) String() string {
	var sb strings.Builder
	for i, events := range c.entries {
		if len(events) == 0 {
			continue
		}
		sb.WriteString(Month(i + 1).String())
		sb.WriteString("\n")
		for _, e := range events {
			sb.WriteString(e.String())
		}
	}
	return sb.String()
}

func (c *Calendar) TotalEventsInMonth(m Month) int {
	if !m.Valid() {
		return 0
	}
	return len(c.entries[m-1])
}

// MonthsWithMostEvents returns every month tied at the highest event count,
// in calendar order. It's empty when the calendar is.
func (c *Calendar) MonthsWithMostEvents() []Month {
	var months []Month
	most := 0
	for i, events := range c.entries {
		n := len(events)
		if n == 0 || n < most {
			continue
		}
		if n > most {
			most = n
			months = months[:0]
		}
		months = append(months, Month(i+1))
	}
	return months
}

// LongestEvent returns the name of the event with the greatest duration.
// On a tie the first one in calendar order wins.
func (c *Calendar) LongestEvent() (string, bool) {
	var longest *Event
	for i := range c.entries {
		for j := range c.entries[i] {
			if e := &c.entries[i][j]; longest == nil || e.duration > longest.duration {
				longest = e
			}
		}
	}
	if longest == nil {
		return "", false
	}
	return longest.name, true
}

// CancelEvents removes, from each of the given months, every event taking
// place on dayOfWeek and returns how many were removed. Months that aren't
// in the calendar are skipped; months left without events are dropped.
func (c *Calendar) CancelEvents(months []Month, dayOfWeek int) int {
	cancelled := 0
	for _, m := range months {
		if !m.Valid() || len(c.entries[m-1]) == 0 {
			continue
		}
		events := c.entries[m-1]
		kept := make([]Event, 0, len(events))
		for _, e := range events {
			if e.dayOfWeek != dayOfWeek {
				kept = append(kept, e)
			}
		}
		cancelled += len(events) - len(kept)
		if len(kept) == 0 {
			kept = nil
		}
		c.entries[m-1] = kept
	}
	return cancelled
}

// Months returns the months holding events, in calendar order.
func (c *Calendar) Months() []Month {
	var months []Month
	for i, events := range c.entries {
		if len(events) > 0 {
			months = append(months, Month(i+1))
		}
	}
	return months
}

// Len is the number of events across all months.
func (c *Calendar) Len() int {
	total := 0
	for _, events := range c.entries {
		total += len(events)
	}
	return total
}

// Events returns a copy of the events in m, sorted by start time.
func (c *Calendar) Events(m Month) []Event {
	if !m.Valid() {
		return nil
	}
	return slices.Clone(c.entries[m-1])
}
