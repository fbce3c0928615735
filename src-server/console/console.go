package console

import (
	"bufio"
	"evcal/src-server/model"
	"evcal/src-server/utils"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const menu = `
========== Event calendar ==========
1. Show calendar
2. Events in a month
3. Months with most events
4. Longest event
5. Cancel events
0. Exit
Option: `

// Console is an interactive text menu over the shared calendar.
type Console struct {
	as  *utils.AppState
	in  *bufio.Scanner
	out io.Writer
}

func New(as *utils.AppState, in io.Reader, out io.Writer) *Console {
	return &Console{
		as:  as,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run shows the menu until the user picks 0 or the input ends.
func (c *Console) Run() error {
	for {
		fmt.Fprint(c.out, menu)
		option, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}

		switch option {
		case "1":
			c.showCalendar()
		case "2":
			c.totalInMonth()
		case "3":
			c.busiestMonths()
		case "4":
			c.longestEvent()
		case "5":
			c.cancelEvents()
		case "0":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown option %q\n", option)
		}
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) showCalendar() {
	c.as.WithCalendar(func(cal *model.Calendar) {
		if cal.Len() == 0 {
			fmt.Fprintln(c.out, "The calendar is empty")
			return
		}
		fmt.Fprint(c.out, cal)
	})
}

func (c *Console) totalInMonth() {
	input, ok := c.prompt("Month: ")
	if !ok {
		return
	}
	month, err := model.ParseMonth(input)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid month %q\n", input)
		return
	}
	c.as.WithCalendar(func(cal *model.Calendar) {
		fmt.Fprintf(c.out, "Events in %s = %d\n", month.Label(c.as.Config.GetLocale()), cal.TotalEventsInMonth(month))
	})
}

func (c *Console) busiestMonths() {
	c.as.WithCalendar(func(cal *model.Calendar) {
		fmt.Fprintf(c.out, "Month(s) with most events: %s\n", c.labels(cal.MonthsWithMostEvents()))
	})
}

func (c *Console) longestEvent() {
	c.as.WithCalendar(func(cal *model.Calendar) {
		name, ok := cal.LongestEvent()
		if !ok {
			fmt.Fprintln(c.out, "The calendar is empty")
			return
		}
		fmt.Fprintf(c.out, "Longest event: %s\n", name)
	})
}

func (c *Console) cancelEvents() {
	input, ok := c.prompt("Months (comma separated): ")
	if !ok {
		return
	}
	months, err := model.ParseMonths(input)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid months: %v\n", err)
		return
	}

	input, ok = c.prompt("Day of week (1 Monday ... 7 Sunday): ")
	if !ok {
		return
	}
	day, err := strconv.Atoi(input)
	if err != nil || day < 1 || day > 7 {
		fmt.Fprintf(c.out, "Invalid day of week %q\n", input)
		return
	}

	var cancelled int
	startTimer := time.Now()
	c.as.WithCalendar(func(cal *model.Calendar) {
		cancelled = cal.CancelEvents(months, day)
	})
	slog.Debug("events cancelled", "months", months, "day", day, "cancelled", cancelled, "took", time.Since(startTimer))
	c.as.MetricChans.Record(c.as.MetricChans.CancelledEvents, float64(cancelled))
	fmt.Fprintf(c.out, "Cancelled %d event(s) on %s in %s\n", cancelled, model.WeekdayName(day), c.labels(months))
}

func (c *Console) labels(months []model.Month) string {
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = m.Label(c.as.Config.GetLocale())
	}
	return "[" + strings.Join(labels, ", ") + "]"
}
