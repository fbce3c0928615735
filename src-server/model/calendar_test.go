package model_test

import (
	"evcal/src-server/model"
	"slices"
	"strings"
	"testing"
)

func assertSorted(t *testing.T, cal *model.Calendar) {
	t.Helper()
	for _, m := range model.Months {
		events := cal.Events(m)
		for i := 1; i < len(events); i++ {
			if events[i].Precedes(events[i-1]) {
				t.Errorf("%s: %q starts before %q but comes after it", m, events[i].GetName(), events[i-1].GetName())
			}
		}
	}
}

func assertNoEmptyMonths(t *testing.T, cal *model.Calendar) {
	t.Helper()
	for _, m := range cal.Months() {
		if cal.TotalEventsInMonth(m) == 0 {
			t.Errorf("%s is present without events", m)
		}
	}
}

func TestAddEvent(t *testing.T) {
	// case: two events in the same month
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("Standup", model.March, 1, model.NewTimeOfDay(9, 0), 15))
		cal.AddEvent(model.NewEvent("Review", model.March, 3, model.NewTimeOfDay(14, 0), 60))

		if got := cal.TotalEventsInMonth(model.March); got != 2 {
			t.Errorf("TotalEventsInMonth(MARCH) = %d, want 2", got)
		}
		rendered := cal.String()
		standup, review := strings.Index(rendered, "Standup"), strings.Index(rendered, "Review")
		if standup == -1 || review == -1 || standup > review {
			t.Errorf("Standup should be rendered before Review:\n%s", rendered)
		}
	}()

	// case: insertion out of order keeps the month sorted
	func() {
		cal := model.NewCalendar()
		for _, hour := range []int{18, 7, 12, 9, 23, 0} {
			cal.AddEvent(model.NewEvent("e", model.June, 2, model.NewTimeOfDay(hour, 30), 10))
		}
		assertSorted(t, cal)
		events := cal.Events(model.June)
		if len(events) != 6 || events[0].GetStartTime().Hour() != 0 || events[5].GetStartTime().Hour() != 23 {
			t.Errorf("unexpected order: %v", events)
		}
	}()

	// case: equal start times keep insertion order
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("first", model.May, 1, model.NewTimeOfDay(10, 0), 10))
		cal.AddEvent(model.NewEvent("second", model.May, 1, model.NewTimeOfDay(10, 0), 10))
		events := cal.Events(model.May)
		if events[0].GetName() != "first" || events[1].GetName() != "second" {
			t.Errorf("got %q, %q", events[0].GetName(), events[1].GetName())
		}
	}()

	// case: out-of-range month is ignored
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("nowhere", model.Month(13), 1, 0, 10))
		if cal.Len() != 0 || cal.String() != "" {
			t.Error("event with invalid month should be ignored")
		}
	}()
}

func TestRender(t *testing.T) {
	cal := model.NewCalendar()
	if cal.String() != "" {
		t.Error("empty calendar should render as empty text")
	}

	cal.AddEvent(model.NewEvent("Dentist", model.November, 5, model.NewTimeOfDay(17, 15), 45))
	cal.AddEvent(model.NewEvent("Ski trip", model.January, 6, model.NewTimeOfDay(8, 0), 480))
	cal.AddEvent(model.NewEvent("Breakfast", model.January, 7, model.NewTimeOfDay(7, 5), 30))

	want := "JANUARY\n" +
		"\tBreakfast | Sunday 07:05 | 30 min\n" +
		"\tSki trip | Saturday 08:00 | 480 min\n" +
		"NOVEMBER\n" +
		"\tDentist | Friday 17:15 | 45 min\n"
	if got := cal.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTotalEventsInMonth(t *testing.T) {
	cal := model.NewCalendar()
	if got := cal.TotalEventsInMonth(model.April); got != 0 {
		t.Errorf("absent month: got %d, want 0", got)
	}
	if got := cal.TotalEventsInMonth(model.Month(0)); got != 0 {
		t.Errorf("invalid month: got %d, want 0", got)
	}

	for i := 0; i < 4; i++ {
		cal.AddEvent(model.NewEvent("e", model.April, i%2+1, model.NewTimeOfDay(8+i, 0), 30))
	}
	if got := cal.TotalEventsInMonth(model.April); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	cal.CancelEvents([]model.Month{model.April}, 1)
	if got := cal.TotalEventsInMonth(model.April); got != 2 {
		t.Errorf("after cancelling: got %d, want 2", got)
	}
	if got := cal.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestMonthsWithMostEvents(t *testing.T) {
	// case: empty calendar
	func() {
		if got := model.NewCalendar().MonthsWithMostEvents(); len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	}()

	// case: tie between FEBRUARY and MARCH
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("a", model.March, 1, model.NewTimeOfDay(9, 0), 10))
		cal.AddEvent(model.NewEvent("b", model.April, 1, model.NewTimeOfDay(9, 0), 10))
		cal.AddEvent(model.NewEvent("c", model.February, 1, model.NewTimeOfDay(9, 0), 10))
		cal.AddEvent(model.NewEvent("d", model.March, 2, model.NewTimeOfDay(10, 0), 10))
		cal.AddEvent(model.NewEvent("e", model.February, 2, model.NewTimeOfDay(10, 0), 10))

		want := []model.Month{model.February, model.March}
		if got := cal.MonthsWithMostEvents(); !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}()

	// case: single maximum
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("a", model.December, 1, model.NewTimeOfDay(9, 0), 10))
		cal.AddEvent(model.NewEvent("b", model.December, 1, model.NewTimeOfDay(10, 0), 10))
		cal.AddEvent(model.NewEvent("c", model.January, 1, model.NewTimeOfDay(9, 0), 10))

		want := []model.Month{model.December}
		if got := cal.MonthsWithMostEvents(); !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}()

	// case: a single month
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("a", model.July, 1, model.NewTimeOfDay(9, 0), 10))
		want := []model.Month{model.July}
		if got := cal.MonthsWithMostEvents(); !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}()
}

func TestLongestEvent(t *testing.T) {
	// case: empty calendar
	func() {
		if name, ok := model.NewCalendar().LongestEvent(); ok || name != "" {
			t.Errorf("got (%q, %v), want (\"\", false)", name, ok)
		}
	}()

	// case: different months
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("A", model.August, 1, model.NewTimeOfDay(9, 0), 30))
		cal.AddEvent(model.NewEvent("B", model.February, 1, model.NewTimeOfDay(9, 0), 90))
		if name, ok := cal.LongestEvent(); !ok || name != "B" {
			t.Errorf("got (%q, %v), want (\"B\", true)", name, ok)
		}
	}()

	// case: ties go to the first one in calendar order
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("late", model.October, 1, model.NewTimeOfDay(8, 0), 120))
		cal.AddEvent(model.NewEvent("evening", model.March, 1, model.NewTimeOfDay(20, 0), 120))
		cal.AddEvent(model.NewEvent("morning", model.March, 1, model.NewTimeOfDay(7, 0), 120))
		if name, _ := cal.LongestEvent(); name != "morning" {
			t.Errorf("got %q, want %q", name, "morning")
		}
	}()

	// case: zero durations still yield an event
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("reminder", model.May, 1, model.NewTimeOfDay(9, 0), 0))
		if name, ok := cal.LongestEvent(); !ok || name != "reminder" {
			t.Errorf("got (%q, %v)", name, ok)
		}
	}()
}

func TestCancelEvents(t *testing.T) {
	// case: two matches in the same month, adjacent
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("x", model.March, 3, model.NewTimeOfDay(9, 0), 10))
		cal.AddEvent(model.NewEvent("y", model.March, 3, model.NewTimeOfDay(10, 0), 10))
		cal.AddEvent(model.NewEvent("z", model.March, 5, model.NewTimeOfDay(11, 0), 10))

		if got := cal.CancelEvents([]model.Month{model.March}, 3); got != 2 {
			t.Errorf("cancelled %d, want 2", got)
		}
		events := cal.Events(model.March)
		if len(events) != 1 || events[0].GetDayOfWeek() != 5 {
			t.Errorf("remaining events: %v", events)
		}
		assertNoEmptyMonths(t, cal)
	}()

	// case: absent month doesn't change anything
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("x", model.March, 3, model.NewTimeOfDay(9, 0), 10))
		before := cal.String()
		if got := cal.CancelEvents([]model.Month{model.September, model.Month(42)}, 3); got != 0 {
			t.Errorf("cancelled %d, want 0", got)
		}
		if cal.String() != before {
			t.Error("calendar changed")
		}
	}()

	// case: emptied month disappears
	func() {
		cal := model.NewCalendar()
		cal.AddEvent(model.NewEvent("x", model.June, 6, model.NewTimeOfDay(9, 0), 10))
		cal.AddEvent(model.NewEvent("y", model.June, 6, model.NewTimeOfDay(12, 0), 10))
		cal.AddEvent(model.NewEvent("z", model.July, 6, model.NewTimeOfDay(12, 0), 10))

		if got := cal.CancelEvents([]model.Month{model.June, model.February}, 6); got != 2 {
			t.Errorf("cancelled %d, want 2", got)
		}
		if cal.TotalEventsInMonth(model.June) != 0 {
			t.Error("JUNE should be empty")
		}
		if strings.Contains(cal.String(), "JUNE") {
			t.Error("JUNE should not be rendered")
		}
		if !slices.Equal(cal.Months(), []model.Month{model.July}) {
			t.Errorf("Months() = %v", cal.Months())
		}
		assertNoEmptyMonths(t, cal)
	}()

	// case: repeated months and multiple months
	func() {
		cal := model.NewCalendar()
		for i, m := range []model.Month{model.February, model.March, model.May, model.June, model.February} {
			cal.AddEvent(model.NewEvent("sat", m, 6, model.NewTimeOfDay(10+i, 0), 60))
			cal.AddEvent(model.NewEvent("mon", m, 1, model.NewTimeOfDay(2+i, 0), 60))
		}
		months := []model.Month{model.February, model.March, model.February, model.August}
		if got := cal.CancelEvents(months, 6); got != 3 {
			t.Errorf("cancelled %d, want 3", got)
		}
		if got := cal.TotalEventsInMonth(model.February); got != 2 {
			t.Errorf("FEBRUARY has %d events, want 2", got)
		}
		if got := cal.TotalEventsInMonth(model.May); got != 2 {
			t.Errorf("MAY has %d events, want 2", got)
		}
		assertSorted(t, cal)
		assertNoEmptyMonths(t, cal)
	}()
}

func TestEventsIsACopy(t *testing.T) {
	cal := model.NewCalendar()
	cal.AddEvent(model.NewEvent("a", model.May, 1, model.NewTimeOfDay(9, 0), 10))
	events := cal.Events(model.May)
	events[0] = model.NewEvent("b", model.May, 1, model.NewTimeOfDay(9, 0), 10)
	if cal.Events(model.May)[0].GetName() != "a" {
		t.Error("Events should return a copy")
	}
}

func TestCalendarID(t *testing.T) {
	a, b := model.NewCalendar(), model.NewCalendar()
	if a.GetId() == "" || a.GetId() == b.GetId() {
		t.Errorf("ids should be unique and non-empty: %q %q", a.GetId(), b.GetId())
	}
}
