package console

import (
	"evcal/src-server/model"
	"evcal/src-server/utils"
	"fmt"
	"io"
)

// Demo walks through every calendar operation on whatever is loaded:
// render, per-month counts, busiest months, longest event, then a bulk
// cancellation of the Saturday events of four months.
func Demo(as *utils.AppState, out io.Writer) {
	as.WithCalendar(func(cal *model.Calendar) {
		fmt.Fprintln(out, cal)

		for _, m := range []model.Month{model.February, model.March} {
			fmt.Fprintf(out, "Events in %s = %d\n", m, cal.TotalEventsInMonth(m))
		}
		fmt.Fprintf(out, "Month(s) with most events %v\n", cal.MonthsWithMostEvents())

		fmt.Fprintln(out)
		name, _ := cal.LongestEvent()
		fmt.Fprintf(out, "Longest event: %s\n", name)

		fmt.Fprintln(out)
		months := []model.Month{model.February, model.March, model.May, model.June}
		day := 6
		fmt.Fprintf(out, "Cancelling %s events of %v\n", model.WeekdayName(day), months)
		cancelled := cal.CancelEvents(months, day)
		as.MetricChans.Record(as.MetricChans.CancelledEvents, float64(cancelled))
		fmt.Fprintf(out, "%d event(s) cancelled\n", cancelled)

		fmt.Fprintln(out)
		fmt.Fprintln(out, "After cancelling ...")
		fmt.Fprintln(out, cal)
	})
}
