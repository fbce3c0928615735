package metric

import (
	"evcal/src-server/model"
	"evcal/src-server/utils"
)

func calendarStats(as *utils.AppState) (events int, months int) {
	as.WithCalendar(func(cal *model.Calendar) {
		events = cal.Len()
		months = len(cal.Months())
	})
	return events, months
}
