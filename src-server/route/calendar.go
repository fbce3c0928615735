package route

import (
	"encoding/json"
	"evcal/src-server/model"
	"evcal/src-server/utils"
	"log/slog"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	bodyJson, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Can't marshal response body"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bodyJson)
}

func Calendar(muxer *http.ServeMux, as *utils.AppState) {
	type MonthTotalRespBody struct {
		Month string `json:"month"`
		Total int    `json:"total"`
	}

	type BusiestRespBody struct {
		Months []string `json:"months"`
	}

	type LongestRespBody struct {
		Name string `json:"name"`
	}

	type CreateEventReqBody struct {
		Name      string `json:"name"`
		Month     string `json:"month"`
		DayOfWeek int    `json:"dayOfWeek"`
		StartTime string `json:"startTime"` // HH:MM
		Duration  int    `json:"duration"`
	}

	type CancelReqBody struct {
		Months    []string `json:"months"`
		DayOfWeek int      `json:"dayOfWeek"`
	}

	type CancelRespBody struct {
		Cancelled int `json:"cancelled"`
	}

	// whole calendar as text
	muxer.HandleFunc("GET /calendar", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var rendered string
			as.WithCalendar(func(cal *model.Calendar) {
				rendered = cal.String()
			})
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(rendered))
		}))

	// number of events in a month; unknown months are a 400, months
	// without events a 0
	muxer.HandleFunc("GET /calendar/months/{month}", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			month, err := model.ParseMonth(r.PathValue("month"))
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid month"))
				return
			}
			var total int
			as.WithCalendar(func(cal *model.Calendar) {
				total = cal.TotalEventsInMonth(month)
			})
			writeJSON(w, http.StatusOK, MonthTotalRespBody{
				Month: month.String(),
				Total: total,
			})
		}))

	muxer.HandleFunc("GET /calendar/busiest", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			respBody := BusiestRespBody{Months: make([]string, 0)}
			as.WithCalendar(func(cal *model.Calendar) {
				for _, m := range cal.MonthsWithMostEvents() {
					respBody.Months = append(respBody.Months, m.String())
				}
			})
			writeJSON(w, http.StatusOK, respBody)
		}))

	muxer.HandleFunc("GET /calendar/longest", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var (
				name string
				ok   bool
			)
			as.WithCalendar(func(cal *model.Calendar) {
				name, ok = cal.LongestEvent()
			})
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("The calendar is empty"))
				return
			}
			writeJSON(w, http.StatusOK, LongestRespBody{Name: name})
		}))

	// add one event
	muxer.HandleFunc("POST /calendar/events", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			// #region - parse & validate
			var reqBody CreateEventReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			month, err := model.ParseMonth(reqBody.Month)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid month"))
				return
			}
			startTime, err := parseClock(reqBody.StartTime)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid start time, expected HH:MM"))
				return
			}
			event := model.NewEvent(
				utils.CleanupString(reqBody.Name, as.Config.GetLocale()),
				month,
				reqBody.DayOfWeek,
				startTime,
				reqBody.Duration,
			)
			if err := event.Validate(); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(err.Error()))
				return
			}
			// #endregion

			as.WithCalendar(func(cal *model.Calendar) {
				cal.AddEvent(event)
			})
			slog.Info("event added", "name", event.GetName(), "month", month)
			w.WriteHeader(http.StatusCreated)
		}))

	// cancel every event on a day of week in the given months
	muxer.HandleFunc("POST /calendar/cancel", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody CancelReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			months, err := model.ParseMonths(strings.Join(reqBody.Months, ","))
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide at least one valid month"))
				return
			}
			if reqBody.DayOfWeek < 1 || reqBody.DayOfWeek > 7 {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("dayOfWeek must be between 1 (Monday) and 7 (Sunday)"))
				return
			}

			var cancelled int
			as.WithCalendar(func(cal *model.Calendar) {
				cancelled = cal.CancelEvents(months, reqBody.DayOfWeek)
			})
			as.MetricChans.Record(as.MetricChans.CancelledEvents, float64(cancelled))
			slog.Info("events cancelled", "months", months, "dayOfWeek", reqBody.DayOfWeek, "cancelled", cancelled)
			writeJSON(w, http.StatusOK, CancelRespBody{Cancelled: cancelled})
		}))
}
