package metric

import (
	"evcal/src-server/utils"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func register(gauge prometheus.Gauge, name string) {
	if err := prometheus.Register(gauge); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register metric", "metric", name, "error", err)
			return
		}
	}
	slog.Debug("metric registered", "metric", name)
	gauge.Set(0)
}

func unregister(gauge prometheus.Gauge, name string) {
	switch prometheus.Unregister(gauge) {
	case true:
		slog.Debug("metric unregistered", "metric", name)
	case false:
		slog.Warn("metric not registered", "metric", name)
	}
}

// calendarSize polls the number of events and present months.
func calendarSize(as *utils.AppState, tickerInterval *time.Duration) {
	const (
		eventsName = "evcal_events_total"
		monthsName = "evcal_months_present"
	)
	events := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: eventsName,
		Help: "The number of events in the calendar",
	})
	months := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: monthsName,
		Help: "The number of months holding at least one event",
	})
	register(events, eventsName)
	register(months, monthsName)

	collect := func() {
		totalEvents, totalMonths := calendarStats(as)
		events.Set(float64(totalEvents))
		months.Set(float64(totalMonths))
	}

	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		collect()
		for {
			select {
			case <-*gracefulShutdownCh:
				unregister(events, eventsName)
				unregister(months, monthsName)
				return
			case <-ticker.C:
				collect()
			}
		}
	}()
}

// channelGauge exposes the last value received on ch, resetting to 0 when
// nothing arrives for clearTickerInterval.
func channelGauge(as *utils.AppState, name, help string, ch chan float64, clearTickerInterval *time.Duration) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	})
	register(gauge, name)

	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				unregister(gauge, name)
				return
			case value := <-ch:
				gauge.Set(value)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				gauge.Set(0)
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	calendarSize(as, &tickerInterval)
	channelGauge(as,
		"evcal_http_request_microsec",
		"The latency of the last HTTP request in microseconds",
		as.MetricChans.HTTPRequest,
		&clearTickerInterval,
	)
	channelGauge(as,
		"evcal_cancelled_events_last",
		"The number of events removed by the last cancellation",
		as.MetricChans.CancelledEvents,
		&clearTickerInterval,
	)
}
