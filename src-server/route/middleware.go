package route

import (
	"evcal/src-server/utils"
	"log/slog"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogMiddleware logs every request and reports its latency to the metric
// collector.
func LogMiddleware(as *utils.AppState, next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		latency := time.Since(startTimer)
		as.MetricChans.Record(as.MetricChans.HTTPRequest, float64(latency.Microseconds()))
		slog.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "latency", latency)
	}
}
