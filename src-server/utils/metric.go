package utils

import "log/slog"

type Metric struct {
	HTTPRequest     chan float64
	CancelledEvents chan float64
}

func NewMetric() *Metric {
	return &Metric{
		HTTPRequest:     make(chan float64, 1),
		CancelledEvents: make(chan float64, 1),
	}
}

// Record hands value to the collector listening on ch, dropping it when
// nobody is (e.g. console mode, where metric.Init never runs).
func (m *Metric) Record(ch chan float64, value float64) {
	select {
	case ch <- value:
	default:
		slog.Debug("metric dropped", "value", value)
	}
}
