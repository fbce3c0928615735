package utils

import (
	"evcal/src-server/model"
	"os"
	"sync"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

type AppState struct {
	Config      *Config
	When        *when.Parser
	MetricChans *Metric

	// receives SIGINT/SIGTERM, or a manual close request (e.g. the HTTP
	// server failing to start)
	AppCloseSignalChan chan os.Signal

	startTime time.Time

	// the calendar itself has no locking; every reader and writer goes
	// through WithCalendar
	calendarMu sync.Mutex
	calendar   *model.Calendar

	gracefulShutdownMu    sync.Mutex
	gracefulShutdownChans []*chan struct{}
}

func NewAppState() *AppState {
	as := &AppState{
		AppCloseSignalChan: make(chan os.Signal, 1),
		startTime:          time.Now(),
		calendar:           model.NewCalendar(),
	}

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	as.MetricChans = NewMetric()

	return as
}

// WithCalendar runs fn while holding the calendar lock.
func (as *AppState) WithCalendar(fn func(cal *model.Calendar)) {
	as.calendarMu.Lock()
	defer as.calendarMu.Unlock()
	fn(as.calendar)
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startTime)
}

// CreateGracefulShutdownChan returns a channel that is closed once
// GracefulShutdown is called.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.gracefulShutdownMu.Lock()
	defer as.gracefulShutdownMu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, &ch)
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownMu.Lock()
	defer as.gracefulShutdownMu.Unlock()
	for _, ch := range as.gracefulShutdownChans {
		close(*ch)
	}
	as.gracefulShutdownChans = nil
}
