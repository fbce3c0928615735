package main

import (
	"context"
	"errors"
	"evcal/src-server/metric"
	"evcal/src-server/route"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calendar over HTTP, with Prometheus metrics on /metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		as, err := newLoadedAppState()
		if err != nil {
			return err
		}

		metric.Init(as)

		muxer := http.NewServeMux()
		muxer.Handle("GET /metrics", promhttp.Handler())
		route.Calendar(muxer, as)
		server := &http.Server{
			Addr:    ":" + as.Config.GetPort(),
			Handler: muxer,
		}

		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("cannot start HTTP server", "error", err)
				as.AppCloseSignalChan <- syscall.SIGTERM
			}
		}()

		slog.Info("app is now running, press Ctrl+C to exit", "port", as.Config.GetPort())

		signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		<-as.AppCloseSignalChan

		slog.Info("Gracefully shutting down...")
		as.GracefulShutdown()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	},
}
